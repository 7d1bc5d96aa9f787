package interfaces

import (
	"context"
	"kd_cleaning/internal/domain/entities"
)

// IUserConfigRepository abstracts DynamoDB persistence for the per-user
// UserConfig singleton.
//
// GetByUserID returns a zero-value config (empty ID) when none exists yet;
// Save upserts, creating the record on first write.

type IUserConfigRepository interface {
	GetByUserID(ctx context.Context, userID string) (entities.UserConfig, error)
	Save(ctx context.Context, c entities.UserConfig) (entities.UserConfig, error)
}
