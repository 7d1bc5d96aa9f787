package interfaces

import (
	"context"
	"kd_cleaning/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for Service.
//
// The usecases need to:
//   - create a service after cost/correlative computation
//   - list every service of a user (aggregators work on full snapshots)
//   - update a service in place (edits, payment side effects)

type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}
