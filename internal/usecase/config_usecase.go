package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"kd_cleaning/internal/domain/entities"
	"kd_cleaning/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrCounterDecrement = errors.New("correlative counters can only move upward")

// IUserConfigUseCase reads and updates the per-user correlative counters and
// preferences. Counter updates are clamped upward: a lower value than the
// stored one is rejected so issued numbers can never repeat.

type IUserConfigUseCase interface {
	Get(ctx context.Context, userID string) (entities.UserConfig, error)
	Save(ctx context.Context, userID string, cfg entities.UserConfig) (entities.UserConfig, error)
}

type UserConfigUseCase struct {
	repo interfaces.IUserConfigRepository
}

var _ IUserConfigUseCase = (*UserConfigUseCase)(nil)

func NewUserConfigUseCase(repo interfaces.IUserConfigRepository) *UserConfigUseCase {
	return &UserConfigUseCase{repo: repo}
}

// Get returns the user's config, materializing a default one on first use.
func (u *UserConfigUseCase) Get(ctx context.Context, userID string) (entities.UserConfig, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.UserConfig{}, ErrInvalidUserID
	}
	cfg, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return entities.UserConfig{}, err
	}
	if cfg.ID == "" {
		now := time.Now().UTC()
		cfg = entities.UserConfig{
			ID:        uuid.NewString(),
			UserID:    userID,
			Currency:  "USD",
			CreatedAt: now,
			UpdatedAt: now,
		}
		return u.repo.Save(ctx, cfg)
	}
	return cfg, nil
}

func (u *UserConfigUseCase) Save(ctx context.Context, userID string, cfg entities.UserConfig) (entities.UserConfig, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.UserConfig{}, ErrInvalidUserID
	}

	stored, err := u.Get(ctx, userID)
	if err != nil {
		return entities.UserConfig{}, err
	}
	if cfg.LastTouchUpNumber < stored.LastTouchUpNumber ||
		cfg.LastLandscapingNumber < stored.LastLandscapingNumber ||
		cfg.LastTercerosNumber < stored.LastTercerosNumber ||
		cfg.LastInvoiceNumber < stored.LastInvoiceNumber {
		return entities.UserConfig{}, ErrCounterDecrement
	}

	cfg.ID = stored.ID
	cfg.UserID = stored.UserID
	if strings.TrimSpace(cfg.Currency) == "" {
		cfg.Currency = stored.Currency
	}
	cfg.CreatedAt = stored.CreatedAt
	cfg.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, cfg)
}
