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

var (
	ErrInvalidClientID    = errors.New("invalid client id")
	ErrClientNotFound     = errors.New("client not found")
	ErrClientNameRequired = errors.New("client name is required")
)

type IClientUseCase interface {
	Create(ctx context.Context, userID string, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, userID string, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Client, error)
	Delete(ctx context.Context, id string) error
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) Create(ctx context.Context, userID string, c entities.Client) (entities.Client, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Client{}, ErrInvalidUserID
	}
	if strings.TrimSpace(c.Name) == "" {
		return entities.Client{}, ErrClientNameRequired
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.UserID = userID
	c.Name = strings.TrimSpace(c.Name)
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) Update(ctx context.Context, userID string, c entities.Client) (entities.Client, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Client{}, ErrInvalidUserID
	}
	if strings.TrimSpace(c.ID) == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	if strings.TrimSpace(c.Name) == "" {
		return entities.Client{}, ErrClientNameRequired
	}

	stored, err := u.repo.GetByID(ctx, c.ID)
	if err != nil {
		return entities.Client{}, err
	}
	if stored.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}

	c.UserID = stored.UserID
	c.Name = strings.TrimSpace(c.Name)
	c.CreatedAt = stored.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, c)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.Client, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}
	return u.repo.Delete(ctx, id)
}
