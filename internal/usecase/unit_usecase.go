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
	ErrInvalidUnitID        = errors.New("invalid unit id")
	ErrUnitNotFound         = errors.New("unit not found")
	ErrUnitNameRequired     = errors.New("unit name is required")
	ErrUnitClientRequired   = errors.New("unit client is required")
	ErrNegativePrice        = errors.New("price must not be negative")
	ErrInvalidUnitTypeID    = errors.New("invalid unit type id")
	ErrUnitTypeNotFound     = errors.New("unit type not found")
	ErrUnitTypeNameRequired = errors.New("unit type name is required")
)

// Changing a unit's price only affects services created afterwards; existing
// services keep their historical snapshot.

type IUnitUseCase interface {
	Create(ctx context.Context, userID string, unit entities.Unit) (entities.Unit, error)
	Update(ctx context.Context, userID string, unit entities.Unit) (entities.Unit, error)
	GetByID(ctx context.Context, id string) (entities.Unit, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Unit, error)
	Delete(ctx context.Context, id string) error
}

type UnitUseCase struct {
	repo interfaces.IUnitRepository
}

var _ IUnitUseCase = (*UnitUseCase)(nil)

func NewUnitUseCase(repo interfaces.IUnitRepository) *UnitUseCase {
	return &UnitUseCase{repo: repo}
}

func (u *UnitUseCase) Create(ctx context.Context, userID string, unit entities.Unit) (entities.Unit, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Unit{}, ErrInvalidUserID
	}
	if err := validateUnitInput(unit); err != nil {
		return entities.Unit{}, err
	}

	now := time.Now().UTC()
	unit.ID = uuid.NewString()
	unit.UserID = userID
	unit.Name = strings.TrimSpace(unit.Name)
	unit.CreatedAt = now
	unit.UpdatedAt = now
	return u.repo.Create(ctx, unit)
}

func (u *UnitUseCase) Update(ctx context.Context, userID string, unit entities.Unit) (entities.Unit, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Unit{}, ErrInvalidUserID
	}
	if strings.TrimSpace(unit.ID) == "" {
		return entities.Unit{}, ErrInvalidUnitID
	}
	if err := validateUnitInput(unit); err != nil {
		return entities.Unit{}, err
	}

	stored, err := u.repo.GetByID(ctx, unit.ID)
	if err != nil {
		return entities.Unit{}, err
	}
	if stored.ID == "" {
		return entities.Unit{}, ErrUnitNotFound
	}

	unit.UserID = stored.UserID
	unit.Name = strings.TrimSpace(unit.Name)
	unit.CreatedAt = stored.CreatedAt
	unit.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, unit)
}

func (u *UnitUseCase) GetByID(ctx context.Context, id string) (entities.Unit, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Unit{}, ErrInvalidUnitID
	}
	unit, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Unit{}, err
	}
	if unit.ID == "" {
		return entities.Unit{}, ErrUnitNotFound
	}
	return unit, nil
}

func (u *UnitUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.Unit, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *UnitUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidUnitID
	}
	return u.repo.Delete(ctx, id)
}

func validateUnitInput(unit entities.Unit) error {
	if strings.TrimSpace(unit.Name) == "" {
		return ErrUnitNameRequired
	}
	if strings.TrimSpace(unit.ClientID) == "" {
		return ErrUnitClientRequired
	}
	if unit.Price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

type IUnitTypeUseCase interface {
	Create(ctx context.Context, userID string, t entities.UnitType) (entities.UnitType, error)
	Update(ctx context.Context, userID string, t entities.UnitType) (entities.UnitType, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.UnitType, error)
	Delete(ctx context.Context, id string) error
}

type UnitTypeUseCase struct {
	repo interfaces.IUnitTypeRepository
}

var _ IUnitTypeUseCase = (*UnitTypeUseCase)(nil)

func NewUnitTypeUseCase(repo interfaces.IUnitTypeRepository) *UnitTypeUseCase {
	return &UnitTypeUseCase{repo: repo}
}

func (u *UnitTypeUseCase) Create(ctx context.Context, userID string, t entities.UnitType) (entities.UnitType, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.UnitType{}, ErrInvalidUserID
	}
	if strings.TrimSpace(t.Name) == "" {
		return entities.UnitType{}, ErrUnitTypeNameRequired
	}

	now := time.Now().UTC()
	t.ID = uuid.NewString()
	t.UserID = userID
	t.Name = strings.TrimSpace(t.Name)
	t.CreatedAt = now
	t.UpdatedAt = now
	return u.repo.Create(ctx, t)
}

func (u *UnitTypeUseCase) Update(ctx context.Context, userID string, t entities.UnitType) (entities.UnitType, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.UnitType{}, ErrInvalidUserID
	}
	if strings.TrimSpace(t.ID) == "" {
		return entities.UnitType{}, ErrInvalidUnitTypeID
	}
	if strings.TrimSpace(t.Name) == "" {
		return entities.UnitType{}, ErrUnitTypeNameRequired
	}

	stored, err := u.repo.GetByID(ctx, t.ID)
	if err != nil {
		return entities.UnitType{}, err
	}
	if stored.ID == "" {
		return entities.UnitType{}, ErrUnitTypeNotFound
	}

	t.UserID = stored.UserID
	t.Name = strings.TrimSpace(t.Name)
	t.CreatedAt = stored.CreatedAt
	t.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, t)
}

func (u *UnitTypeUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.UnitType, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *UnitTypeUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidUnitTypeID
	}
	return u.repo.Delete(ctx, id)
}
