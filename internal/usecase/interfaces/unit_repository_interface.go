package interfaces

import (
	"context"
	"kd_cleaning/internal/domain/entities"
)

// IUnitRepository abstracts DynamoDB persistence for Unit.

type IUnitRepository interface {
	Create(ctx context.Context, u entities.Unit) (entities.Unit, error)
	GetByID(ctx context.Context, id string) (entities.Unit, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Unit, error)
	Update(ctx context.Context, u entities.Unit) (entities.Unit, error)
	Delete(ctx context.Context, id string) error
}

// IUnitTypeRepository abstracts DynamoDB persistence for UnitType.

type IUnitTypeRepository interface {
	Create(ctx context.Context, t entities.UnitType) (entities.UnitType, error)
	GetByID(ctx context.Context, id string) (entities.UnitType, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.UnitType, error)
	Update(ctx context.Context, t entities.UnitType) (entities.UnitType, error)
	Delete(ctx context.Context, id string) error
}
