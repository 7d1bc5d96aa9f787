package interfaces

import (
	"context"
	"kd_cleaning/internal/domain/entities"
)

// IWorkerRepository abstracts DynamoDB persistence for Worker.

type IWorkerRepository interface {
	Create(ctx context.Context, w entities.Worker) (entities.Worker, error)
	GetByID(ctx context.Context, id string) (entities.Worker, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Worker, error)
	Update(ctx context.Context, w entities.Worker) (entities.Worker, error)
	Delete(ctx context.Context, id string) error
}
