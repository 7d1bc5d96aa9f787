package interfaces

import (
	"context"
	"kd_cleaning/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.

type IInvoiceRepository interface {
	Create(ctx context.Context, i entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Invoice, error)
	Update(ctx context.Context, i entities.Invoice) (entities.Invoice, error)
	Delete(ctx context.Context, id string) error
}
