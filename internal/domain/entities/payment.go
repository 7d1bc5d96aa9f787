package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is money paid out to a worker for a batch of services.
//
// TotalAmount is the sum of the resolved pay of every covered service at the
// time the payment was committed, and must be positive to persist.
// OperationNumber is the free-text bank operation or check reference.
type Payment struct {
	ID              string          `json:"id"`
	WorkerID        string          `json:"worker_id"`
	ServiceIDs      []string        `json:"service_ids"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaymentDate     string          `json:"payment_date"`
	OperationNumber string          `json:"operation_number"`
	Notes           string          `json:"notes,omitempty"`
	UserID          string          `json:"user_id"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Covers reports whether the payment already covers the given service.
func (p Payment) Covers(serviceID string) bool {
	for _, id := range p.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
