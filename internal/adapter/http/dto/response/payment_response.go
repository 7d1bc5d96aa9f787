package response

import (
	"time"

	"kd_cleaning/internal/domain/entities"
)

type PaymentResponse struct {
	ID              string    `json:"id"`
	WorkerID        string    `json:"worker_id"`
	ServiceIDs      []string  `json:"service_ids"`
	TotalAmount     string    `json:"total_amount"`
	PaymentDate     string    `json:"payment_date"`
	OperationNumber string    `json:"operation_number"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		WorkerID:        p.WorkerID,
		ServiceIDs:      p.ServiceIDs,
		TotalAmount:     p.TotalAmount.String(),
		PaymentDate:     p.PaymentDate,
		OperationNumber: p.OperationNumber,
		Notes:           p.Notes,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}
