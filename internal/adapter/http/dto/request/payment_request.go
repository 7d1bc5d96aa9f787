package request

import "kd_cleaning/internal/domain/entities"

// PaymentRequest is the payload for committing a worker payment. The total is
// never accepted from the client; it is recomputed from the resolved pay of
// the selected services.
type PaymentRequest struct {
	WorkerID        string   `json:"worker_id" binding:"required"`
	ServiceIDs      []string `json:"service_ids" binding:"required"`
	PaymentDate     string   `json:"payment_date" binding:"required"`
	OperationNumber string   `json:"operation_number" binding:"required"`
	Notes           string   `json:"notes"`
}

func (r PaymentRequest) ToEntity() entities.Payment {
	return entities.Payment{
		WorkerID:        r.WorkerID,
		ServiceIDs:      r.ServiceIDs,
		PaymentDate:     r.PaymentDate,
		OperationNumber: r.OperationNumber,
		Notes:           r.Notes,
	}
}
