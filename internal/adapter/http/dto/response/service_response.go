package response

import (
	"time"

	"kd_cleaning/internal/domain/entities"
)

type ExtraResponse struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	Price         string `json:"price"`
	WorkerPay     string `json:"worker_pay"`
	DurationHours string `json:"duration_hours,omitempty"`
}

type ServicePaymentResponse struct {
	ServiceID string `json:"service_id"`
	WorkerID  string `json:"worker_id"`
	Amount    string `json:"amount"`
	IsPaid    bool   `json:"is_paid"`
}

// Money fields travel as exact decimal strings across the API.
type ServiceResponse struct {
	ID                  string                   `json:"id"`
	UnitID              string                   `json:"unit_id"`
	WorkerIDs           []string                 `json:"worker_ids"`
	StartDate           string                   `json:"start_date"`
	ExecutionDate       string                   `json:"execution_date,omitempty"`
	StartTime           string                   `json:"start_time"`
	EndTime             string                   `json:"end_time"`
	PayByHour           bool                     `json:"pay_by_hour"`
	Extras              []ExtraResponse          `json:"extras"`
	TotalCost           string                   `json:"total_cost"`
	HistoricalUnitPrice string                   `json:"historical_unit_price"`
	WorkOrder           string                   `json:"work_order,omitempty"`
	ServiceType         string                   `json:"service_type"`
	HasPets             bool                     `json:"has_pets"`
	WorkOrderPet        string                   `json:"work_order_pet,omitempty"`
	DeepCleaning        bool                     `json:"deep_cleaning"`
	Payments            []ServicePaymentResponse `json:"payments"`
	CreatedAt           time.Time                `json:"created_at"`
	UpdatedAt           time.Time                `json:"updated_at"`
}

func FromService(s entities.Service) ServiceResponse {
	extras := make([]ExtraResponse, 0, len(s.Extras))
	for _, e := range s.Extras {
		extras = append(extras, ExtraResponse{
			ID:            e.ID,
			Name:          e.Name,
			Price:         e.Price.String(),
			WorkerPay:     e.WorkerPay.String(),
			DurationHours: e.DurationHours.String(),
		})
	}
	payments := make([]ServicePaymentResponse, 0, len(s.Payments))
	for _, p := range s.Payments {
		payments = append(payments, ServicePaymentResponse{
			ServiceID: p.ServiceID,
			WorkerID:  p.WorkerID,
			Amount:    p.Amount.String(),
			IsPaid:    p.IsPaid,
		})
	}
	return ServiceResponse{
		ID:                  s.ID,
		UnitID:              s.UnitID,
		WorkerIDs:           s.WorkerIDs,
		StartDate:           s.StartDate,
		ExecutionDate:       s.ExecutionDate,
		StartTime:           s.StartTime,
		EndTime:             s.EndTime,
		PayByHour:           s.PayByHour,
		Extras:              extras,
		TotalCost:           s.TotalCost.String(),
		HistoricalUnitPrice: s.HistoricalUnitPrice.String(),
		WorkOrder:           s.WorkOrder,
		ServiceType:         string(s.ServiceType),
		HasPets:             s.HasPets,
		WorkOrderPet:        s.WorkOrderPet,
		DeepCleaning:        s.DeepCleaning,
		Payments:            payments,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}
