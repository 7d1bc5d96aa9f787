package request

import (
	"kd_cleaning/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ExtraRequest struct {
	ID            string          `json:"id"`
	Name          string          `json:"name" binding:"required"`
	Price         decimal.Decimal `json:"price"`
	WorkerPay     decimal.Decimal `json:"worker_pay"`
	DurationHours decimal.Decimal `json:"duration_hours"`
}

// ServiceRequest is the payload for creating or editing a scheduled service.
// Derived fields (work order numbers, the price snapshot, the frozen total)
// are accepted but recomputed server side.
type ServiceRequest struct {
	UnitID        string         `json:"unit_id" binding:"required"`
	WorkerIDs     []string       `json:"worker_ids" binding:"required"`
	StartDate     string         `json:"start_date" binding:"required"`
	ExecutionDate string         `json:"execution_date"`
	StartTime     string         `json:"start_time" binding:"required"`
	EndTime       string         `json:"end_time" binding:"required"`
	PayByHour     bool           `json:"pay_by_hour"`
	Extras        []ExtraRequest `json:"extras"`
	WorkOrder     string         `json:"work_order"`
	ServiceType   string         `json:"service_type" binding:"required"`
	HasPets       bool           `json:"has_pets"`
	WorkOrderPet  string         `json:"work_order_pet"`
	DeepCleaning  bool           `json:"deep_cleaning"`
}

func (r ServiceRequest) ToEntity() entities.Service {
	extras := make([]entities.Extra, 0, len(r.Extras))
	for _, e := range r.Extras {
		extras = append(extras, entities.Extra{
			ID:            e.ID,
			Name:          e.Name,
			Price:         e.Price,
			WorkerPay:     e.WorkerPay,
			DurationHours: e.DurationHours,
		})
	}
	return entities.Service{
		UnitID:        r.UnitID,
		WorkerIDs:     r.WorkerIDs,
		StartDate:     r.StartDate,
		ExecutionDate: r.ExecutionDate,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		PayByHour:     r.PayByHour,
		Extras:        extras,
		WorkOrder:     r.WorkOrder,
		ServiceType:   entities.ServiceType(r.ServiceType),
		HasPets:       r.HasPets,
		WorkOrderPet:  r.WorkOrderPet,
		DeepCleaning:  r.DeepCleaning,
	}
}

// ImportRequest carries the raw text of a scanned work-order document for the
// bulk extraction endpoint.
type ImportRequest struct {
	DocumentText string `json:"document_text" binding:"required"`
}
