package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Extra is an add-on sold with a service. Price is the client-facing amount,
// WorkerPay is what the assigned worker earns for it; the two are independent.
type Extra struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	WorkerPay     decimal.Decimal `json:"worker_pay"`
	DurationHours decimal.Decimal `json:"duration_hours"`
}

// PaymentService records, on the service itself, that a worker was paid for
// it and at which frozen amount. At most one entry per worker; creating or
// editing a payment replaces the worker's prior entry.
type PaymentService struct {
	ServiceID string          `json:"service_id"`
	WorkerID  string          `json:"worker_id"`
	Amount    decimal.Decimal `json:"amount"`
	IsPaid    bool            `json:"is_paid"`
}

// Service is a scheduled cleaning visit.
//
// TotalCost and HistoricalUnitPrice are frozen at creation/edit time; later
// changes to the unit's current price do not retroactively affect them.
// WorkOrder is globally unique (case-insensitive) across all services when
// non-empty; WorkOrderPet is unique against both fields.
type Service struct {
	ID                  string           `json:"id"`
	UnitID              string           `json:"unit_id"`
	WorkerIDs           []string         `json:"worker_ids"`
	StartDate           string           `json:"start_date"`
	ExecutionDate       string           `json:"execution_date,omitempty"`
	StartTime           string           `json:"start_time"`
	EndTime             string           `json:"end_time"`
	PayByHour           bool             `json:"pay_by_hour"`
	Extras              []Extra          `json:"extras"`
	TotalCost           decimal.Decimal  `json:"total_cost"`
	HistoricalUnitPrice decimal.Decimal  `json:"historical_unit_price"`
	WorkOrder           string           `json:"work_order,omitempty"`
	ServiceType         ServiceType      `json:"service_type"`
	HasPets             bool             `json:"has_pets"`
	WorkOrderPet        string           `json:"work_order_pet,omitempty"`
	DeepCleaning        bool             `json:"deep_cleaning"`
	Payments            []PaymentService `json:"payments,omitempty"`
	UserID              string           `json:"user_id"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// EffectiveDate is the execution date when set, else the start date. Payment
// date-range filtering always uses it.
func (s Service) EffectiveDate() string {
	if s.ExecutionDate != "" {
		return s.ExecutionDate
	}
	return s.StartDate
}

// HasWorker reports whether the worker is assigned to this service.
func (s Service) HasWorker(workerID string) bool {
	for _, id := range s.WorkerIDs {
		if id == workerID {
			return true
		}
	}
	return false
}

// ExtrasWorkerPay sums the worker-pay component of every extra.
func (s Service) ExtrasWorkerPay() decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.Extras {
		total = total.Add(e.WorkerPay)
	}
	return total
}
