package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Worker is a cleaner paid per service.
//
// Rate resolution order for fixed-pay services:
//  1. CrossRates[unitID][serviceType] when present and > 0
//  2. UnitRates[unitID] (flat per-unit rate, also the legacy average)
//
// HourlyRate applies only when a service is flagged pay-by-hour.
type Worker struct {
	ID         string                                     `json:"id"`
	Name       string                                     `json:"name"`
	DNI        string                                     `json:"dni"`
	Phone      string                                     `json:"phone"`
	Email      string                                     `json:"email"`
	HourlyRate decimal.Decimal                            `json:"hourly_rate"`
	UnitRates  map[string]decimal.Decimal                 `json:"unit_rates"`
	CrossRates map[string]map[ServiceType]decimal.Decimal `json:"cross_rates,omitempty"`
	UserID     string                                     `json:"user_id"`
	CreatedAt  time.Time                                  `json:"created_at"`
	UpdatedAt  time.Time                                  `json:"updated_at"`
}

// UnitRate returns the flat rate for a unit, or zero when none is configured.
func (w Worker) UnitRate(unitID string) decimal.Decimal {
	if w.UnitRates == nil {
		return decimal.Zero
	}
	return w.UnitRates[unitID]
}

// CrossRate returns the (unit, service type) rate and whether one is present.
func (w Worker) CrossRate(unitID string, serviceType ServiceType) (decimal.Decimal, bool) {
	if w.CrossRates == nil {
		return decimal.Zero, false
	}
	byType, ok := w.CrossRates[unitID]
	if !ok {
		return decimal.Zero, false
	}
	rate, ok := byType[serviceType]
	return rate, ok
}

// HasRateFor reports whether the worker can be paid at all for a fixed-pay
// service on the given unit: either a flat unit rate is configured or the
// hourly rate is positive. Cross rates alone are not required; they refine
// the unit rate per service type.
func (w Worker) HasRateFor(unitID string) bool {
	if w.UnitRates != nil {
		if _, ok := w.UnitRates[unitID]; ok {
			return true
		}
	}
	return w.HourlyRate.IsPositive()
}
