package request

import (
	"kd_cleaning/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type WorkerRequest struct {
	Name       string                                `json:"name" binding:"required"`
	DNI        string                                `json:"dni"`
	Phone      string                                `json:"phone"`
	Email      string                                `json:"email"`
	HourlyRate decimal.Decimal                       `json:"hourly_rate"`
	UnitRates  map[string]decimal.Decimal            `json:"unit_rates"`
	CrossRates map[string]map[string]decimal.Decimal `json:"cross_rates"`
}

func (r WorkerRequest) ToEntity() entities.Worker {
	var crossRates map[string]map[entities.ServiceType]decimal.Decimal
	if len(r.CrossRates) > 0 {
		crossRates = make(map[string]map[entities.ServiceType]decimal.Decimal, len(r.CrossRates))
		for unitID, byType := range r.CrossRates {
			inner := make(map[entities.ServiceType]decimal.Decimal, len(byType))
			for serviceType, rate := range byType {
				inner[entities.ServiceType(serviceType)] = rate
			}
			crossRates[unitID] = inner
		}
	}
	return entities.Worker{
		Name:       r.Name,
		DNI:        r.DNI,
		Phone:      r.Phone,
		Email:      r.Email,
		HourlyRate: r.HourlyRate,
		UnitRates:  r.UnitRates,
		CrossRates: crossRates,
	}
}

type UnitRequest struct {
	UnitTypeID string          `json:"unit_type_id"`
	ClientID   string          `json:"client_id"`
	Name       string          `json:"name" binding:"required"`
	CodeName   string          `json:"code_name"`
	Address    string          `json:"address"`
	Price      decimal.Decimal `json:"price"`
}

func (r UnitRequest) ToEntity() entities.Unit {
	return entities.Unit{
		UnitTypeID: r.UnitTypeID,
		ClientID:   r.ClientID,
		Name:       r.Name,
		CodeName:   r.CodeName,
		Address:    r.Address,
		Price:      r.Price,
	}
}

type UnitTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r UnitTypeRequest) ToEntity() entities.UnitType {
	return entities.UnitType{Name: r.Name}
}

type ClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

func (r ClientRequest) ToEntity() entities.Client {
	return entities.Client{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
		Notes:   r.Notes,
	}
}

// UserConfigRequest updates the correlative counters and preferences. The
// usecase rejects any counter lower than the stored one.
type UserConfigRequest struct {
	LastTouchUpNumber     int    `json:"last_touch_up_number"`
	LastLandscapingNumber int    `json:"last_landscaping_number"`
	LastTercerosNumber    int    `json:"last_terceros_number"`
	LastInvoiceNumber     int    `json:"last_invoice_number"`
	Currency              string `json:"currency"`
}

func (r UserConfigRequest) ToEntity() entities.UserConfig {
	return entities.UserConfig{
		LastTouchUpNumber:     r.LastTouchUpNumber,
		LastLandscapingNumber: r.LastLandscapingNumber,
		LastTercerosNumber:    r.LastTercerosNumber,
		LastInvoiceNumber:     r.LastInvoiceNumber,
		Currency:              r.Currency,
	}
}
