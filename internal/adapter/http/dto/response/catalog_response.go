package response

import (
	"time"

	"kd_cleaning/internal/domain/entities"
)

type WorkerResponse struct {
	ID         string                       `json:"id"`
	Name       string                       `json:"name"`
	DNI        string                       `json:"dni,omitempty"`
	Phone      string                       `json:"phone,omitempty"`
	Email      string                       `json:"email,omitempty"`
	HourlyRate string                       `json:"hourly_rate"`
	UnitRates  map[string]string            `json:"unit_rates,omitempty"`
	CrossRates map[string]map[string]string `json:"cross_rates,omitempty"`
	CreatedAt  time.Time                    `json:"created_at"`
	UpdatedAt  time.Time                    `json:"updated_at"`
}

func FromWorker(w entities.Worker) WorkerResponse {
	var unitRates map[string]string
	if len(w.UnitRates) > 0 {
		unitRates = make(map[string]string, len(w.UnitRates))
		for unitID, rate := range w.UnitRates {
			unitRates[unitID] = rate.String()
		}
	}
	var crossRates map[string]map[string]string
	if len(w.CrossRates) > 0 {
		crossRates = make(map[string]map[string]string, len(w.CrossRates))
		for unitID, byType := range w.CrossRates {
			inner := make(map[string]string, len(byType))
			for serviceType, rate := range byType {
				inner[string(serviceType)] = rate.String()
			}
			crossRates[unitID] = inner
		}
	}
	return WorkerResponse{
		ID:         w.ID,
		Name:       w.Name,
		DNI:        w.DNI,
		Phone:      w.Phone,
		Email:      w.Email,
		HourlyRate: w.HourlyRate.String(),
		UnitRates:  unitRates,
		CrossRates: crossRates,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
}

func FromWorkers(workers []entities.Worker) []WorkerResponse {
	out := make([]WorkerResponse, 0, len(workers))
	for _, w := range workers {
		out = append(out, FromWorker(w))
	}
	return out
}

type UnitResponse struct {
	ID         string    `json:"id"`
	UnitTypeID string    `json:"unit_type_id,omitempty"`
	ClientID   string    `json:"client_id,omitempty"`
	Name       string    `json:"name"`
	CodeName   string    `json:"code_name,omitempty"`
	Address    string    `json:"address,omitempty"`
	Price      string    `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromUnit(u entities.Unit) UnitResponse {
	return UnitResponse{
		ID:         u.ID,
		UnitTypeID: u.UnitTypeID,
		ClientID:   u.ClientID,
		Name:       u.Name,
		CodeName:   u.CodeName,
		Address:    u.Address,
		Price:      u.Price.String(),
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func FromUnits(units []entities.Unit) []UnitResponse {
	out := make([]UnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, FromUnit(u))
	}
	return out
}

type UnitTypeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromUnitType(t entities.UnitType) UnitTypeResponse {
	return UnitTypeResponse{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func FromUnitTypes(types []entities.UnitType) []UnitTypeResponse {
	out := make([]UnitTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, FromUnitType(t))
	}
	return out
}

type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}

type UserConfigResponse struct {
	LastTouchUpNumber     int    `json:"last_touch_up_number"`
	LastLandscapingNumber int    `json:"last_landscaping_number"`
	LastTercerosNumber    int    `json:"last_terceros_number"`
	LastInvoiceNumber     int    `json:"last_invoice_number"`
	Currency              string `json:"currency"`
}

func FromUserConfig(c entities.UserConfig) UserConfigResponse {
	return UserConfigResponse{
		LastTouchUpNumber:     c.LastTouchUpNumber,
		LastLandscapingNumber: c.LastLandscapingNumber,
		LastTercerosNumber:    c.LastTercerosNumber,
		LastInvoiceNumber:     c.LastInvoiceNumber,
		Currency:              c.Currency,
	}
}
