package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unit is a physical property that receives cleaning services.
//
// Price is the unit's *current* price. Services snapshot it into
// HistoricalUnitPrice at creation; later price changes never reach
// already-created services.
type Unit struct {
	ID         string          `json:"id"`
	UnitTypeID string          `json:"unit_type_id"`
	ClientID   string          `json:"client_id"`
	Name       string          `json:"name"`
	CodeName   string          `json:"code_name"`
	Address    string          `json:"address"`
	Price      decimal.Decimal `json:"price"`
	UserID     string          `json:"user_id"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
