package entities

import "time"

// UserConfig is a per-user singleton holding the high-water marks of the four
// correlative counters plus display preferences.
//
// Counters only ever move upward: they are advanced after a create whenever
// the issued number exceeds the stored value, and they may legitimately lag
// behind the live records (the generators take the max of both sources).
type UserConfig struct {
	ID                    string    `json:"id"`
	UserID                string    `json:"user_id"`
	LastTouchUpNumber     int       `json:"last_touch_up_number"`
	LastLandscapingNumber int       `json:"last_landscaping_number"`
	LastTercerosNumber    int       `json:"last_terceros_number"`
	LastInvoiceNumber     int       `json:"last_invoice_number"`
	Currency              string    `json:"currency"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// WorkOrderCounter returns the stored counter for a work-order service type.
func (c UserConfig) WorkOrderCounter(t ServiceType) int {
	switch t {
	case ServiceTypeTouchUp:
		return c.LastTouchUpNumber
	case ServiceTypeLandscaping:
		return c.LastLandscapingNumber
	case ServiceTypeTerceros:
		return c.LastTercerosNumber
	default:
		return 0
	}
}

// AdvanceWorkOrderCounter raises the counter for the type to n when n exceeds
// the stored value. Counters are never decremented.
func (c *UserConfig) AdvanceWorkOrderCounter(t ServiceType, n int) {
	switch t {
	case ServiceTypeTouchUp:
		if n > c.LastTouchUpNumber {
			c.LastTouchUpNumber = n
		}
	case ServiceTypeLandscaping:
		if n > c.LastLandscapingNumber {
			c.LastLandscapingNumber = n
		}
	case ServiceTypeTerceros:
		if n > c.LastTercerosNumber {
			c.LastTercerosNumber = n
		}
	}
}

// AdvanceInvoiceCounter raises the invoice counter to n when n exceeds the
// stored value.
func (c *UserConfig) AdvanceInvoiceCounter(n int) {
	if n > c.LastInvoiceNumber {
		c.LastInvoiceNumber = n
	}
}
