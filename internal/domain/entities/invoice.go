package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the invoice lifecycle:
//
//	draft --(send)--> sent --(payment confirmed)--> paid
//	sent  --(due date passed, unpaid)--> overdue
//
// Overdue is a display-time classification derived from the due date, not a
// stored transition; there is no way out of paid.

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Invoice bills a client for a batch of Touch Up services.
//
// Only Touch Up services are invoiceable in this domain, and a service may
// belong to at most one invoice at a time (enforced by exclusion filtering
// when building candidates, not by a store constraint).
type Invoice struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	ClientID      string          `json:"client_id"`
	ServiceIDs    []string        `json:"services"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	IssueDate     string          `json:"issue_date"`
	DueDate       string          `json:"due_date"`
	Status        InvoiceStatus   `json:"status"`
	Notes         string          `json:"notes,omitempty"`
	UserID        string          `json:"user_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Covers reports whether the invoice already covers the given service.
func (i Invoice) Covers(serviceID string) bool {
	for _, id := range i.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// EffectiveStatus classifies a sent invoice as overdue once its due date has
// passed. Draft and paid invoices are returned unchanged, as is any invoice
// whose due date fails to parse.
func (i Invoice) EffectiveStatus(now time.Time) InvoiceStatus {
	if i.Status != InvoiceStatusSent {
		return i.Status
	}
	due, err := ParseDate(i.DueDate)
	if err != nil {
		return i.Status
	}
	if now.After(due.AddDate(0, 0, 1)) {
		return InvoiceStatusOverdue
	}
	return i.Status
}
