package response

import (
	"time"

	"kd_cleaning/internal/domain/entities"
)

// Status carries the display-time classification: a sent invoice past its due
// date is reported as overdue without a stored transition. StoredStatus keeps
// the persisted lifecycle state.
type InvoiceResponse struct {
	ID            string    `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	ClientID      string    `json:"client_id"`
	ServiceIDs    []string  `json:"service_ids"`
	TotalAmount   string    `json:"total_amount"`
	IssueDate     string    `json:"issue_date"`
	DueDate       string    `json:"due_date"`
	Status        string    `json:"status"`
	StoredStatus  string    `json:"stored_status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromInvoice(i entities.Invoice, now time.Time) InvoiceResponse {
	return InvoiceResponse{
		ID:            i.ID,
		InvoiceNumber: i.InvoiceNumber,
		ClientID:      i.ClientID,
		ServiceIDs:    i.ServiceIDs,
		TotalAmount:   i.TotalAmount.String(),
		IssueDate:     i.IssueDate,
		DueDate:       i.DueDate,
		Status:        string(i.EffectiveStatus(now)),
		StoredStatus:  string(i.Status),
		Notes:         i.Notes,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func FromInvoices(invoices []entities.Invoice, now time.Time) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, i := range invoices {
		out = append(out, FromInvoice(i, now))
	}
	return out
}
