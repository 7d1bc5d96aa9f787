package request

import "kd_cleaning/internal/domain/entities"

// InvoiceRequest is the payload for creating or editing a client invoice.
// The total is recomputed server side from the covered services' frozen
// costs.
type InvoiceRequest struct {
	InvoiceNumber string   `json:"invoice_number" binding:"required"`
	ClientID      string   `json:"client_id" binding:"required"`
	ServiceIDs    []string `json:"service_ids" binding:"required"`
	IssueDate     string   `json:"issue_date" binding:"required"`
	DueDate       string   `json:"due_date" binding:"required"`
	Status        string   `json:"status"`
	Notes         string   `json:"notes"`
}

func (r InvoiceRequest) ToEntity() entities.Invoice {
	return entities.Invoice{
		InvoiceNumber: r.InvoiceNumber,
		ClientID:      r.ClientID,
		ServiceIDs:    r.ServiceIDs,
		IssueDate:     r.IssueDate,
		DueDate:       r.DueDate,
		Status:        entities.InvoiceStatus(r.Status),
		Notes:         r.Notes,
	}
}
