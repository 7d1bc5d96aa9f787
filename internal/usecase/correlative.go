package usecase

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"kd_cleaning/internal/domain/entities"
)

var (
	ErrWorkOrderTaken     = errors.New("work order already in use")
	ErrInvoiceNumberTaken = errors.New("invoice number already in use")
)

// NextWorkOrder derives the next correlative work order for a service type,
// e.g. "T0007". Types without a prefix (Departure Clean, Prearrival Service)
// carry no work order and yield "".
//
// The next number is 1 + max over BOTH the numeric suffixes of the existing
// services sharing the prefix and the stored per-user counter. The counter is
// only advanced opportunistically after a create, so it can lag behind the
// live records; taking the max of the two sources avoids issuing collisions.
func NextWorkOrder(serviceType entities.ServiceType, services []entities.Service, config entities.UserConfig) string {
	prefix := serviceType.WorkOrderPrefix()
	if prefix == "" {
		return ""
	}

	highest := config.WorkOrderCounter(serviceType)
	for _, s := range services {
		if s.WorkOrder == "" || !strings.HasPrefix(s.WorkOrder, prefix) {
			continue
		}
		if n, ok := workOrderSuffix(s.WorkOrder, prefix); ok && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s%04d", prefix, highest+1)
}

// NextInvoiceNumber derives the next correlative invoice number,
// e.g. "INV-0012". The stored counter is authoritative, but existing invoice
// numbers are scanned as well so a lagging counter cannot produce a collision.
func NextInvoiceNumber(config entities.UserConfig, invoices []entities.Invoice) string {
	highest := config.LastInvoiceNumber
	for _, inv := range invoices {
		if n, ok := InvoiceNumberSuffix(inv.InvoiceNumber); ok && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("INV-%04d", highest+1)
}

// WorkOrderNumber parses the numeric part of a work order for the given
// service type ("T0007" -> 7). Returns false for empty or foreign values.
func WorkOrderNumber(workOrder string, serviceType entities.ServiceType) (int, bool) {
	prefix := serviceType.WorkOrderPrefix()
	if prefix == "" || !strings.HasPrefix(workOrder, prefix) {
		return 0, false
	}
	return workOrderSuffix(workOrder, prefix)
}

// InvoiceNumberSuffix parses the numeric part of an invoice number
// ("INV-0012" -> 12). Any digits after the last dash count, so manually
// entered numbers in other formats still feed the counter when possible.
func InvoiceNumberSuffix(invoiceNumber string) (int, bool) {
	s := invoiceNumber
	if i := strings.LastIndex(s, "-"); i >= 0 {
		s = s[i+1:]
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func workOrderSuffix(workOrder, prefix string) (int, bool) {
	n, err := strconv.Atoi(workOrder[len(prefix):])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ValidateWorkOrder rejects a work order value that collides, case
// insensitively, with any other service's work_order or work_order_pet.
// Empty values are always accepted; excludeServiceID skips the service being
// edited.
func ValidateWorkOrder(value string, services []entities.Service, excludeServiceID string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, s := range services {
		if s.ID == excludeServiceID {
			continue
		}
		if strings.EqualFold(s.WorkOrder, value) || strings.EqualFold(s.WorkOrderPet, value) {
			return fmt.Errorf("%w: %q collides with service %s", ErrWorkOrderTaken, value, s.ID)
		}
	}
	return nil
}

// ValidateInvoiceNumber rejects an invoice number already used by another
// invoice (case-insensitive). excludeInvoiceID skips the invoice being edited.
func ValidateInvoiceNumber(value string, invoices []entities.Invoice, excludeInvoiceID string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, inv := range invoices {
		if inv.ID == excludeInvoiceID {
			continue
		}
		if strings.EqualFold(inv.InvoiceNumber, value) {
			return fmt.Errorf("%w: %q collides with invoice %s", ErrInvoiceNumberTaken, value, inv.ID)
		}
	}
	return nil
}
