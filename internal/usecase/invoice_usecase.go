package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"kd_cleaning/internal/domain/entities"
	"kd_cleaning/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInvoiceID        = errors.New("invalid invoice id")
	ErrInvoiceNotFound         = errors.New("invoice not found")
	ErrInvoiceClientRequired   = errors.New("a client must be selected")
	ErrInvoiceServicesRequired = errors.New("at least one service must be selected")
	ErrInvoiceNumberRequired   = errors.New("invoice number is required")
	ErrServiceNotInvoiceable   = errors.New("service is not available for invoicing")
	ErrInvalidStatusTransition = errors.New("invalid invoice status transition")
)

// BuildInvoiceCandidates selects the services that can still be invoiced:
// Touch Up services not referenced by any invoice other than the one being
// edited (excludeInvoiceID, empty for a new invoice). Touch Up is the only
// invoiceable type in this domain.
func BuildInvoiceCandidates(services []entities.Service, invoices []entities.Invoice, excludeInvoiceID string) []entities.Service {
	invoiced := make(map[string]struct{})
	for _, inv := range invoices {
		if inv.ID == excludeInvoiceID {
			continue
		}
		for _, id := range inv.ServiceIDs {
			invoiced[id] = struct{}{}
		}
	}
	return lo.Filter(services, func(s entities.Service, _ int) bool {
		_, taken := invoiced[s.ID]
		return s.ServiceType == entities.ServiceTypeTouchUp && !taken
	})
}

// ComputeInvoiceTotal sums the frozen total_cost of the selected services.
func ComputeInvoiceTotal(selected []entities.Service) decimal.Decimal {
	total := decimal.Zero
	for _, s := range selected {
		total = total.Add(s.TotalCost)
	}
	return total
}

// IInvoiceUseCase covers client invoice aggregation, persistence and the
// draft -> sent -> paid lifecycle.

type IInvoiceUseCase interface {
	BuildCandidates(ctx context.Context, userID, excludeInvoiceID string) ([]entities.Service, error)
	NextNumber(ctx context.Context, userID string) (string, error)
	Create(ctx context.Context, userID string, i entities.Invoice) (entities.Invoice, error)
	Update(ctx context.Context, userID string, i entities.Invoice) (entities.Invoice, error)
	Send(ctx context.Context, id string) (entities.Invoice, error)
	MarkPaid(ctx context.Context, id string) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Invoice, error)
	Delete(ctx context.Context, id string) error
}

type InvoiceUseCase struct {
	invoices interfaces.IInvoiceRepository
	services interfaces.IServiceRepository
	config   interfaces.IUserConfigRepository
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	invoices interfaces.IInvoiceRepository,
	services interfaces.IServiceRepository,
	config interfaces.IUserConfigRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, services: services, config: config}
}

func (u *InvoiceUseCase) BuildCandidates(ctx context.Context, userID, excludeInvoiceID string) ([]entities.Service, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	services, err := u.services.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	invoices, err := u.invoices.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return BuildInvoiceCandidates(services, invoices, excludeInvoiceID), nil
}

func (u *InvoiceUseCase) NextNumber(ctx context.Context, userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", ErrInvalidUserID
	}
	cfg, err := u.config.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	invoices, err := u.invoices.ListByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	return NextInvoiceNumber(cfg, invoices), nil
}

func (u *InvoiceUseCase) Create(ctx context.Context, userID string, i entities.Invoice) (entities.Invoice, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Invoice{}, ErrInvalidUserID
	}
	if err := validateInvoiceInput(i); err != nil {
		return entities.Invoice{}, err
	}

	services, err := u.services.ListByUserID(ctx, userID)
	if err != nil {
		return entities.Invoice{}, err
	}
	invoices, err := u.invoices.ListByUserID(ctx, userID)
	if err != nil {
		return entities.Invoice{}, err
	}

	i.InvoiceNumber = strings.TrimSpace(i.InvoiceNumber)
	if err := ValidateInvoiceNumber(i.InvoiceNumber, invoices, ""); err != nil {
		return entities.Invoice{}, err
	}

	// Re-check eligibility at commit time against a fresh snapshot. The
	// store holds no exclusivity constraint, so this is best effort.
	eligible := lo.KeyBy(BuildInvoiceCandidates(services, invoices, ""), func(s entities.Service) string { return s.ID })
	for _, id := range i.ServiceIDs {
		if _, ok := eligible[id]; !ok {
			return entities.Invoice{}, fmt.Errorf("%w: service %s", ErrServiceNotInvoiceable, id)
		}
	}

	selected := lo.Filter(services, func(s entities.Service, _ int) bool { return i.Covers(s.ID) })
	i.TotalAmount = ComputeInvoiceTotal(selected)

	now := time.Now().UTC()
	i.ID = uuid.NewString()
	i.UserID = userID
	if i.Status == "" {
		i.Status = entities.InvoiceStatusDraft
	}
	i.Notes = strings.TrimSpace(i.Notes)
	i.CreatedAt = now
	i.UpdatedAt = now

	created, err := u.invoices.Create(ctx, i)
	if err != nil {
		return entities.Invoice{}, err
	}
	u.advanceInvoiceCounter(ctx, userID, created.InvoiceNumber)
	return created, nil
}

func (u *InvoiceUseCase) Update(ctx context.Context, userID string, i entities.Invoice) (entities.Invoice, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Invoice{}, ErrInvalidUserID
	}
	if strings.TrimSpace(i.ID) == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	if err := validateInvoiceInput(i); err != nil {
		return entities.Invoice{}, err
	}

	stored, err := u.invoices.GetByID(ctx, i.ID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if stored.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}

	services, err := u.services.ListByUserID(ctx, userID)
	if err != nil {
		return entities.Invoice{}, err
	}
	invoices, err := u.invoices.ListByUserID(ctx, userID)
	if err != nil {
		return entities.Invoice{}, err
	}

	i.InvoiceNumber = strings.TrimSpace(i.InvoiceNumber)
	if err := ValidateInvoiceNumber(i.InvoiceNumber, invoices, i.ID); err != nil {
		return entities.Invoice{}, err
	}

	// The invoice under edit is excluded from the exclusion filter so its own
	// services remain attached.
	eligible := lo.KeyBy(BuildInvoiceCandidates(services, invoices, i.ID), func(s entities.Service) string { return s.ID })
	for _, id := range i.ServiceIDs {
		if _, ok := eligible[id]; !ok {
			return entities.Invoice{}, fmt.Errorf("%w: service %s", ErrServiceNotInvoiceable, id)
		}
	}

	selected := lo.Filter(services, func(s entities.Service, _ int) bool { return i.Covers(s.ID) })
	i.TotalAmount = ComputeInvoiceTotal(selected)

	i.UserID = stored.UserID
	if i.Status == "" {
		i.Status = stored.Status
	}
	i.Notes = strings.TrimSpace(i.Notes)
	i.CreatedAt = stored.CreatedAt
	i.UpdatedAt = time.Now().UTC()

	return u.invoices.Update(ctx, i)
}

func (u *InvoiceUseCase) Send(ctx context.Context, id string) (entities.Invoice, error) {
	return u.transition(ctx, id, entities.InvoiceStatusDraft, entities.InvoiceStatusSent)
}

func (u *InvoiceUseCase) MarkPaid(ctx context.Context, id string) (entities.Invoice, error) {
	return u.transition(ctx, id, entities.InvoiceStatusSent, entities.InvoiceStatusPaid)
}

func (u *InvoiceUseCase) transition(ctx context.Context, id string, from, to entities.InvoiceStatus) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.Status != from {
		return entities.Invoice{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, inv.Status, to)
	}
	inv.Status = to
	inv.UpdatedAt = time.Now().UTC()
	return u.invoices.Update(ctx, inv)
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	inv, err := u.invoices.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.Invoice, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.invoices.ListByUserID(ctx, userID)
}

func (u *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInvoiceID
	}
	return u.invoices.Delete(ctx, id)
}

func validateInvoiceInput(i entities.Invoice) error {
	if strings.TrimSpace(i.ClientID) == "" {
		return ErrInvoiceClientRequired
	}
	if len(i.ServiceIDs) == 0 {
		return ErrInvoiceServicesRequired
	}
	if strings.TrimSpace(i.InvoiceNumber) == "" {
		return ErrInvoiceNumberRequired
	}
	if _, err := entities.ParseDate(i.IssueDate); err != nil {
		return err
	}
	if _, err := entities.ParseDate(i.DueDate); err != nil {
		return err
	}
	return nil
}

// advanceInvoiceCounter raises the stored invoice counter to the issued
// number when higher. The invoice is already saved; failures are logged and
// swallowed, the generator tolerates lagging counters.
func (u *InvoiceUseCase) advanceInvoiceCounter(ctx context.Context, userID, invoiceNumber string) {
	n, ok := InvoiceNumberSuffix(invoiceNumber)
	if !ok {
		return
	}
	cfg, err := u.config.GetByUserID(ctx, userID)
	if err != nil {
		log.Printf("[invoice][usecase] invoice counter load failed user_id=%s err=%v", userID, err)
		return
	}
	if n <= cfg.LastInvoiceNumber {
		return
	}
	cfg.AdvanceInvoiceCounter(n)
	cfg.UserID = userID
	if _, err := u.config.Save(ctx, cfg); err != nil {
		log.Printf("[invoice][usecase] invoice counter update failed user_id=%s invoice_number=%s err=%v", userID, invoiceNumber, err)
	}
}
