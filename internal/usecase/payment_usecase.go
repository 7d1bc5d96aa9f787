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
	ErrInvalidPaymentID        = errors.New("invalid payment id")
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrPaymentWorkerRequired   = errors.New("a worker must be selected")
	ErrPaymentServicesRequired = errors.New("at least one service must be selected")
	ErrDateRangeInverted       = errors.New("date range start is after end")
	ErrOperationNumberRequired = errors.New("operation number is required")
	ErrZeroPayServices         = errors.New("selected services resolve to a zero pay")
	ErrZeroPaymentTotal        = errors.New("payment total must be positive")
	ErrServiceAlreadyPaid      = errors.New("service already covered by a payment for this worker")
)

// BuildPaymentCandidates selects the services a worker can still be paid for
// within an inclusive effective-date range.
//
// When editingPaymentID is empty (a new payment) services already covered by
// any committed payment for the same worker are excluded; when editing, no
// exclusion applies so the payment's own services stay selectable.
//
// ISO dates compare lexicographically, so the range filter is a plain string
// comparison.
func BuildPaymentCandidates(workerID, startDate, endDate string, services []entities.Service, payments []entities.Payment, editingPaymentID string) []entities.Service {
	candidates := lo.Filter(services, func(s entities.Service, _ int) bool {
		d := s.EffectiveDate()
		return d >= startDate && d <= endDate && s.HasWorker(workerID)
	})
	if editingPaymentID != "" {
		return candidates
	}
	return lo.Filter(candidates, func(s entities.Service, _ int) bool {
		return !lo.SomeBy(payments, func(p entities.Payment) bool {
			return p.WorkerID == workerID && p.Covers(s.ID)
		})
	})
}

// ComputePaymentTotal sums the resolved pay of the selected services.
func ComputePaymentTotal(selected []entities.Service, workerID string, workers []entities.Worker, units []entities.Unit) decimal.Decimal {
	total := decimal.Zero
	for _, s := range selected {
		total = total.Add(ResolvePay(s, workerID, workers, units))
	}
	return total
}

// IPaymentUseCase covers worker payment aggregation and persistence.

type IPaymentUseCase interface {
	BuildCandidates(ctx context.Context, userID, workerID, startDate, endDate, editingPaymentID string) ([]entities.Service, error)
	Create(ctx context.Context, userID string, p entities.Payment) (entities.Payment, error)
	Update(ctx context.Context, userID string, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Payment, error)
	Delete(ctx context.Context, id string) error
}

type PaymentUseCase struct {
	payments interfaces.IPaymentRepository
	services interfaces.IServiceRepository
	workers  interfaces.IWorkerRepository
	units    interfaces.IUnitRepository
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	payments interfaces.IPaymentRepository,
	services interfaces.IServiceRepository,
	workers interfaces.IWorkerRepository,
	units interfaces.IUnitRepository,
) *PaymentUseCase {
	return &PaymentUseCase{payments: payments, services: services, workers: workers, units: units}
}

func (u *PaymentUseCase) BuildCandidates(ctx context.Context, userID, workerID, startDate, endDate, editingPaymentID string) ([]entities.Service, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	workerID = strings.TrimSpace(workerID)
	if workerID == "" {
		return nil, ErrPaymentWorkerRequired
	}
	if _, err := entities.ParseDate(startDate); err != nil {
		return nil, err
	}
	if _, err := entities.ParseDate(endDate); err != nil {
		return nil, err
	}
	if startDate > endDate {
		return nil, ErrDateRangeInverted
	}

	services, err := u.services.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	payments, err := u.payments.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return BuildPaymentCandidates(workerID, startDate, endDate, services, payments, editingPaymentID), nil
}

func (u *PaymentUseCase) Create(ctx context.Context, userID string, p entities.Payment) (entities.Payment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Payment{}, ErrInvalidUserID
	}
	snapshot, err := u.loadSnapshot(ctx, userID)
	if err != nil {
		return entities.Payment{}, err
	}
	if err := u.validatePayment(p, snapshot, ""); err != nil {
		return entities.Payment{}, err
	}

	// Re-check eligibility against the fresh snapshot. Two concurrent
	// commits can still both pass (the store holds no lock), but this closes
	// the window for sequential double payments on a stale form.
	for _, id := range p.ServiceIDs {
		already := lo.SomeBy(snapshot.payments, func(existing entities.Payment) bool {
			return existing.WorkerID == p.WorkerID && existing.Covers(id)
		})
		if already {
			return entities.Payment{}, fmt.Errorf("%w: service %s", ErrServiceAlreadyPaid, id)
		}
	}

	selected := snapshot.selectServices(p.ServiceIDs)
	p.TotalAmount = ComputePaymentTotal(selected, p.WorkerID, snapshot.workers, snapshot.units)
	if !p.TotalAmount.IsPositive() {
		return entities.Payment{}, ErrZeroPaymentTotal
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.UserID = userID
	p.OperationNumber = strings.TrimSpace(p.OperationNumber)
	p.Notes = strings.TrimSpace(p.Notes)
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := u.payments.Create(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}
	u.markServicesPaid(ctx, created, snapshot)
	return created, nil
}

func (u *PaymentUseCase) Update(ctx context.Context, userID string, p entities.Payment) (entities.Payment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Payment{}, ErrInvalidUserID
	}
	if strings.TrimSpace(p.ID) == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	stored, err := u.payments.GetByID(ctx, p.ID)
	if err != nil {
		return entities.Payment{}, err
	}
	if stored.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	snapshot, err := u.loadSnapshot(ctx, userID)
	if err != nil {
		return entities.Payment{}, err
	}
	if err := u.validatePayment(p, snapshot, p.ID); err != nil {
		return entities.Payment{}, err
	}

	selected := snapshot.selectServices(p.ServiceIDs)
	p.TotalAmount = ComputePaymentTotal(selected, p.WorkerID, snapshot.workers, snapshot.units)
	if !p.TotalAmount.IsPositive() {
		return entities.Payment{}, ErrZeroPaymentTotal
	}

	p.UserID = stored.UserID
	p.OperationNumber = strings.TrimSpace(p.OperationNumber)
	p.Notes = strings.TrimSpace(p.Notes)
	p.CreatedAt = stored.CreatedAt
	p.UpdatedAt = time.Now().UTC()

	updated, err := u.payments.Update(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}

	// Services dropped from the edit (or left behind by a worker change)
	// become payable again only once their stale paid entry is removed.
	dropped := stored.ServiceIDs
	if stored.WorkerID == updated.WorkerID {
		dropped, _ = lo.Difference(stored.ServiceIDs, updated.ServiceIDs)
	}
	u.clearWorkerPayments(ctx, stored.WorkerID, dropped, snapshot)

	u.markServicesPaid(ctx, updated, snapshot)
	return updated, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	p, err := u.payments.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.Payment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.payments.ListByUserID(ctx, userID)
}

func (u *PaymentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPaymentID
	}
	return u.payments.Delete(ctx, id)
}

type paymentSnapshot struct {
	services []entities.Service
	payments []entities.Payment
	workers  []entities.Worker
	units    []entities.Unit
}

func (s paymentSnapshot) selectServices(ids []string) []entities.Service {
	return lo.Filter(s.services, func(svc entities.Service, _ int) bool {
		return lo.Contains(ids, svc.ID)
	})
}

func (u *PaymentUseCase) loadSnapshot(ctx context.Context, userID string) (paymentSnapshot, error) {
	services, err := u.services.ListByUserID(ctx, userID)
	if err != nil {
		return paymentSnapshot{}, err
	}
	payments, err := u.payments.ListByUserID(ctx, userID)
	if err != nil {
		return paymentSnapshot{}, err
	}
	workers, err := u.workers.ListByUserID(ctx, userID)
	if err != nil {
		return paymentSnapshot{}, err
	}
	units, err := u.units.ListByUserID(ctx, userID)
	if err != nil {
		return paymentSnapshot{}, err
	}
	return paymentSnapshot{services: services, payments: payments, workers: workers, units: units}, nil
}

func (u *PaymentUseCase) validatePayment(p entities.Payment, snapshot paymentSnapshot, editingPaymentID string) error {
	if strings.TrimSpace(p.WorkerID) == "" {
		return ErrPaymentWorkerRequired
	}
	if len(p.ServiceIDs) == 0 {
		return ErrPaymentServicesRequired
	}
	if strings.TrimSpace(p.OperationNumber) == "" {
		return ErrOperationNumberRequired
	}
	if _, err := entities.ParseDate(p.PaymentDate); err != nil {
		return err
	}

	// A zero resolved pay means the worker has no rate configured for the
	// unit; a negative one means a bad time range slipped into the record.
	// Refusing the commit surfaces the misconfiguration instead of letting
	// it distort the payout.
	var zeroPay []string
	for _, s := range snapshot.selectServices(p.ServiceIDs) {
		if !ResolvePay(s, p.WorkerID, snapshot.workers, snapshot.units).IsPositive() {
			name := s.UnitID
			if unit, ok := lo.Find(snapshot.units, func(u entities.Unit) bool { return u.ID == s.UnitID }); ok {
				name = unit.Name
			}
			zeroPay = append(zeroPay, name)
		}
	}
	if len(zeroPay) > 0 {
		return fmt.Errorf("%w: %s", ErrZeroPayServices, strings.Join(zeroPay, ", "))
	}
	return nil
}

// markServicesPaid appends a PaymentService entry to every covered service,
// replacing any prior entry for the same worker. The payment itself is
// already persisted; per-service failures are logged and skipped so one bad
// record does not roll back the batch.
func (u *PaymentUseCase) markServicesPaid(ctx context.Context, p entities.Payment, snapshot paymentSnapshot) {
	for _, s := range snapshot.selectServices(p.ServiceIDs) {
		kept := lo.Filter(s.Payments, func(ps entities.PaymentService, _ int) bool {
			return ps.WorkerID != p.WorkerID
		})
		s.Payments = append(kept, entities.PaymentService{
			ServiceID: s.ID,
			WorkerID:  p.WorkerID,
			Amount:    ResolvePay(s, p.WorkerID, snapshot.workers, snapshot.units),
			IsPaid:    true,
		})
		s.UpdatedAt = time.Now().UTC()
		if _, err := u.services.Update(ctx, s); err != nil {
			log.Printf("[payment][usecase] marking service paid failed payment_id=%s service_id=%s err=%v", p.ID, s.ID, err)
		}
	}
}

// clearWorkerPayments removes the worker's paid entry from each listed
// service, writing the cleared copy back into the snapshot so a following
// markServicesPaid pass starts from it. Same best-effort contract as
// markServicesPaid.
func (u *PaymentUseCase) clearWorkerPayments(ctx context.Context, workerID string, serviceIDs []string, snapshot paymentSnapshot) {
	for i := range snapshot.services {
		s := snapshot.services[i]
		if !lo.Contains(serviceIDs, s.ID) {
			continue
		}
		kept := lo.Filter(s.Payments, func(ps entities.PaymentService, _ int) bool {
			return ps.WorkerID != workerID
		})
		if len(kept) == len(s.Payments) {
			continue
		}
		s.Payments = kept
		s.UpdatedAt = time.Now().UTC()
		snapshot.services[i] = s
		if _, err := u.services.Update(ctx, s); err != nil {
			log.Printf("[payment][usecase] clearing paid entry failed service_id=%s worker_id=%s err=%v", s.ID, workerID, err)
		}
	}
}
