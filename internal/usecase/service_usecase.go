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
)

var (
	ErrInvalidUserID           = errors.New("invalid user id")
	ErrInvalidServiceID        = errors.New("invalid service id")
	ErrServiceNotFound         = errors.New("service not found")
	ErrServiceUnitRequired     = errors.New("a unit must be selected")
	ErrServiceWorkersRequired  = errors.New("at least one worker must be selected")
	ErrInvalidServiceType      = errors.New("invalid service type")
	ErrTimeRangeInverted       = errors.New("end time is before start time")
	ErrServiceUnitNotFound     = errors.New("unit not found")
	ErrWorkerRateNotConfigured = errors.New("workers without a configured rate for the unit")
)

// IServiceUseCase covers the scheduling workflow around Service records.
//
// Creation derives everything the operator does not type by hand: the
// correlative work order, the historical unit price snapshot and the frozen
// total cost. Edits recompute the total but keep the original snapshot.

type IServiceUseCase interface {
	Create(ctx context.Context, userID string, s entities.Service) (entities.Service, error)
	Update(ctx context.Context, userID string, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Service, error)
	Delete(ctx context.Context, id string) error
}

type ServiceUseCase struct {
	services interfaces.IServiceRepository
	workers  interfaces.IWorkerRepository
	units    interfaces.IUnitRepository
	config   interfaces.IUserConfigRepository
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(
	services interfaces.IServiceRepository,
	workers interfaces.IWorkerRepository,
	units interfaces.IUnitRepository,
	config interfaces.IUserConfigRepository,
) *ServiceUseCase {
	return &ServiceUseCase{services: services, workers: workers, units: units, config: config}
}

func (u *ServiceUseCase) Create(ctx context.Context, userID string, s entities.Service) (entities.Service, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Service{}, ErrInvalidUserID
	}
	if err := validateServiceInput(s); err != nil {
		return entities.Service{}, err
	}

	unit, err := u.units.GetByID(ctx, s.UnitID)
	if err != nil {
		return entities.Service{}, err
	}
	if unit.ID == "" {
		return entities.Service{}, ErrServiceUnitNotFound
	}

	existing, err := u.services.ListByUserID(ctx, userID)
	if err != nil {
		return entities.Service{}, err
	}

	if err := u.checkWorkerRates(ctx, userID, s, unit); err != nil {
		return entities.Service{}, err
	}

	cfg, err := u.config.GetByUserID(ctx, userID)
	if err != nil {
		return entities.Service{}, err
	}

	// Prefixed types get an auto-generated correlative unless the operator
	// typed one; Departure/Prearrival never carry a work order.
	if s.ServiceType.WorkOrderPrefix() == "" {
		s.WorkOrder = ""
	} else if strings.TrimSpace(s.WorkOrder) == "" {
		s.WorkOrder = NextWorkOrder(s.ServiceType, existing, cfg)
	}
	s.WorkOrder = strings.TrimSpace(s.WorkOrder)
	s.WorkOrderPet = strings.TrimSpace(s.WorkOrderPet)

	// Uniqueness also holds within one record: the pet number cannot reuse
	// the work order itself.
	if s.WorkOrder != "" && strings.EqualFold(s.WorkOrder, s.WorkOrderPet) {
		return entities.Service{}, fmt.Errorf("%w: %q is used for both numbers", ErrWorkOrderTaken, s.WorkOrderPet)
	}
	if err := ValidateWorkOrder(s.WorkOrder, existing, ""); err != nil {
		return entities.Service{}, err
	}
	if err := ValidateWorkOrder(s.WorkOrderPet, existing, ""); err != nil {
		return entities.Service{}, err
	}

	// Snapshot the unit's current price once; it never tracks later changes.
	s.HistoricalUnitPrice = unit.Price
	s.TotalCost = ComputeCost(s.ServiceType, s.HistoricalUnitPrice, s.HasPets, s.DeepCleaning)

	now := time.Now().UTC()
	s.ID = uuid.NewString()
	s.UserID = userID
	s.Payments = nil
	s.CreatedAt = now
	s.UpdatedAt = now

	created, err := u.services.Create(ctx, s)
	if err != nil {
		return entities.Service{}, err
	}

	u.advanceWorkOrderCounter(ctx, cfg, created)
	return created, nil
}

func (u *ServiceUseCase) Update(ctx context.Context, userID string, s entities.Service) (entities.Service, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Service{}, ErrInvalidUserID
	}
	if strings.TrimSpace(s.ID) == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	if err := validateServiceInput(s); err != nil {
		return entities.Service{}, err
	}

	stored, err := u.services.GetByID(ctx, s.ID)
	if err != nil {
		return entities.Service{}, err
	}
	if stored.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}

	unit, err := u.units.GetByID(ctx, s.UnitID)
	if err != nil {
		return entities.Service{}, err
	}
	if unit.ID == "" {
		return entities.Service{}, ErrServiceUnitNotFound
	}

	existing, err := u.services.ListByUserID(ctx, userID)
	if err != nil {
		return entities.Service{}, err
	}

	if err := u.checkWorkerRates(ctx, userID, s, unit); err != nil {
		return entities.Service{}, err
	}

	if s.ServiceType.WorkOrderPrefix() == "" {
		s.WorkOrder = ""
	}
	s.WorkOrder = strings.TrimSpace(s.WorkOrder)
	s.WorkOrderPet = strings.TrimSpace(s.WorkOrderPet)

	if s.WorkOrder != "" && strings.EqualFold(s.WorkOrder, s.WorkOrderPet) {
		return entities.Service{}, fmt.Errorf("%w: %q is used for both numbers", ErrWorkOrderTaken, s.WorkOrderPet)
	}
	if err := ValidateWorkOrder(s.WorkOrder, existing, s.ID); err != nil {
		return entities.Service{}, err
	}
	if err := ValidateWorkOrder(s.WorkOrderPet, existing, s.ID); err != nil {
		return entities.Service{}, err
	}

	// Keep the price frozen at creation time. A zero snapshot means the
	// service predates snapshotting, so it is taken now.
	if stored.HistoricalUnitPrice.IsPositive() {
		s.HistoricalUnitPrice = stored.HistoricalUnitPrice
	} else {
		s.HistoricalUnitPrice = unit.Price
	}
	s.TotalCost = ComputeCost(s.ServiceType, s.HistoricalUnitPrice, s.HasPets, s.DeepCleaning)

	s.UserID = stored.UserID
	s.Payments = stored.Payments
	s.CreatedAt = stored.CreatedAt
	s.UpdatedAt = time.Now().UTC()

	return u.services.Update(ctx, s)
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	s, err := u.services.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.Service, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.services.ListByUserID(ctx, userID)
}

func (u *ServiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}
	return u.services.Delete(ctx, id)
}

func validateServiceInput(s entities.Service) error {
	if strings.TrimSpace(s.UnitID) == "" {
		return ErrServiceUnitRequired
	}
	if len(s.WorkerIDs) == 0 {
		return ErrServiceWorkersRequired
	}
	if !s.ServiceType.IsValid() {
		return ErrInvalidServiceType
	}
	if _, err := entities.ParseDate(s.StartDate); err != nil {
		return err
	}
	if s.ExecutionDate != "" {
		if _, err := entities.ParseDate(s.ExecutionDate); err != nil {
			return err
		}
	}
	if _, err := entities.ParseClock(s.StartTime); err != nil {
		return err
	}
	if _, err := entities.ParseClock(s.EndTime); err != nil {
		return err
	}
	// Zero-padded HH:MM compares lexicographically. An inverted range would
	// resolve to a negative hourly pay downstream.
	if s.EndTime < s.StartTime {
		return ErrTimeRangeInverted
	}
	return nil
}

// checkWorkerRates blocks the save when an assigned worker has no usable rate
// for the unit on a type that pays through rates. Extras-only types pay via
// extras and skip the check.
func (u *ServiceUseCase) checkWorkerRates(ctx context.Context, userID string, s entities.Service, unit entities.Unit) error {
	if s.ServiceType.IsExtrasOnly() {
		return nil
	}

	workers, err := u.workers.ListByUserID(ctx, userID)
	if err != nil {
		return err
	}
	byID := make(map[string]entities.Worker, len(workers))
	for _, w := range workers {
		byID[w.ID] = w
	}

	var unconfigured []string
	for _, workerID := range s.WorkerIDs {
		w, ok := byID[workerID]
		if !ok {
			unconfigured = append(unconfigured, workerID)
			continue
		}
		if _, hasCross := w.CrossRate(s.UnitID, s.ServiceType); hasCross {
			continue
		}
		if !w.HasRateFor(s.UnitID) {
			unconfigured = append(unconfigured, w.Name)
		}
	}
	if len(unconfigured) > 0 {
		return fmt.Errorf("%w: unit %q: %s", ErrWorkerRateNotConfigured, unit.Name, strings.Join(unconfigured, ", "))
	}
	return nil
}

// advanceWorkOrderCounter opportunistically raises the per-user high-water
// mark after a create. The service is already saved, so a failure here is
// logged and swallowed; the generator tolerates lagging counters.
func (u *ServiceUseCase) advanceWorkOrderCounter(ctx context.Context, cfg entities.UserConfig, s entities.Service) {
	n, ok := WorkOrderNumber(s.WorkOrder, s.ServiceType)
	if !ok {
		return
	}
	before := cfg.WorkOrderCounter(s.ServiceType)
	cfg.AdvanceWorkOrderCounter(s.ServiceType, n)
	if cfg.WorkOrderCounter(s.ServiceType) == before {
		return
	}
	cfg.UserID = s.UserID
	if _, err := u.config.Save(ctx, cfg); err != nil {
		log.Printf("[service][usecase] work order counter update failed user_id=%s work_order=%s err=%v", s.UserID, s.WorkOrder, err)
	}
}
