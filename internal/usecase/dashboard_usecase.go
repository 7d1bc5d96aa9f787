package usecase

import (
	"context"
	"strings"
	"time"

	"kd_cleaning/internal/domain/entities"
	"kd_cleaning/internal/usecase/interfaces"

	"github.com/samber/lo"
)

// DashboardSummary aggregates the landing-page counters.
type DashboardSummary struct {
	TotalServices     int `json:"total_services"`
	TotalWorkers      int `json:"total_workers"`
	TotalUnits        int `json:"total_units"`
	TotalClients      int `json:"total_clients"`
	ServicesThisMonth int `json:"services_this_month"`
	PaymentsThisMonth int `json:"payments_this_month"`
	UnpaidInvoices    int `json:"unpaid_invoices"`
}

type IDashboardUseCase interface {
	Summary(ctx context.Context, userID string, now time.Time) (DashboardSummary, error)
}

type DashboardUseCase struct {
	services interfaces.IServiceRepository
	workers  interfaces.IWorkerRepository
	units    interfaces.IUnitRepository
	clients  interfaces.IClientRepository
	payments interfaces.IPaymentRepository
	invoices interfaces.IInvoiceRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	services interfaces.IServiceRepository,
	workers interfaces.IWorkerRepository,
	units interfaces.IUnitRepository,
	clients interfaces.IClientRepository,
	payments interfaces.IPaymentRepository,
	invoices interfaces.IInvoiceRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		services: services,
		workers:  workers,
		units:    units,
		clients:  clients,
		payments: payments,
		invoices: invoices,
	}
}

func (u *DashboardUseCase) Summary(ctx context.Context, userID string, now time.Time) (DashboardSummary, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return DashboardSummary{}, ErrInvalidUserID
	}

	services, err := u.services.ListByUserID(ctx, userID)
	if err != nil {
		return DashboardSummary{}, err
	}
	workers, err := u.workers.ListByUserID(ctx, userID)
	if err != nil {
		return DashboardSummary{}, err
	}
	units, err := u.units.ListByUserID(ctx, userID)
	if err != nil {
		return DashboardSummary{}, err
	}
	clients, err := u.clients.ListByUserID(ctx, userID)
	if err != nil {
		return DashboardSummary{}, err
	}
	payments, err := u.payments.ListByUserID(ctx, userID)
	if err != nil {
		return DashboardSummary{}, err
	}
	invoices, err := u.invoices.ListByUserID(ctx, userID)
	if err != nil {
		return DashboardSummary{}, err
	}

	monthPrefix := now.UTC().Format("2006-01")
	return DashboardSummary{
		TotalServices: len(services),
		TotalWorkers:  len(workers),
		TotalUnits:    len(units),
		TotalClients:  len(clients),
		ServicesThisMonth: lo.CountBy(services, func(s entities.Service) bool {
			return strings.HasPrefix(s.StartDate, monthPrefix)
		}),
		PaymentsThisMonth: lo.CountBy(payments, func(p entities.Payment) bool {
			return strings.HasPrefix(p.PaymentDate, monthPrefix)
		}),
		UnpaidInvoices: lo.CountBy(invoices, func(i entities.Invoice) bool {
			return i.Status != entities.InvoiceStatusPaid
		}),
	}, nil
}
