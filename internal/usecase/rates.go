package usecase

import (
	"kd_cleaning/internal/domain/entities"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ResolvePay computes what a worker earns for a single service.
//
// Resolution order:
//  1. Extras-only types (Touch Up, Landscaping, Terceros): base pay is zero,
//     only the extras' worker_pay is owed.
//  2. Pay-by-hour services: hourly_rate x fractional hours between start and
//     end time. An inverted time range produces a negative base; the service
//     usecase rejects such ranges at save time and the payment aggregator
//     refuses to commit any non-positive resolved pay.
//  3. Fixed pay: the (unit, service type) cross rate when configured and
//     positive, else the flat unit rate, else zero.
//
// The extras' worker_pay is added on every branch. A zero result on a
// non-extras-only service signals missing rate configuration; the payment
// aggregator refuses to commit it rather than treating the work as free.
func ResolvePay(service entities.Service, workerID string, workers []entities.Worker, units []entities.Unit) decimal.Decimal {
	worker, workerFound := lo.Find(workers, func(w entities.Worker) bool { return w.ID == workerID })
	_, unitFound := lo.Find(units, func(u entities.Unit) bool { return u.ID == service.UnitID })
	if !workerFound || !unitFound {
		return decimal.Zero
	}

	if service.ServiceType.IsExtrasOnly() {
		return service.ExtrasWorkerPay()
	}

	base := decimal.Zero
	if service.PayByHour {
		hours, err := entities.HoursBetween(service.StartTime, service.EndTime)
		if err == nil {
			base = worker.HourlyRate.Mul(hours)
		}
	} else {
		if rate, ok := worker.CrossRate(service.UnitID, service.ServiceType); ok && rate.IsPositive() {
			base = rate
		} else {
			base = worker.UnitRate(service.UnitID)
		}
	}

	return base.Add(service.ExtrasWorkerPay())
}
