package usecase

import (
	"kd_cleaning/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PetsFee is the flat surcharge billed when a service involves pets.
var PetsFee = decimal.NewFromInt(50)

var deepCleaningMultiplier = decimal.NewFromInt(2)

// ComputeCost derives the client-facing total for a service.
//
//   - pets add a flat 50 surcharge
//   - deep cleaning doubles the whole base+pets sum, not just the base
//   - extras-only types (Touch Up, Landscaping, Terceros) exclude the unit
//     price entirely and bill surcharges only; the extras' client price is
//     deliberately not part of this total either
//
// unitHistoricalPrice must be the price snapshotted when the service was
// first created, never the unit's live price on a later edit.
func ComputeCost(serviceType entities.ServiceType, unitHistoricalPrice decimal.Decimal, hasPets, deepCleaning bool) decimal.Decimal {
	petsFee := decimal.Zero
	if hasPets {
		petsFee = PetsFee
	}
	multiplier := decimal.NewFromInt(1)
	if deepCleaning {
		multiplier = deepCleaningMultiplier
	}

	if serviceType.IsExtrasOnly() {
		return petsFee.Mul(multiplier)
	}
	return unitHistoricalPrice.Add(petsFee).Mul(multiplier)
}
