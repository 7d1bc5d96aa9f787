package usecase

import (
	"testing"

	"kd_cleaning/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

func testWorker(id string) entities.Worker {
	return entities.Worker{ID: id, Name: "Worker " + id, UserID: "user-1"}
}

func testUnit(id string) entities.Unit {
	return entities.Unit{ID: id, Name: "Unit " + id, UserID: "user-1"}
}

func TestResolvePay_HourlyRate(t *testing.T) {
	worker := testWorker("w1")
	worker.HourlyRate = dec("20")

	service := entities.Service{
		ID:          "s1",
		UnitID:      "u1",
		WorkerIDs:   []string{"w1"},
		ServiceType: entities.ServiceTypeDepartureClean,
		PayByHour:   true,
		StartTime:   "09:00",
		EndTime:     "13:00",
	}

	pay := ResolvePay(service, "w1", []entities.Worker{worker}, []entities.Unit{testUnit("u1")})
	assert.True(t, dec("80").Equal(pay), "expected 80.00, got %s", pay)
}

func TestResolvePay_FractionalHours(t *testing.T) {
	worker := testWorker("w1")
	worker.HourlyRate = dec("10")

	service := entities.Service{
		ID:          "s1",
		UnitID:      "u1",
		WorkerIDs:   []string{"w1"},
		ServiceType: entities.ServiceTypePrearrivalService,
		PayByHour:   true,
		StartTime:   "09:00",
		EndTime:     "10:30",
	}

	pay := ResolvePay(service, "w1", []entities.Worker{worker}, []entities.Unit{testUnit("u1")})
	assert.True(t, dec("15").Equal(pay), "expected 15, got %s", pay)
}

func TestResolvePay_CrossRatePrecedence(t *testing.T) {
	worker := testWorker("w1")
	worker.UnitRates = map[string]decimal.Decimal{"u1": dec("10")}
	worker.CrossRates = map[string]map[entities.ServiceType]decimal.Decimal{
		"u1": {entities.ServiceTypeDepartureClean: dec("25")},
	}

	service := entities.Service{
		ID:          "s1",
		UnitID:      "u1",
		WorkerIDs:   []string{"w1"},
		ServiceType: entities.ServiceTypeDepartureClean,
		StartTime:   "09:00",
		EndTime:     "12:00",
	}

	pay := ResolvePay(service, "w1", []entities.Worker{worker}, []entities.Unit{testUnit("u1")})
	assert.True(t, dec("25").Equal(pay), "cross rate must win over unit rate, got %s", pay)
}

func TestResolvePay_CrossRateZeroFallsBackToUnitRate(t *testing.T) {
	worker := testWorker("w1")
	worker.UnitRates = map[string]decimal.Decimal{"u1": dec("10")}
	worker.CrossRates = map[string]map[entities.ServiceType]decimal.Decimal{
		"u1": {entities.ServiceTypeDepartureClean: decimal.Zero},
	}

	service := entities.Service{
		ID:          "s1",
		UnitID:      "u1",
		WorkerIDs:   []string{"w1"},
		ServiceType: entities.ServiceTypeDepartureClean,
		StartTime:   "09:00",
		EndTime:     "12:00",
	}

	pay := ResolvePay(service, "w1", []entities.Worker{worker}, []entities.Unit{testUnit("u1")})
	assert.True(t, dec("10").Equal(pay), "zero cross rate falls back to unit rate, got %s", pay)
}

func TestResolvePay_ExtrasOnlyTypesIgnoreRates(t *testing.T) {
	worker := testWorker("w1")
	worker.HourlyRate = dec("99")
	worker.UnitRates = map[string]decimal.Decimal{"u1": dec("50")}

	for _, serviceType := range []entities.ServiceType{
		entities.ServiceTypeTouchUp,
		entities.ServiceTypeLandscaping,
		entities.ServiceTypeTerceros,
	} {
		service := entities.Service{
			ID:          "s1",
			UnitID:      "u1",
			WorkerIDs:   []string{"w1"},
			ServiceType: serviceType,
			PayByHour:   true,
			StartTime:   "09:00",
			EndTime:     "17:00",
			Extras:      []entities.Extra{{Name: "Window wash", WorkerPay: dec("15")}},
		}

		pay := ResolvePay(service, "w1", []entities.Worker{worker}, []entities.Unit{testUnit("u1")})
		assert.True(t, dec("15").Equal(pay), "%s should pay extras only, got %s", serviceType, pay)
	}
}

func TestResolvePay_ExtrasAddedToBase(t *testing.T) {
	worker := testWorker("w1")
	worker.UnitRates = map[string]decimal.Decimal{"u1": dec("40")}

	service := entities.Service{
		ID:          "s1",
		UnitID:      "u1",
		WorkerIDs:   []string{"w1"},
		ServiceType: entities.ServiceTypeDepartureClean,
		StartTime:   "09:00",
		EndTime:     "12:00",
		Extras: []entities.Extra{
			{Name: "Fridge", WorkerPay: dec("10")},
			{Name: "Oven", WorkerPay: dec("5.50")},
		},
	}

	pay := ResolvePay(service, "w1", []entities.Worker{worker}, []entities.Unit{testUnit("u1")})
	assert.True(t, dec("55.50").Equal(pay), "expected 55.50, got %s", pay)
}

func TestResolvePay_MissingRateResolvesToZero(t *testing.T) {
	worker := testWorker("w1")

	service := entities.Service{
		ID:          "s1",
		UnitID:      "u1",
		WorkerIDs:   []string{"w1"},
		ServiceType: entities.ServiceTypeDepartureClean,
		StartTime:   "09:00",
		EndTime:     "12:00",
	}

	pay := ResolvePay(service, "w1", []entities.Worker{worker}, []entities.Unit{testUnit("u1")})
	assert.True(t, pay.IsZero(), "missing rates resolve to zero so the aggregator can refuse, got %s", pay)
}

func TestResolvePay_UnknownWorkerOrUnit(t *testing.T) {
	worker := testWorker("w1")
	worker.UnitRates = map[string]decimal.Decimal{"u1": dec("40")}

	service := entities.Service{
		ID:          "s1",
		UnitID:      "u1",
		WorkerIDs:   []string{"w1"},
		ServiceType: entities.ServiceTypeDepartureClean,
		StartTime:   "09:00",
		EndTime:     "12:00",
	}

	require.True(t, ResolvePay(service, "ghost", []entities.Worker{worker}, []entities.Unit{testUnit("u1")}).IsZero())
	require.True(t, ResolvePay(service, "w1", []entities.Worker{worker}, nil).IsZero())
}
