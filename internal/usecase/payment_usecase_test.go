package usecase

import (
	"context"
	"testing"

	"kd_cleaning/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paidService(id, unitID, workerID, date string) entities.Service {
	return entities.Service{
		ID:          id,
		UnitID:      unitID,
		WorkerIDs:   []string{workerID},
		ServiceType: entities.ServiceTypeDepartureClean,
		StartDate:   date,
		StartTime:   "09:00",
		EndTime:     "12:00",
		UserID:      "user-1",
	}
}

func TestBuildPaymentCandidates(t *testing.T) {
	services := []entities.Service{
		paidService("s1", "u1", "w1", "2026-08-05"),
		paidService("s2", "u1", "w1", "2026-08-20"),
		paidService("s3", "u1", "w2", "2026-08-10"),
		paidService("s4", "u1", "w1", "2026-09-01"),
	}

	t.Run("range and worker filter", func(t *testing.T) {
		got := BuildPaymentCandidates("w1", "2026-08-01", "2026-08-31", services, nil, "")
		require.Len(t, got, 2)
		assert.Equal(t, "s1", got[0].ID)
		assert.Equal(t, "s2", got[1].ID)
	})

	t.Run("execution date overrides start date", func(t *testing.T) {
		moved := paidService("s5", "u1", "w1", "2026-07-29")
		moved.ExecutionDate = "2026-08-02"
		got := BuildPaymentCandidates("w1", "2026-08-01", "2026-08-31", append(services, moved), nil, "")
		require.Len(t, got, 3)
	})

	t.Run("already paid by same worker excluded", func(t *testing.T) {
		payments := []entities.Payment{{ID: "p1", WorkerID: "w1", ServiceIDs: []string{"s1"}, UserID: "user-1"}}
		got := BuildPaymentCandidates("w1", "2026-08-01", "2026-08-31", services, payments, "")
		require.Len(t, got, 1)
		assert.Equal(t, "s2", got[0].ID)
	})

	t.Run("payment by another worker does not exclude", func(t *testing.T) {
		payments := []entities.Payment{{ID: "p1", WorkerID: "w2", ServiceIDs: []string{"s1"}, UserID: "user-1"}}
		got := BuildPaymentCandidates("w1", "2026-08-01", "2026-08-31", services, payments, "")
		require.Len(t, got, 2)
	})

	t.Run("editing keeps covered services selectable", func(t *testing.T) {
		payments := []entities.Payment{{ID: "p1", WorkerID: "w1", ServiceIDs: []string{"s1"}, UserID: "user-1"}}
		got := BuildPaymentCandidates("w1", "2026-08-01", "2026-08-31", services, payments, "p1")
		require.Len(t, got, 2)
	})
}

func TestComputePaymentTotal(t *testing.T) {
	worker := testWorker("w1")
	worker.UnitRates = map[string]decimal.Decimal{"u1": dec("40"), "u2": dec("25")}

	selected := []entities.Service{
		paidService("s1", "u1", "w1", "2026-08-05"),
		paidService("s2", "u2", "w1", "2026-08-06"),
	}
	units := []entities.Unit{testUnit("u1"), testUnit("u2")}

	total := ComputePaymentTotal(selected, "w1", []entities.Worker{worker}, units)
	assert.True(t, dec("65").Equal(total), "got %s", total)
}

func validPaymentInput(serviceIDs ...string) entities.Payment {
	return entities.Payment{
		WorkerID:        "w1",
		ServiceIDs:      serviceIDs,
		PaymentDate:     "2026-08-31",
		OperationNumber: "OP-1234",
	}
}

func newPaymentFixture(t *testing.T) (*PaymentUseCase, *fakeServiceRepo, *fakePaymentRepo) {
	t.Helper()
	worker := testWorker("w1")
	worker.UnitRates = map[string]decimal.Decimal{"u1": dec("40")}
	services := newFakeServiceRepo(
		paidService("s1", "u1", "w1", "2026-08-05"),
		paidService("s2", "u1", "w1", "2026-08-20"),
	)
	payments := newFakePaymentRepo()
	uc := NewPaymentUseCase(payments, services, newFakeWorkerRepo(worker), newFakeUnitRepo(testUnit("u1")))
	return uc, services, payments
}

func TestPaymentCreate_CommitsTotalAndMarksServices(t *testing.T) {
	uc, services, _ := newPaymentFixture(t)

	created, err := uc.Create(context.Background(), "user-1", validPaymentInput("s1", "s2"))
	require.NoError(t, err)

	assert.True(t, dec("80").Equal(created.TotalAmount), "got %s", created.TotalAmount)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "user-1", created.UserID)

	s1, _ := services.GetByID(context.Background(), "s1")
	require.Len(t, s1.Payments, 1)
	assert.Equal(t, "w1", s1.Payments[0].WorkerID)
	assert.True(t, s1.Payments[0].IsPaid)
	assert.True(t, dec("40").Equal(s1.Payments[0].Amount), "frozen amount, got %s", s1.Payments[0].Amount)
}

func TestPaymentCreate_RefusesDoublePayment(t *testing.T) {
	uc, _, _ := newPaymentFixture(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, "user-1", validPaymentInput("s1"))
	require.NoError(t, err)

	_, err = uc.Create(ctx, "user-1", validPaymentInput("s1"))
	assert.ErrorIs(t, err, ErrServiceAlreadyPaid)
}

func TestPaymentCreate_RefusesZeroPayServices(t *testing.T) {
	// Worker has no rate for u2, so s3 resolves to zero pay.
	worker := testWorker("w1")
	worker.UnitRates = map[string]decimal.Decimal{"u1": dec("40")}
	unit2 := testUnit("u2")
	unit2.Name = "Sea View 2B"
	services := newFakeServiceRepo(paidService("s3", "u2", "w1", "2026-08-05"))
	uc := NewPaymentUseCase(newFakePaymentRepo(), services, newFakeWorkerRepo(worker), newFakeUnitRepo(unit2))

	_, err := uc.Create(context.Background(), "user-1", validPaymentInput("s3"))
	require.ErrorIs(t, err, ErrZeroPayServices)
	assert.Contains(t, err.Error(), "Sea View 2B")
}

func TestPaymentCreate_RefusesNegativePayServices(t *testing.T) {
	// An hourly service whose stored time range runs backwards resolves to a
	// negative pay; committing it would shrink the payout.
	worker := testWorker("w1")
	worker.HourlyRate = dec("20")
	unit := testUnit("u1")
	unit.Name = "Sea View 2B"
	inverted := paidService("s6", "u1", "w1", "2026-08-05")
	inverted.PayByHour = true
	inverted.StartTime = "13:00"
	inverted.EndTime = "09:00"
	services := newFakeServiceRepo(inverted)
	uc := NewPaymentUseCase(newFakePaymentRepo(), services, newFakeWorkerRepo(worker), newFakeUnitRepo(unit))

	_, err := uc.Create(context.Background(), "user-1", validPaymentInput("s6"))
	require.ErrorIs(t, err, ErrZeroPayServices)
	assert.Contains(t, err.Error(), "Sea View 2B")
}

func TestPaymentCreate_Validation(t *testing.T) {
	uc, _, _ := newPaymentFixture(t)
	ctx := context.Background()

	t.Run("worker required", func(t *testing.T) {
		in := validPaymentInput("s1")
		in.WorkerID = " "
		_, err := uc.Create(ctx, "user-1", in)
		assert.ErrorIs(t, err, ErrPaymentWorkerRequired)
	})

	t.Run("services required", func(t *testing.T) {
		_, err := uc.Create(ctx, "user-1", validPaymentInput())
		assert.ErrorIs(t, err, ErrPaymentServicesRequired)
	})

	t.Run("operation number required", func(t *testing.T) {
		in := validPaymentInput("s1")
		in.OperationNumber = ""
		_, err := uc.Create(ctx, "user-1", in)
		assert.ErrorIs(t, err, ErrOperationNumberRequired)
	})

	t.Run("payment date required", func(t *testing.T) {
		in := validPaymentInput("s1")
		in.PaymentDate = "31/08/2026"
		_, err := uc.Create(ctx, "user-1", in)
		assert.ErrorIs(t, err, entities.ErrInvalidDate)
	})
}

func TestPaymentUpdate_RecomputesTotalAndReplacesServiceEntry(t *testing.T) {
	uc, services, _ := newPaymentFixture(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, "user-1", validPaymentInput("s1"))
	require.NoError(t, err)

	edit := created
	edit.ServiceIDs = []string{"s1", "s2"}
	updated, err := uc.Update(ctx, "user-1", edit)
	require.NoError(t, err)
	assert.True(t, dec("80").Equal(updated.TotalAmount), "got %s", updated.TotalAmount)

	// The service keeps a single entry per worker even after re-marking.
	s1, _ := services.GetByID(ctx, "s1")
	require.Len(t, s1.Payments, 1)
	assert.Equal(t, "w1", s1.Payments[0].WorkerID)
}

func TestPaymentUpdate_ClearsDroppedServices(t *testing.T) {
	uc, services, _ := newPaymentFixture(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, "user-1", validPaymentInput("s1", "s2"))
	require.NoError(t, err)

	edit := created
	edit.ServiceIDs = []string{"s1"}
	_, err = uc.Update(ctx, "user-1", edit)
	require.NoError(t, err)

	s2, _ := services.GetByID(ctx, "s2")
	assert.Empty(t, s2.Payments, "dropped service must lose its paid entry")

	candidates, err := uc.BuildCandidates(ctx, "user-1", "w1", "2026-08-01", "2026-08-31", "")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "s2", candidates[0].ID)
}

func TestPaymentUpdate_NotFound(t *testing.T) {
	uc, _, _ := newPaymentFixture(t)

	in := validPaymentInput("s1")
	in.ID = "ghost"
	_, err := uc.Update(context.Background(), "user-1", in)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestPaymentBuildCandidates_Validation(t *testing.T) {
	uc, _, _ := newPaymentFixture(t)
	ctx := context.Background()

	_, err := uc.BuildCandidates(ctx, "user-1", "w1", "2026-08-31", "2026-08-01", "")
	assert.ErrorIs(t, err, ErrDateRangeInverted)

	_, err = uc.BuildCandidates(ctx, "user-1", " ", "2026-08-01", "2026-08-31", "")
	assert.ErrorIs(t, err, ErrPaymentWorkerRequired)

	_, err = uc.BuildCandidates(ctx, "user-1", "w1", "bad", "2026-08-31", "")
	assert.ErrorIs(t, err, entities.ErrInvalidDate)
}
