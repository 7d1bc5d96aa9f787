package usecase

import (
	"testing"

	"kd_cleaning/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceWithWorkOrder(id, workOrder string) entities.Service {
	return entities.Service{ID: id, WorkOrder: workOrder, UserID: "user-1"}
}

func TestNextWorkOrder(t *testing.T) {
	services := []entities.Service{
		serviceWithWorkOrder("s1", "T0001"),
		serviceWithWorkOrder("s2", "T0003"),
		serviceWithWorkOrder("s3", "L0002"),
		serviceWithWorkOrder("s4", ""),
	}

	t.Run("scans live records per prefix", func(t *testing.T) {
		assert.Equal(t, "T0004", NextWorkOrder(entities.ServiceTypeTouchUp, services, entities.UserConfig{}))
		assert.Equal(t, "L0003", NextWorkOrder(entities.ServiceTypeLandscaping, services, entities.UserConfig{}))
		assert.Equal(t, "C0001", NextWorkOrder(entities.ServiceTypeTerceros, services, entities.UserConfig{}))
	})

	t.Run("counter ahead of records wins", func(t *testing.T) {
		cfg := entities.UserConfig{LastTouchUpNumber: 9}
		assert.Equal(t, "T0010", NextWorkOrder(entities.ServiceTypeTouchUp, services, cfg))
	})

	t.Run("lagging counter cannot collide", func(t *testing.T) {
		cfg := entities.UserConfig{LastTouchUpNumber: 1}
		assert.Equal(t, "T0004", NextWorkOrder(entities.ServiceTypeTouchUp, services, cfg))
	})

	t.Run("no work order for departure and prearrival", func(t *testing.T) {
		assert.Equal(t, "", NextWorkOrder(entities.ServiceTypeDepartureClean, services, entities.UserConfig{}))
		assert.Equal(t, "", NextWorkOrder(entities.ServiceTypePrearrivalService, services, entities.UserConfig{}))
	})

	t.Run("malformed suffixes are ignored", func(t *testing.T) {
		mixed := append(services, serviceWithWorkOrder("s5", "Txyz"))
		assert.Equal(t, "T0004", NextWorkOrder(entities.ServiceTypeTouchUp, mixed, entities.UserConfig{}))
	})
}

func TestNextInvoiceNumber(t *testing.T) {
	t.Run("counter authoritative", func(t *testing.T) {
		cfg := entities.UserConfig{LastInvoiceNumber: 11}
		assert.Equal(t, "INV-0012", NextInvoiceNumber(cfg, nil))
	})

	t.Run("live invoices raise a lagging counter", func(t *testing.T) {
		cfg := entities.UserConfig{LastInvoiceNumber: 2}
		invoices := []entities.Invoice{
			{ID: "i1", InvoiceNumber: "INV-0007"},
			{ID: "i2", InvoiceNumber: "INV-0004"},
		}
		assert.Equal(t, "INV-0008", NextInvoiceNumber(cfg, invoices))
	})

	t.Run("first invoice", func(t *testing.T) {
		assert.Equal(t, "INV-0001", NextInvoiceNumber(entities.UserConfig{}, nil))
	})
}

func TestWorkOrderNumber(t *testing.T) {
	n, ok := WorkOrderNumber("T0007", entities.ServiceTypeTouchUp)
	require.True(t, ok)
	assert.Equal(t, 7, n)

	_, ok = WorkOrderNumber("T0007", entities.ServiceTypeLandscaping)
	assert.False(t, ok)

	_, ok = WorkOrderNumber("", entities.ServiceTypeTouchUp)
	assert.False(t, ok)
}

func TestInvoiceNumberSuffix(t *testing.T) {
	n, ok := InvoiceNumberSuffix("INV-0012")
	require.True(t, ok)
	assert.Equal(t, 12, n)

	_, ok = InvoiceNumberSuffix("draft")
	assert.False(t, ok)
}

func TestValidateWorkOrder(t *testing.T) {
	services := []entities.Service{
		{ID: "s1", WorkOrder: "T0001", WorkOrderPet: "T0001-P"},
		{ID: "s2", WorkOrder: "L0004"},
	}

	t.Run("empty is accepted", func(t *testing.T) {
		assert.NoError(t, ValidateWorkOrder("", services, ""))
	})

	t.Run("case insensitive collision on work_order", func(t *testing.T) {
		err := ValidateWorkOrder("t0001", services, "")
		assert.ErrorIs(t, err, ErrWorkOrderTaken)
	})

	t.Run("collision against work_order_pet", func(t *testing.T) {
		err := ValidateWorkOrder("T0001-p", services, "")
		assert.ErrorIs(t, err, ErrWorkOrderTaken)
	})

	t.Run("editing a service skips itself", func(t *testing.T) {
		assert.NoError(t, ValidateWorkOrder("T0001", services, "s1"))
	})

	t.Run("fresh value accepted", func(t *testing.T) {
		assert.NoError(t, ValidateWorkOrder("T0002", services, ""))
	})
}

func TestValidateInvoiceNumber(t *testing.T) {
	invoices := []entities.Invoice{{ID: "i1", InvoiceNumber: "INV-0001"}}

	assert.ErrorIs(t, ValidateInvoiceNumber("inv-0001", invoices, ""), ErrInvoiceNumberTaken)
	assert.NoError(t, ValidateInvoiceNumber("INV-0001", invoices, "i1"))
	assert.NoError(t, ValidateInvoiceNumber("INV-0002", invoices, ""))
}
