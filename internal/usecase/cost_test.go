package usecase

import (
	"testing"

	"kd_cleaning/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestComputeCost(t *testing.T) {
	cases := []struct {
		name         string
		serviceType  entities.ServiceType
		price        string
		hasPets      bool
		deepCleaning bool
		want         string
	}{
		{name: "base price only", serviceType: entities.ServiceTypeDepartureClean, price: "100", want: "100"},
		{name: "pets surcharge", serviceType: entities.ServiceTypeDepartureClean, price: "100", hasPets: true, want: "150"},
		{name: "deep cleaning doubles base plus pets", serviceType: entities.ServiceTypeDepartureClean, price: "100", hasPets: true, deepCleaning: true, want: "300"},
		{name: "deep cleaning without pets", serviceType: entities.ServiceTypePrearrivalService, price: "80", deepCleaning: true, want: "160"},
		{name: "touch up excludes unit price", serviceType: entities.ServiceTypeTouchUp, price: "100", want: "0"},
		{name: "touch up with pets", serviceType: entities.ServiceTypeTouchUp, price: "100", hasPets: true, want: "50"},
		{name: "touch up pets and deep", serviceType: entities.ServiceTypeTouchUp, price: "100", hasPets: true, deepCleaning: true, want: "100"},
		{name: "landscaping excludes unit price", serviceType: entities.ServiceTypeLandscaping, price: "250", want: "0"},
		{name: "terceros excludes unit price", serviceType: entities.ServiceTypeTerceros, price: "250", hasPets: true, want: "50"},
		{name: "fractional price", serviceType: entities.ServiceTypeDepartureClean, price: "99.99", hasPets: true, deepCleaning: true, want: "299.98"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeCost(tc.serviceType, dec(tc.price), tc.hasPets, tc.deepCleaning)
			assert.True(t, dec(tc.want).Equal(got), "expected %s, got %s", tc.want, got)
		})
	}
}

func TestComputeCost_Idempotent(t *testing.T) {
	first := ComputeCost(entities.ServiceTypeDepartureClean, dec("123.45"), true, true)
	second := ComputeCost(entities.ServiceTypeDepartureClean, dec("123.45"), true, true)
	assert.True(t, first.Equal(second))
}
