package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExtractionGateway struct {
	raw json.RawMessage
	err error
}

func (g fakeExtractionGateway) ExtractFields(context.Context, string) (json.RawMessage, error) {
	return g.raw, g.err
}

func TestImportExtractServiceDrafts(t *testing.T) {
	unit := testUnit("u1")
	unit.Name = "Ocean View 3A"
	unit.CodeName = "OV3A"

	gateway := fakeExtractionGateway{raw: json.RawMessage(`[
		{"unit": "ocean view 3a", "date": "2026-08-14", "service_type": "Touch Up", "start_time": "09:00", "end_time": "11:00", "work_order": "T0012"},
		{"unit": "OV3A", "date": "2026-08-15"},
		{"unit": "Unknown Villa", "date": "2026-08-16"}
	]`)}
	uc := NewImportUseCase(gateway, newFakeUnitRepo(unit))

	drafts, err := uc.ExtractServiceDrafts(context.Background(), "user-1", "scanned work orders")
	require.NoError(t, err)
	require.Len(t, drafts, 3)

	assert.True(t, drafts[0].Matched)
	assert.Equal(t, "u1", drafts[0].UnitID)
	assert.Equal(t, "Ocean View 3A", drafts[0].UnitName, "canonical name replaces the extracted spelling")
	assert.Equal(t, "T0012", drafts[0].WorkOrder)

	assert.True(t, drafts[1].Matched, "code name matches too")
	assert.Equal(t, "u1", drafts[1].UnitID)

	assert.False(t, drafts[2].Matched)
	assert.Empty(t, drafts[2].UnitID)
	assert.Equal(t, "Unknown Villa", drafts[2].UnitName)
}

func TestImportExtractServiceDrafts_Validation(t *testing.T) {
	uc := NewImportUseCase(fakeExtractionGateway{}, newFakeUnitRepo())
	ctx := context.Background()

	_, err := uc.ExtractServiceDrafts(ctx, " ", "text")
	assert.ErrorIs(t, err, ErrInvalidUserID)

	_, err = uc.ExtractServiceDrafts(ctx, "user-1", "  ")
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestImportExtractServiceDrafts_GatewayError(t *testing.T) {
	sentinel := errors.New("provider overloaded")
	uc := NewImportUseCase(fakeExtractionGateway{err: sentinel}, newFakeUnitRepo())

	_, err := uc.ExtractServiceDrafts(context.Background(), "user-1", "text")
	assert.ErrorIs(t, err, sentinel)
}
