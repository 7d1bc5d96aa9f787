package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"kd_cleaning/internal/domain/entities"
	"kd_cleaning/internal/usecase/interfaces"

	"github.com/samber/lo"
)

var ErrEmptyDocument = errors.New("document text is empty")
var ErrExtractionUnavailable = errors.New("extraction gateway not configured")

// ServiceDraft is one extracted work-order line proposed for review. Drafts
// are suggestions, never persisted directly: UnitID is resolved by name when
// possible and left empty otherwise, and the operator confirms each draft
// through the regular service create flow.
type ServiceDraft struct {
	UnitID      string `json:"unit_id,omitempty"`
	UnitName    string `json:"unit_name"`
	StartDate   string `json:"start_date,omitempty"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
	ServiceType string `json:"service_type,omitempty"`
	WorkOrder   string `json:"work_order,omitempty"`
	Matched     bool   `json:"matched"`
}

type extractedField struct {
	Unit        string `json:"unit"`
	Date        string `json:"date"`
	ServiceType string `json:"service_type"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	WorkOrder   string `json:"work_order"`
}

type IImportUseCase interface {
	ExtractServiceDrafts(ctx context.Context, userID, documentText string) ([]ServiceDraft, error)
}

type ImportUseCase struct {
	gateway interfaces.IExtractionGateway
	units   interfaces.IUnitRepository
}

var _ IImportUseCase = (*ImportUseCase)(nil)

func NewImportUseCase(gateway interfaces.IExtractionGateway, units interfaces.IUnitRepository) *ImportUseCase {
	return &ImportUseCase{gateway: gateway, units: units}
}

// ExtractServiceDrafts runs the document through the extraction provider and
// matches each returned line to the user's units by name or code name,
// case-insensitively. Unmatched lines are kept with Matched=false so the
// operator sees everything the provider found.
func (u *ImportUseCase) ExtractServiceDrafts(ctx context.Context, userID, documentText string) ([]ServiceDraft, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if strings.TrimSpace(documentText) == "" {
		return nil, ErrEmptyDocument
	}

	if u.gateway == nil {
		log.Printf("[import][usecase] extraction gateway not configured user_id=%s", userID)
		return nil, ErrExtractionUnavailable
	}

	raw, err := u.gateway.ExtractFields(ctx, documentText)
	if err != nil {
		return nil, err
	}
	var fields []extractedField
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	units, err := u.units.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	drafts := make([]ServiceDraft, 0, len(fields))
	for _, f := range fields {
		draft := ServiceDraft{
			UnitName:    strings.TrimSpace(f.Unit),
			StartDate:   strings.TrimSpace(f.Date),
			StartTime:   strings.TrimSpace(f.StartTime),
			EndTime:     strings.TrimSpace(f.EndTime),
			ServiceType: strings.TrimSpace(f.ServiceType),
			WorkOrder:   strings.TrimSpace(f.WorkOrder),
		}
		if unit, ok := lo.Find(units, func(un entities.Unit) bool {
			return strings.EqualFold(un.Name, draft.UnitName) || strings.EqualFold(un.CodeName, draft.UnitName)
		}); ok {
			draft.UnitID = unit.ID
			draft.UnitName = unit.Name
			draft.Matched = true
		}
		drafts = append(drafts, draft)
	}
	return drafts, nil
}
