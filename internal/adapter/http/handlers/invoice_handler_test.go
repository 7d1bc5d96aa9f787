package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kd_cleaning/internal/domain/entities"
	"kd_cleaning/internal/usecase"

	"github.com/gin-gonic/gin"
)

type stubInvoiceUseCase struct {
	candidatesFn func(ctx context.Context, userID, excludeInvoiceID string) ([]entities.Service, error)
	nextNumberFn func(ctx context.Context, userID string) (string, error)
	sendFn       func(ctx context.Context, id string) (entities.Invoice, error)
	markPaidFn   func(ctx context.Context, id string) (entities.Invoice, error)
}

func (s *stubInvoiceUseCase) BuildCandidates(ctx context.Context, userID, excludeInvoiceID string) ([]entities.Service, error) {
	return s.candidatesFn(ctx, userID, excludeInvoiceID)
}

func (s *stubInvoiceUseCase) NextNumber(ctx context.Context, userID string) (string, error) {
	return s.nextNumberFn(ctx, userID)
}

func (s *stubInvoiceUseCase) Create(_ context.Context, _ string, _ entities.Invoice) (entities.Invoice, error) {
	return entities.Invoice{}, nil
}

func (s *stubInvoiceUseCase) Update(_ context.Context, _ string, _ entities.Invoice) (entities.Invoice, error) {
	return entities.Invoice{}, nil
}

func (s *stubInvoiceUseCase) Send(ctx context.Context, id string) (entities.Invoice, error) {
	return s.sendFn(ctx, id)
}

func (s *stubInvoiceUseCase) MarkPaid(ctx context.Context, id string) (entities.Invoice, error) {
	return s.markPaidFn(ctx, id)
}

func (s *stubInvoiceUseCase) GetByID(_ context.Context, _ string) (entities.Invoice, error) {
	return entities.Invoice{}, nil
}

func (s *stubInvoiceUseCase) ListByUserID(_ context.Context, _ string) ([]entities.Invoice, error) {
	return nil, nil
}

func (s *stubInvoiceUseCase) Delete(_ context.Context, _ string) error {
	return nil
}

func newInvoiceRouter(uc usecase.IInvoiceUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewInvoiceHandler(uc)
	r := gin.New()
	r.GET("/v1/invoices/candidates", h.ListCandidates)
	r.GET("/v1/invoices/next-number", h.NextNumber)
	r.PATCH("/v1/invoices/:id/send", h.SendInvoice)
	r.PATCH("/v1/invoices/:id/mark-paid", h.MarkInvoicePaid)
	return r
}

func TestInvoiceHandler_NextNumber(t *testing.T) {
	uc := &stubInvoiceUseCase{
		nextNumberFn: func(_ context.Context, userID string) (string, error) {
			if userID != "user-1" {
				t.Fatalf("unexpected user id %q", userID)
			}
			return "INV-0007", nil
		},
	}
	r := newInvoiceRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/v1/invoices/next-number", nil)
	req.Header.Set(UserIDHeader, "user-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["invoice_number"] != "INV-0007" {
		t.Fatalf("expected INV-0007, got %q", resp["invoice_number"])
	}
}

func TestInvoiceHandler_ListCandidates(t *testing.T) {
	uc := &stubInvoiceUseCase{
		candidatesFn: func(_ context.Context, _ string, excludeInvoiceID string) ([]entities.Service, error) {
			if excludeInvoiceID != "inv-9" {
				t.Fatalf("expected editing invoice id inv-9, got %q", excludeInvoiceID)
			}
			return []entities.Service{{ID: "s1", ServiceType: entities.ServiceTypeTouchUp}}, nil
		},
	}
	r := newInvoiceRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/v1/invoices/candidates?editing_invoice_id=inv-9", nil)
	req.Header.Set(UserIDHeader, "user-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestInvoiceHandler_StatusTransitions(t *testing.T) {
	t.Run("send", func(t *testing.T) {
		uc := &stubInvoiceUseCase{
			sendFn: func(_ context.Context, id string) (entities.Invoice, error) {
				return entities.Invoice{ID: id, Status: entities.InvoiceStatusSent}, nil
			},
		}
		r := newInvoiceRouter(uc)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1/send", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid transition maps to 409", func(t *testing.T) {
		uc := &stubInvoiceUseCase{
			markPaidFn: func(_ context.Context, _ string) (entities.Invoice, error) {
				return entities.Invoice{}, usecase.ErrInvalidStatusTransition
			},
		}
		r := newInvoiceRouter(uc)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1/mark-paid", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
