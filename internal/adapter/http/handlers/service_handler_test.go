package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kd_cleaning/internal/domain/entities"
	"kd_cleaning/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type stubServiceUseCase struct {
	createFn func(ctx context.Context, userID string, s entities.Service) (entities.Service, error)
	updateFn func(ctx context.Context, userID string, s entities.Service) (entities.Service, error)
	getFn    func(ctx context.Context, id string) (entities.Service, error)
	listFn   func(ctx context.Context, userID string) ([]entities.Service, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubServiceUseCase) Create(ctx context.Context, userID string, sv entities.Service) (entities.Service, error) {
	return s.createFn(ctx, userID, sv)
}

func (s *stubServiceUseCase) Update(ctx context.Context, userID string, sv entities.Service) (entities.Service, error) {
	return s.updateFn(ctx, userID, sv)
}

func (s *stubServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	return s.getFn(ctx, id)
}

func (s *stubServiceUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.Service, error) {
	return s.listFn(ctx, userID)
}

func (s *stubServiceUseCase) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func newServiceRouter(uc usecase.IServiceUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewServiceHandler(uc)
	r := gin.New()
	r.POST("/v1/services", h.CreateService)
	r.GET("/v1/services", h.ListServices)
	r.GET("/v1/services/:id", h.GetService)
	r.PUT("/v1/services/:id", h.UpdateService)
	r.DELETE("/v1/services/:id", h.DeleteService)
	return r
}

const serviceBody = `{
	"unit_id": "u1",
	"worker_ids": ["w1"],
	"start_date": "2026-08-01",
	"start_time": "09:00",
	"end_time": "12:00",
	"service_type": "Touch Up"
}`

func TestServiceHandler_CreateService(t *testing.T) {
	t.Run("missing user header", func(t *testing.T) {
		r := newServiceRouter(&stubServiceUseCase{})

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(serviceBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		r := newServiceRouter(&stubServiceUseCase{})

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(UserIDHeader, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created with derived fields", func(t *testing.T) {
		uc := &stubServiceUseCase{
			createFn: func(_ context.Context, userID string, s entities.Service) (entities.Service, error) {
				if userID != "user-1" {
					t.Fatalf("unexpected user id %q", userID)
				}
				s.ID = "s1"
				s.WorkOrder = "T0001"
				s.TotalCost = decimal.NewFromInt(100)
				return s, nil
			},
		}
		r := newServiceRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(serviceBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(UserIDHeader, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["work_order"] != "T0001" {
			t.Fatalf("expected work order T0001, got %v", resp["work_order"])
		}
		if resp["total_cost"] != "100" {
			t.Fatalf("expected total_cost as string 100, got %v", resp["total_cost"])
		}
	})

	t.Run("duplicate work order maps to 409", func(t *testing.T) {
		uc := &stubServiceUseCase{
			createFn: func(_ context.Context, _ string, _ entities.Service) (entities.Service, error) {
				return entities.Service{}, usecase.ErrWorkOrderTaken
			},
		}
		r := newServiceRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(serviceBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(UserIDHeader, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unconfigured worker rate maps to 422", func(t *testing.T) {
		uc := &stubServiceUseCase{
			createFn: func(_ context.Context, _ string, _ entities.Service) (entities.Service, error) {
				return entities.Service{}, usecase.ErrWorkerRateNotConfigured
			},
		}
		r := newServiceRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(serviceBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(UserIDHeader, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestServiceHandler_GetService(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc := &stubServiceUseCase{
			getFn: func(_ context.Context, _ string) (entities.Service, error) {
				return entities.Service{}, usecase.ErrServiceNotFound
			},
		}
		r := newServiceRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/v1/services/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		uc := &stubServiceUseCase{
			getFn: func(_ context.Context, id string) (entities.Service, error) {
				return entities.Service{ID: id, UnitID: "u1", ServiceType: entities.ServiceTypeTouchUp}, nil
			},
		}
		r := newServiceRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/v1/services/s1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestServiceHandler_ListServices(t *testing.T) {
	uc := &stubServiceUseCase{
		listFn: func(_ context.Context, userID string) ([]entities.Service, error) {
			if userID != "user-1" {
				t.Fatalf("unexpected user id %q", userID)
			}
			return []entities.Service{{ID: "s1"}, {ID: "s2"}}, nil
		},
	}
	r := newServiceRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
	req.Header.Set(UserIDHeader, "user-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 services, got %d", len(resp))
	}
}

func TestServiceHandler_DeleteService(t *testing.T) {
	uc := &stubServiceUseCase{
		deleteFn: func(_ context.Context, id string) error {
			if id != "s1" {
				t.Fatalf("unexpected id %q", id)
			}
			return nil
		},
	}
	r := newServiceRouter(uc)

	req := httptest.NewRequest(http.MethodDelete, "/v1/services/s1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
