package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gestao_imobiliaria/internal/adapter/http/handlers/mocks"
	"gestao_imobiliaria/internal/domain/entities"
	"gestao_imobiliaria/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestContractHandler_CreateContract(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts", h.CreateContract)

		req := httptest.NewRequest(http.MethodPost, "/v1/contracts", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts", h.CreateContract)

		req := httptest.NewRequest(http.MethodPost, "/v1/contracts", bytes.NewBufferString(`{"code":"CTR-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts", h.CreateContract)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Contract{}, usecase.ErrContractCodeExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/contracts", bytes.NewBufferString(`{"code":"CTR-1","tenant_id":"ten-1","property_id":"prop-1","type":"Rental","amount":2500,"due_day":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts", h.CreateContract)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Contract{})).Return(entities.Contract{ID: "ctr-1", Code: "CTR-1", Status: entities.ContractStatusPending}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/contracts", bytes.NewBufferString(`{"code":"CTR-1","tenant_id":"ten-1","property_id":"prop-1","type":"Rental","amount":2500,"due_day":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "ctr-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestContractHandler_GetAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.GET("/v1/contracts/:id", h.GetContract)

		uc.EXPECT().GetByID(gomock.Any(), "ctr-404").Return(entities.Contract{}, usecase.ErrContractNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/contracts/ctr-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.DELETE("/v1/contracts/:id", h.DeleteContract)

		uc.EXPECT().Delete(gomock.Any(), "ctr-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/contracts/ctr-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestContractHandler_UpdateContractStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.PATCH("/v1/contracts/:id/status", h.UpdateContractStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/contracts/ctr-1/status", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.PATCH("/v1/contracts/:id/status", h.UpdateContractStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "ctr-1", entities.ContractStatusActive).Return(entities.Contract{ID: "ctr-1", Status: entities.ContractStatusActive}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/contracts/ctr-1/status", bytes.NewBufferString(`{"status":"Active"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestContractHandler_RegisterAdjustment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing new value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts/:id/adjustments", h.RegisterAdjustment)

		req := httptest.NewRequest(http.MethodPost, "/v1/contracts/ctr-1/adjustments", bytes.NewBufferString(`{"kind":"annual"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts/:id/adjustments", h.RegisterAdjustment)

		uc.EXPECT().RegisterAdjustment(gomock.Any(), "ctr-1", "annual", 2170.0, "IGPM cycle").Return(entities.Contract{ID: "ctr-1", Amount: 2170}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/contracts/ctr-1/adjustments", bytes.NewBufferString(`{"kind":"annual","new_value":2170,"reason":"IGPM cycle"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestContractHandler_SyncPropertyStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already populated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts/sync-property-status", h.SyncPropertyStatus)

		uc.EXPECT().SyncPropertyStatus(gomock.Any()).Return(usecase.SyncResult{ContractCount: 12}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/contracts/sync-property-status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["contract_count"] != float64(12) || body["seeded"] != false {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("seeded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts/sync-property-status", h.SyncPropertyStatus)

		uc.EXPECT().SyncPropertyStatus(gomock.Any()).Return(usecase.SyncResult{ContractCount: 5, Seeded: true, Created: 5}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/contracts/sync-property-status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["seeded"] != true || body["created"] != float64(5) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts/sync-property-status", h.SyncPropertyStatus)

		uc.EXPECT().SyncPropertyStatus(gomock.Any()).Return(usecase.SyncResult{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodPost, "/v1/contracts/sync-property-status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestMapContractError(t *testing.T) {
	if got := mapContractError(usecase.ErrInvalidContractCode); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapContractError(usecase.ErrInvalidDueDay); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapContractError(usecase.ErrContractCodeExists); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapContractError(usecase.ErrContractNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapContractError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
