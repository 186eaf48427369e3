package handlers

import (
	"bytes"
	"context"
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

func TestPropertyHandler_CreateProperty(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPropertyUseCase(ctrl)
		h := NewPropertyHandler(uc)

		r := gin.New()
		r.POST("/v1/properties", h.CreateProperty)

		req := httptest.NewRequest(http.MethodPost, "/v1/properties", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("domain validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPropertyUseCase(ctrl)
		h := NewPropertyHandler(uc)

		r := gin.New()
		r.POST("/v1/properties", h.CreateProperty)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Property{}, usecase.ErrInvalidFloorPlan)

		req := httptest.NewRequest(http.MethodPost, "/v1/properties", bytes.NewBufferString(`{"group_number":3,"block_letter":"B","unit_number":72,"floor_plan":"Loft","price":450000}`))
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
		uc := mocks.NewMockIPropertyUseCase(ctrl)
		h := NewPropertyHandler(uc)

		r := gin.New()
		r.POST("/v1/properties", h.CreateProperty)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Property{})).DoAndReturn(
			func(_ context.Context, p entities.Property) (entities.Property, error) {
				if p.FloorPlan != entities.FloorPlanTwoBedroom || p.BlockLetter != "B" {
					t.Fatalf("unexpected entity: %+v", p)
				}
				p.ID = "prop-1"
				return p, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/properties", bytes.NewBufferString(`{"group_number":3,"block_letter":"B","unit_number":72,"floor_plan":"TwoBedroom","price":450000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "prop-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestPropertyHandler_GetProperty(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPropertyUseCase(ctrl)
		h := NewPropertyHandler(uc)

		r := gin.New()
		r.GET("/v1/properties/:id", h.GetProperty)

		uc.EXPECT().GetByID(gomock.Any(), "prop-404").Return(entities.Property{}, usecase.ErrPropertyNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/properties/prop-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPropertyUseCase(ctrl)
		h := NewPropertyHandler(uc)

		r := gin.New()
		r.GET("/v1/properties/:id", h.GetProperty)

		link := "ctr-1"
		uc.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Property{
			ID:               "prop-1",
			AdvertisedStatus: entities.PropertyStatusRentedActive,
			LinkedContractID: &link,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/properties/prop-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["advertised_status"] != "RentedActive" || body["linked_contract_id"] != "ctr-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapPropertyError(t *testing.T) {
	if got := mapPropertyError(usecase.ErrInvalidFloorPlan); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPropertyError(usecase.ErrInvalidPropertyAddress); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPropertyError(usecase.ErrPropertyNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPropertyError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
