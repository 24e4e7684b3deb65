package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic_pos/internal/adapter/http/handlers/mocks"
	"clinic_pos/internal/domain/entities"
	"clinic_pos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCheckoutHandler_Checkout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *CheckoutHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/checkout", h.Checkout)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newRouter(NewCheckoutHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid domain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newRouter(NewCheckoutHandler(uc))

		payload := `{"domain":"groceries","identity":"general","selections":[{"catalog_item_id":"p1","quantity":1}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("zero quantity rejected before the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newRouter(NewCheckoutHandler(uc))

		payload := `{"domain":"product","identity":"general","selections":[{"catalog_item_id":"p1","quantity":0}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not sellable maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newRouter(NewCheckoutHandler(uc))

		uc.EXPECT().Checkout(gomock.Any(), gomock.Any()).Return(usecase.CheckoutResult{}, usecase.ErrItemNotSellable)

		payload := `{"domain":"product","identity":"staff","selections":[{"catalog_item_id":"p1","quantity":1}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success passes the resolved command through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newRouter(NewCheckoutHandler(uc))

		uc.EXPECT().Checkout(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.CheckoutCommand) (usecase.CheckoutResult, error) {
				if cmd.Domain != entities.SaleDomainProduct || cmd.Identity != "vip" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				if !cmd.Restricted.Has("staff") {
					t.Fatalf("restricted set not threaded through: %+v", cmd.Restricted)
				}
				if len(cmd.Selections) != 1 || cmd.Selections[0].CatalogItemID != "p1" || cmd.Selections[0].Quantity != 2 {
					t.Fatalf("unexpected selections: %+v", cmd.Selections)
				}
				return usecase.CheckoutResult{
					OrderRef: "ord-1",
					Total:    160,
					Items:    []entities.SaleLineItem{{ID: "r1", ItemName: "Day Cream", Quantity: 2, FinalPrice: entities.FlexPriceFrom(160)}},
				}, nil
			})

		payload := `{"domain":"product","identity":"VIP","restricted_identities":["staff"],"selections":[{"catalog_item_id":"p1","quantity":2}],"buyer":"Ana"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["order_ref"] != "ord-1" || body["total"] != 160.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
