package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pedidos_xpto/internal/adapter/http/handlers/mocks"
	"pedidos_xpto/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderValidationHandler_ValidateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderValidationUseCase(ctrl)
		h := NewOrderValidationHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/validate", h.ValidateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/validate", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("approved order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderValidationUseCase(ctrl)
		h := NewOrderValidationHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/validate", h.ValidateOrder)

		uc.EXPECT().ValidateOrder(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderRequest{})).DoAndReturn(
			func(_ context.Context, req entities.OrderRequest) entities.ValidationResult {
				if req.OrderID != "ORD-001" || req.CustomerID != "CUST001" || len(req.Items) != 1 {
					t.Fatalf("unexpected request: %+v", req)
				}
				return entities.ValidationResult{
					Status:      entities.OrderStatusApproved,
					Approved:    true,
					Message:     "Order ORD-001 approved successfully. Total: $2400.00",
					TotalAmount: 2400.0,
					Errors:      []string{},
					Warnings:    []string{},
				}
			},
		)

		body := `{"order_id":"ORD-001","customer_id":" CUST001 ","items":[{"product_id":"PROD001","quantity":2,"unit_price":1200.0}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/validate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["status"] != "approved" || resp["approved"] != true {
			t.Fatalf("unexpected response: %v", resp)
		}
		if id, _ := resp["validation_id"].(string); id == "" {
			t.Fatalf("expected a validation_id, got %v", resp["validation_id"])
		}
	})

	t.Run("rejected order still answers 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderValidationUseCase(ctrl)
		h := NewOrderValidationHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/validate", h.ValidateOrder)

		uc.EXPECT().ValidateOrder(gomock.Any(), gomock.Any()).Return(entities.ValidationResult{
			Status:   entities.OrderStatusRejected,
			Message:  "Order ORD-002 rejected. 1 error(s) found.",
			Errors:   []string{"Insufficient credit"},
			Warnings: []string{},
		})

		body := `{"order_id":"ORD-002","customer_id":"CUST002","items":[{"product_id":"PROD001","quantity":5}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/validate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["status"] != "rejected" || resp["approved"] != false {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("structurally empty order reaches the workflow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderValidationUseCase(ctrl)
		h := NewOrderValidationHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/validate", h.ValidateOrder)

		// The handler must not pre-validate; the workflow owns structural errors.
		uc.EXPECT().ValidateOrder(gomock.Any(), entities.OrderRequest{Items: []entities.OrderItem{}}).Return(entities.ValidationResult{
			Status:   entities.OrderStatusRejected,
			Errors:   []string{"Order id not provided", "Customer id not provided", "No items provided in the order"},
			Warnings: []string{},
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/validate", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
