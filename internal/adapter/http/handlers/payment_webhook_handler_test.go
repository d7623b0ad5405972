package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"imperium_store/internal/adapter/http/handlers/mocks"
	"imperium_store/internal/domain/entities"
	"imperium_store/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentWebhookHandler_Receive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing order reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewPaymentWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/webhook", h.Receive)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBufferString(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewPaymentWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/webhook", h.Receive)

		uc.EXPECT().ApplyPaymentResult(gomock.Any(), "order-x", "mp-1", "approved").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBufferString(`{"status":"approved","external_reference":"order-x","data":{"id":"mp-1"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("approved payment settles order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewPaymentWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/webhook", h.Receive)

		uc.EXPECT().ApplyPaymentResult(gomock.Any(), "order-1", "mp-1", "approved").
			Return(entities.Order{ID: "order-1", Status: entities.OrderStatusPago, PaymentID: "mp-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBufferString(`{"status":"approved","external_reference":"order-1","data":{"id":"mp-1"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
