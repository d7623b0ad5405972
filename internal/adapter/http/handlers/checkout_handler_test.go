package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"imperium_store/internal/adapter/http/handlers/mocks"
	"imperium_store/internal/adapter/http/middleware"
	"imperium_store/internal/domain/entities"
	"imperium_store/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func checkoutRouter(h *CheckoutHandler, userID string) *gin.Engine {
	r := gin.New()
	r.POST("/v1/checkout", func(c *gin.Context) {
		c.Set(middleware.CtxUserID, userID)
		h.Create(c)
	})
	return r
}

func TestCheckoutHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := checkoutRouter(NewCheckoutHandler(uc), "user-1")

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := checkoutRouter(NewCheckoutHandler(uc), "user-1")

		uc.EXPECT().CreateSession(gomock.Any(), "user-1", gomock.Any()).Return(entities.CheckoutSession{}, usecase.ErrEmptyCart)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("coupon not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := checkoutRouter(NewCheckoutHandler(uc), "user-1")

		uc.EXPECT().CreateSession(gomock.Any(), "user-1", gomock.Any()).Return(entities.CheckoutSession{}, usecase.ErrCouponNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(`{"coupon_code":"NADA"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := checkoutRouter(NewCheckoutHandler(uc), "user-1")

		uc.EXPECT().CreateSession(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, cmd usecase.CheckoutCommand) (entities.CheckoutSession, error) {
				if cmd.CouponCode != "BEMVINDO10" {
					t.Fatalf("expected coupon code to pass through, got %q", cmd.CouponCode)
				}
				if cmd.SelectedService != "SEDEX" {
					t.Fatalf("expected selected service to pass through, got %q", cmd.SelectedService)
				}
				return entities.CheckoutSession{OrderID: "order-1", PaymentID: "mp-1", PaymentStatus: "approved", Total: 231.30}, nil
			})

		body := `{"coupon_code":"BEMVINDO10","selected_service":"SEDEX","address":{"street":"Av Paulista","number":"1000","neighborhood":"Bela Vista","city":"Sao Paulo","state":"SP","zip_code":"01310-100"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}
