package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"imperium_store/internal/adapter/http/handlers/mocks"
	"imperium_store/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestShippingHandler_Quote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShippingQuoteUseCase(ctrl)
		h := NewShippingHandler(uc)

		r := gin.New()
		r.POST("/v1/shipping/quotes", h.Quote)

		req := httptest.NewRequest(http.MethodPost, "/v1/shipping/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("valid cep returns quotes and selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShippingQuoteUseCase(ctrl)
		h := NewShippingHandler(uc)

		r := gin.New()
		r.POST("/v1/shipping/quotes", h.Quote)

		quotes := []entities.ServiceQuote{
			{ID: 1, Name: "PAC", Price: 12.90, DeliveryTime: 3, Company: entities.Carrier{Name: "Correios"}},
			{ID: 2, Name: "SEDEX", Price: 19.20, DeliveryTime: 1, Company: entities.Carrier{Name: "Correios"}},
		}
		selected := entities.ShippingSelection{Service: "PAC", Carrier: "Correios", Price: 12.90, DeliveryDays: 3}
		uc.EXPECT().EstimateShipping("01310-100", 1).Return(selected, quotes)

		req := httptest.NewRequest(http.MethodPost, "/v1/shipping/quotes", bytes.NewBufferString(`{"cep":"01310-100","quantity":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Quotes []struct {
				Name  string  `json:"name"`
				Price float64 `json:"price"`
			} `json:"quotes"`
			Selected struct {
				Service  string  `json:"service"`
				Price    float64 `json:"price"`
				Fallback bool    `json:"fallback"`
			} `json:"selected"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected unmarshal error: %v", err)
		}
		if len(body.Quotes) != 2 {
			t.Fatalf("expected 2 quotes, got %d", len(body.Quotes))
		}
		if body.Selected.Service != "PAC" || body.Selected.Price != 12.90 {
			t.Fatalf("unexpected selection: %+v", body.Selected)
		}
		if body.Selected.Fallback {
			t.Fatalf("expected non-fallback selection")
		}
	})

	t.Run("malformed cep still answers 200 with fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShippingQuoteUseCase(ctrl)
		h := NewShippingHandler(uc)

		r := gin.New()
		r.POST("/v1/shipping/quotes", h.Quote)

		fallback := entities.ShippingSelection{Carrier: "Correios", Price: 19, DeliveryDays: 3, Fallback: true}
		uc.EXPECT().EstimateShipping("abc", 2).Return(fallback, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/shipping/quotes", bytes.NewBufferString(`{"cep":"abc","quantity":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Quotes   []json.RawMessage `json:"quotes"`
			Selected struct {
				Fallback bool    `json:"fallback"`
				Price    float64 `json:"price"`
			} `json:"selected"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected unmarshal error: %v", err)
		}
		if len(body.Quotes) != 0 {
			t.Fatalf("expected empty quotes, got %d", len(body.Quotes))
		}
		if !body.Selected.Fallback || body.Selected.Price != 19 {
			t.Fatalf("unexpected fallback selection: %+v", body.Selected)
		}
	})

	t.Run("quantity defaults to one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShippingQuoteUseCase(ctrl)
		h := NewShippingHandler(uc)

		r := gin.New()
		r.POST("/v1/shipping/quotes", h.Quote)

		uc.EXPECT().EstimateShipping("01310100", 1).Return(entities.ShippingSelection{Service: "PAC", Carrier: "Correios", Price: 12.90, DeliveryDays: 3}, []entities.ServiceQuote{})

		req := httptest.NewRequest(http.MethodPost, "/v1/shipping/quotes", bytes.NewBufferString(`{"cep":"01310100"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
