package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"imperium_store/internal/adapter/http/handlers/mocks"
	"imperium_store/internal/domain/entities"
	"imperium_store/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProductHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("lists full catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		r := gin.New()
		r.GET("/v1/products", h.List)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Product{{ID: "p-1", Name: "Espada"}, {ID: "p-2", Name: "Elmo"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected unmarshal error: %v", err)
		}
		if len(body) != 2 {
			t.Fatalf("expected 2 products, got %d", len(body))
		}
	})

	t.Run("filters by category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		r := gin.New()
		r.GET("/v1/products", h.List)

		uc.EXPECT().ListByCategory(gomock.Any(), "armaduras").Return([]entities.Product{{ID: "p-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/products?category=armaduras", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestProductHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		r := gin.New()
		r.GET("/v1/products/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Product{}, usecase.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/products/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		r := gin.New()
		r.GET("/v1/products/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Name: "Espada", Price: 199.90}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/products/p-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestProductHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/products", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/products", bytes.NewBufferString(`{"name":"Espada"}`))
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
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/products", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Product{ID: "p-1", Name: "Espada"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/products", bytes.NewBufferString(`{"name":"Espada","price":199.90,"category":"armas","stock":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestProductHandler_GenerateImageUploadURL(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("storage unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/products/:id/image-upload-url", h.GenerateImageUploadURL)

		uc.EXPECT().GenerateImageUploadURL(gomock.Any(), "p-1", "image/png").Return("", "", usecase.ErrStorageUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/products/p-1/image-upload-url", bytes.NewBufferString(`{"content_type":"image/png"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/products/:id/image-upload-url", h.GenerateImageUploadURL)

		uc.EXPECT().GenerateImageUploadURL(gomock.Any(), "p-1", "image/png").Return("https://s3.local/put", "https://cdn.local/products/p-1/img.png", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/products/p-1/image-upload-url", bytes.NewBufferString(`{"content_type":"image/png"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			UploadURL string `json:"upload_url"`
			ImageURL  string `json:"image_url"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected unmarshal error: %v", err)
		}
		if body.UploadURL == "" || body.ImageURL == "" {
			t.Fatalf("expected both urls, got %+v", body)
		}
	})
}
