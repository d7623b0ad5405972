package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "imperium_store/internal/adapter/http/dto/request"
	response "imperium_store/internal/adapter/http/dto/response"
	"imperium_store/internal/usecase"
	"imperium_store/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProductPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)

// ProductHandler handles HTTP requests for the product catalog. Listing and
// reads are public; writes are mounted under the admin group.

type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// List returns the catalog, optionally filtered by ?category=.
func (h *ProductHandler) List(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))

	if category != "" {
		list, err := h.usecase.ListByCategory(c.Request.Context(), category)
		if err != nil {
			appErr := mapProductError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromProducts(list))
		return
	}

	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(list))
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	product, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product))
}

func (h *ProductHandler) Categories(c *gin.Context) {
	categories, err := h.usecase.Categories(c.Request.Context())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.CategoriesResponse{Categories: categories})
}

func (h *ProductHandler) Create(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromProduct(created))
}

func (h *ProductHandler) Update(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	product := payload.ToEntity()
	product.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), product)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(updated))
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// GenerateImageUploadURL presigns an upload slot for a product image and
// answers both the PUT URL and the final public URL.
func (h *ProductHandler) GenerateImageUploadURL(c *gin.Context) {
	var payload request.ImageUploadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	uploadURL, publicURL, err := h.usecase.GenerateImageUploadURL(c.Request.Context(), c.Param("id"), payload.ContentType)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ImageUploadResponse{UploadURL: uploadURL, ImageURL: publicURL})
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidProduct):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStorageUnavailable):
		return pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "Image storage is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
