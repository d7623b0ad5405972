package handlers

import (
	"errors"
	"net/http"

	request "imperium_store/internal/adapter/http/dto/request"
	response "imperium_store/internal/adapter/http/dto/response"
	"imperium_store/internal/adapter/http/middleware"
	"imperium_store/internal/usecase"
	"imperium_store/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)

// CartHandler handles the authenticated customer's cart. The caller identity
// comes from the auth middleware.

type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.usecase.Get(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var payload request.CartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, err := h.usecase.AddItem(c.Request.Context(), c.GetString(middleware.CtxUserID), payload.ResolveProductID(), payload.ResolveQuantity())
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	var payload request.CartQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, err := h.usecase.UpdateItemQuantity(c.Request.Context(), c.GetString(middleware.CtxUserID), c.Param("product_id"), payload.Quantity)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, err := h.usecase.RemoveItem(c.Request.Context(), c.GetString(middleware.CtxUserID), c.Param("product_id"))
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.usecase.Clear(c.Request.Context(), c.GetString(middleware.CtxUserID)); err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidCartItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Not enough stock for the requested quantity", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
