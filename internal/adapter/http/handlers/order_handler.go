package handlers

import (
	"errors"
	"net/http"

	request "imperium_store/internal/adapter/http/dto/request"
	response "imperium_store/internal/adapter/http/dto/response"
	"imperium_store/internal/adapter/http/middleware"
	"imperium_store/internal/domain/entities"
	"imperium_store/internal/usecase"
	"imperium_store/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves customer order history and admin order management.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// ListMine returns the authenticated customer's orders.
func (h *OrderHandler) ListMine(c *gin.Context) {
	orders, err := h.usecase.ListByUser(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetByID returns a single order. Customers can only read their own orders;
// admins can read any.
func (h *OrderHandler) GetByID(c *gin.Context) {
	requesterID := c.GetString(middleware.CtxUserID)
	isAdmin := c.GetString(middleware.CtxUserRole) == entities.RoleAdmin

	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), requesterID, isAdmin)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.OrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.OrderStatus(payload.ResolveStatus()))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderStatus), errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAccessDenied):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You cannot access this order", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
