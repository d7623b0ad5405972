package handlers

import (
	"errors"
	"log"
	"net/http"

	request "imperium_store/internal/adapter/http/dto/request"
	response "imperium_store/internal/adapter/http/dto/response"
	"imperium_store/internal/adapter/http/middleware"
	"imperium_store/internal/usecase"
	"imperium_store/pkg"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler turns the authenticated customer's cart into an order.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

func (h *CheckoutHandler) Create(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	userID := c.GetString(middleware.CtxUserID)
	log.Printf("[checkout][handler] create start user_id=%s", userID)

	session, err := h.usecase.CreateSession(c.Request.Context(), userID, usecase.CheckoutCommand{
		Address:         payload.ResolveAddress(),
		CouponCode:      payload.CouponCode,
		SelectedService: payload.SelectedService,
	})
	if err != nil {
		log.Printf("[checkout][handler] create failed user_id=%s err=%v", userID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] create success user_id=%s order_id=%s status=%s", userID, session.OrderID, session.PaymentStatus)

	c.JSON(http.StatusCreated, response.FromCheckoutSession(session))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "Cart is empty", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMissingAddress):
		return pkg.NewDomainErrorSimple("MISSING_ADDRESS", "A shipping address is required", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCouponNotFound):
		return pkg.NewDomainErrorSimple("COUPON_NOT_FOUND", "Coupon not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCouponNotUsable):
		return pkg.NewDomainErrorSimple("COUPON_NOT_USABLE", "Coupon is inactive or expired", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
