package handlers

import (
	"errors"
	"net/http"

	request "imperium_store/internal/adapter/http/dto/request"
	response "imperium_store/internal/adapter/http/dto/response"
	"imperium_store/internal/usecase"
	"imperium_store/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCouponPayload = pkg.NewDomainErrorSimple("INVALID_COUPON_INPUT", "Invalid coupon payload", http.StatusBadRequest)

// CouponHandler handles admin coupon management.

type CouponHandler struct {
	usecase usecase.ICouponUseCase
}

func NewCouponHandler(uc usecase.ICouponUseCase) *CouponHandler {
	return &CouponHandler{usecase: uc}
}

func (h *CouponHandler) List(c *gin.Context) {
	coupons, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCoupons(coupons))
}

func (h *CouponHandler) Create(c *gin.Context) {
	var payload request.CouponRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCouponPayload.HTTPStatus, errInvalidCouponPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCoupon(created))
}

func (h *CouponHandler) Update(c *gin.Context) {
	var payload request.CouponRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCouponPayload.HTTPStatus, errInvalidCouponPayload.ToHTTPError())
		return
	}

	coupon := payload.ToEntity()
	coupon.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), coupon)
	if err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCoupon(updated))
}

func (h *CouponHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCouponError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCouponID), errors.Is(err, usecase.ErrInvalidCoupon):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCouponNotFound):
		return pkg.NewDomainErrorSimple("COUPON_NOT_FOUND", "Coupon not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDuplicateCoupon):
		return pkg.NewDomainErrorSimple("COUPON_ALREADY_EXISTS", "A coupon with this code already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrCouponNotUsable):
		return pkg.NewDomainErrorSimple("COUPON_NOT_USABLE", "Coupon is inactive or expired", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
