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

// UserHandler serves the customer profile and admin customer listing.

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// Me returns the caller's profile, creating it from the token claims on first
// sight.
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.usecase.EnsureProfile(
		c.Request.Context(),
		c.GetString(middleware.CtxUserID),
		c.GetString(middleware.CtxUserEmail),
		"",
		c.GetString(middleware.CtxUserRole),
	)
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var payload request.ProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PROFILE_INPUT", "Invalid profile payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	user, err := h.usecase.UpdateProfile(c.Request.Context(), c.GetString(middleware.CtxUserID), payload.ResolveName(), payload.ResolveAddress())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *UserHandler) ListCustomers(c *gin.Context) {
	users, err := h.usecase.ListCustomers(c.Request.Context())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidProfile):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
