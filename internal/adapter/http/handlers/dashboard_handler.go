package handlers

import (
	"net/http"

	response "imperium_store/internal/adapter/http/dto/response"
	"imperium_store/internal/usecase"
	"imperium_store/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the admin sales summary.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardSummary(summary))
}
