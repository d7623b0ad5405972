package handlers

import (
	"errors"
	"log"
	"net/http"

	request "imperium_store/internal/adapter/http/dto/request"
	response "imperium_store/internal/adapter/http/dto/response"
	"imperium_store/internal/usecase"
	"imperium_store/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentWebhookHandler receives asynchronous payment notifications from the
// provider and settles the matching order.

type PaymentWebhookHandler struct {
	usecase usecase.IOrderUseCase
}

func NewPaymentWebhookHandler(uc usecase.IOrderUseCase) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{usecase: uc}
}

func (h *PaymentWebhookHandler) Receive(c *gin.Context) {
	var payload request.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[webhook][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	orderID := payload.ResolveOrderID()
	paymentID := payload.ResolvePaymentID()
	log.Printf("[webhook][handler] received order_id=%s payment_id=%s status=%s", orderID, paymentID, payload.Status)

	if orderID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.ApplyPaymentResult(c.Request.Context(), orderID, paymentID, payload.Status)
	if err != nil {
		// The provider retries on non-2xx; only unknown orders are worth a 404.
		if errors.Is(err, usecase.ErrOrderNotFound) {
			appErr := pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Printf("[webhook][handler] apply failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}
