package handlers

import (
	"log"
	"net/http"

	request "imperium_store/internal/adapter/http/dto/request"
	response "imperium_store/internal/adapter/http/dto/response"
	"imperium_store/internal/usecase"
	"imperium_store/pkg"

	"github.com/gin-gonic/gin"
)

// ShippingHandler handles HTTP requests for shipping quotes.

type ShippingHandler struct {
	usecase usecase.IShippingQuoteUseCase
}

func NewShippingHandler(uc usecase.IShippingQuoteUseCase) *ShippingHandler {
	return &ShippingHandler{usecase: uc}
}

// Quote answers delivery options for a CEP and item count.
//
// A malformed CEP is not an HTTP error: the response carries an empty quote
// list and the flat fallback as the selection, so the storefront always has a
// price to show.
func (h *ShippingHandler) Quote(c *gin.Context) {
	var payload request.ShippingQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cep := payload.ResolveCEP()
	quantity := payload.ResolveQuantity()

	selected, quotes := h.usecase.EstimateShipping(cep, quantity)
	if selected.Fallback {
		log.Printf("[shipping][handler] quote fallback cep=%s quantity=%d", cep, quantity)
	}

	c.JSON(http.StatusOK, response.FromShippingQuotes(quotes, selected))
}
