package request

import "strings"

// ShippingQuoteRequest is the storefront payload for quoting delivery options.
// CEP may arrive masked ("01310-100") or raw ("01310100").
type ShippingQuoteRequest struct {
	CEP      string `json:"cep" binding:"required"`
	Quantity int    `json:"quantity"`
}

func (r ShippingQuoteRequest) ResolveCEP() string {
	return strings.TrimSpace(r.CEP)
}

// ResolveQuantity coerces non-positive quantities to a single unit, matching
// the storefront behavior of quoting at least one item.
func (r ShippingQuoteRequest) ResolveQuantity() int {
	if r.Quantity < 1 {
		return 1
	}
	return r.Quantity
}
