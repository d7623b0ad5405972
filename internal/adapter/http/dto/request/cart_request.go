package request

import "strings"

type CartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

func (r CartItemRequest) ResolveProductID() string {
	return strings.TrimSpace(r.ProductID)
}

// ResolveQuantity defaults a missing quantity to one unit.
func (r CartItemRequest) ResolveQuantity() int {
	if r.Quantity < 1 {
		return 1
	}
	return r.Quantity
}

type CartQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}
