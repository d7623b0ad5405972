package entities

import "github.com/shopspring/decimal"

// CartLine is a cart item joined with its current product data.
type CartLine struct {
	Product   Product         `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Cart is the computed view of a user's cart. It is derived from the cart
// items on the user document plus live product data, never stored as-is.
type Cart struct {
	Items         []CartLine      `json:"items"`
	TotalQuantity int             `json:"total_quantity"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// BuildCart joins stored cart items with their products and totals the result.
// Items whose product no longer exists are dropped silently, matching the
// storefront behavior of filtering dangling cart references.
func BuildCart(items []CartItem, products map[string]Product) Cart {
	cart := Cart{Subtotal: decimal.Zero}
	for _, it := range items {
		p, ok := products[it.ProductID]
		if !ok || it.Quantity <= 0 {
			continue
		}
		line := CartLine{
			Product:   p,
			Quantity:  it.Quantity,
			LineTotal: decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(it.Quantity))).Round(2),
		}
		cart.Items = append(cart.Items, line)
		cart.TotalQuantity += it.Quantity
		cart.Subtotal = cart.Subtotal.Add(line.LineTotal)
	}
	cart.Subtotal = cart.Subtotal.Round(2)
	return cart
}
