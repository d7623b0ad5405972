package response

import "imperium_store/internal/domain/entities"

type CartLineResponse struct {
	Product   ProductResponse `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal float64         `json:"line_total"`
}

type CartResponse struct {
	Items         []CartLineResponse `json:"items"`
	TotalQuantity int                `json:"total_quantity"`
	Subtotal      float64            `json:"subtotal"`
}

func FromCart(c entities.Cart) CartResponse {
	out := CartResponse{
		Items:         make([]CartLineResponse, 0, len(c.Items)),
		TotalQuantity: c.TotalQuantity,
		Subtotal:      c.Subtotal.InexactFloat64(),
	}
	for _, line := range c.Items {
		out.Items = append(out.Items, CartLineResponse{
			Product:   FromProduct(line.Product),
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal.InexactFloat64(),
		})
	}
	return out
}
