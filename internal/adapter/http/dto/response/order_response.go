package response

import (
	"time"

	"imperium_store/internal/domain/entities"
)

type AddressResponse struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}

type OrderItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type OrderResponse struct {
	ID              string                    `json:"id"`
	UserID          string                    `json:"user_id"`
	Items           []OrderItemResponse       `json:"items"`
	Subtotal        float64                   `json:"subtotal"`
	Discount        float64                   `json:"discount"`
	CouponCode      string                    `json:"coupon_code,omitempty"`
	Shipping        ShippingSelectionResponse `json:"shipping"`
	ShippingAddress AddressResponse           `json:"shipping_address"`
	Total           float64                   `json:"total"`
	Status          string                    `json:"status"`
	PaymentID       string                    `json:"payment_id,omitempty"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}

func fromAddress(a entities.Address) AddressResponse {
	return AddressResponse{
		Street:       a.Street,
		Number:       a.Number,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		ZipCode:      a.ZipCode,
	}
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}
	return OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		Items:           items,
		Subtotal:        o.Subtotal,
		Discount:        o.Discount,
		CouponCode:      o.CouponCode,
		Shipping:        FromShippingSelection(o.Shipping),
		ShippingAddress: fromAddress(o.ShippingAddress),
		Total:           o.Total,
		Status:          string(o.Status),
		PaymentID:       o.PaymentID,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
