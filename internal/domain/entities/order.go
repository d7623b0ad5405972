package entities

import "time"

// OrderStatus represents the order lifecycle.
//
// Domain notes:
//   - The store is the source of truth for order state.
//   - pendente -> pago/falhou is driven by the payment provider webhook;
//     pago -> enviado -> entregue is driven by back-office actions.

type OrderStatus string

const (
	OrderStatusPendente  OrderStatus = "pendente"
	OrderStatusPago      OrderStatus = "pago"
	OrderStatusFalhou    OrderStatus = "falhou"
	OrderStatusEnviado   OrderStatus = "enviado"
	OrderStatusEntregue  OrderStatus = "entregue"
	OrderStatusCancelado OrderStatus = "cancelado"
)

// ValidOrderStatus reports whether s is a known status value.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPendente, OrderStatusPago, OrderStatusFalhou,
		OrderStatusEnviado, OrderStatusEntregue, OrderStatusCancelado:
		return true
	}
	return false
}

// OrderItem is a priced snapshot of a cart line at checkout time.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order is the checkout result persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Monetary representation:
//   - Total = Subtotal - Discount + Shipping.Price, all rounded to 2 decimals.
type Order struct {
	ID              string            `json:"id"`
	UserID          string            `json:"user_id"`
	Items           []OrderItem       `json:"items"`
	Subtotal        float64           `json:"subtotal"`
	Discount        float64           `json:"discount"`
	CouponCode      string            `json:"coupon_code,omitempty"`
	Shipping        ShippingSelection `json:"shipping"`
	ShippingAddress Address           `json:"shipping_address"`
	Total           float64           `json:"total"`
	Status          OrderStatus       `json:"status"`
	PaymentID       string            `json:"payment_id,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
