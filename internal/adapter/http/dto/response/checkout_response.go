package response

import "imperium_store/internal/domain/entities"

type CheckoutResponse struct {
	OrderID       string  `json:"order_id"`
	PaymentID     string  `json:"payment_id,omitempty"`
	PaymentStatus string  `json:"payment_status"`
	Total         float64 `json:"total"`
}

func FromCheckoutSession(s entities.CheckoutSession) CheckoutResponse {
	return CheckoutResponse{
		OrderID:       s.OrderID,
		PaymentID:     s.PaymentID,
		PaymentStatus: s.PaymentStatus,
		Total:         s.Total,
	}
}
