package request

import "strings"

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r OrderStatusRequest) ResolveStatus() string {
	return strings.ToLower(strings.TrimSpace(r.Status))
}

// PaymentWebhookRequest is the provider-facing notification payload. Mercado
// Pago posts {data: {id}} plus type; external_reference carries our order ID.
type PaymentWebhookRequest struct {
	Type              string `json:"type"`
	PaymentID         string `json:"payment_id"`
	Status            string `json:"status"`
	ExternalReference string `json:"external_reference"`
	Data              struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (r PaymentWebhookRequest) ResolvePaymentID() string {
	if v := strings.TrimSpace(r.PaymentID); v != "" {
		return v
	}
	return strings.TrimSpace(r.Data.ID)
}

func (r PaymentWebhookRequest) ResolveOrderID() string {
	return strings.TrimSpace(r.ExternalReference)
}
