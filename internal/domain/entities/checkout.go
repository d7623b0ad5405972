package entities

// CheckoutSession is the outcome of a checkout: the created order plus the
// payment-provider result for it.
type CheckoutSession struct {
	OrderID       string  `json:"order_id"`
	PaymentID     string  `json:"payment_id,omitempty"`
	PaymentStatus string  `json:"payment_status"`
	Total         float64 `json:"total"`
}

// DashboardSummary aggregates back-office numbers for the admin home screen.
type DashboardSummary struct {
	OrdersByStatus map[OrderStatus]int `json:"orders_by_status"`
	PaidRevenue    float64             `json:"paid_revenue"`
	ProductCount   int                 `json:"product_count"`
	CustomerCount  int                 `json:"customer_count"`
}
