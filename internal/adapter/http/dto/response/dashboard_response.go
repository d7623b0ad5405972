package response

import "imperium_store/internal/domain/entities"

type DashboardResponse struct {
	OrdersByStatus map[string]int `json:"orders_by_status"`
	PaidRevenue    float64        `json:"paid_revenue"`
	ProductCount   int            `json:"product_count"`
	CustomerCount  int            `json:"customer_count"`
}

func FromDashboardSummary(s entities.DashboardSummary) DashboardResponse {
	byStatus := make(map[string]int, len(s.OrdersByStatus))
	for status, count := range s.OrdersByStatus {
		byStatus[string(status)] = count
	}
	return DashboardResponse{
		OrdersByStatus: byStatus,
		PaidRevenue:    s.PaidRevenue,
		ProductCount:   s.ProductCount,
		CustomerCount:  s.CustomerCount,
	}
}
