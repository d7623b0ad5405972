package usecase

import (
	"context"
	"testing"

	"imperium_store/internal/domain/entities"
	mock_interfaces "imperium_store/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	products := mock_interfaces.NewMockIProductRepository(ctrl)
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	uc := NewDashboardUseCase(orders, products, users)

	orders.EXPECT().ListAll(gomock.Any()).Return([]entities.Order{
		{ID: "o-1", Status: entities.OrderStatusPago, Total: 100.50},
		{ID: "o-2", Status: entities.OrderStatusEntregue, Total: 49.50},
		{ID: "o-3", Status: entities.OrderStatusPendente, Total: 300},
		{ID: "o-4", Status: entities.OrderStatusCancelado, Total: 80},
	}, nil)
	products.EXPECT().List(gomock.Any()).Return([]entities.Product{{ID: "p-1"}, {ID: "p-2"}}, nil)
	users.EXPECT().List(gomock.Any()).Return([]entities.User{
		{ID: "u-1", Role: entities.RoleCustomer},
		{ID: "u-2", Role: entities.RoleAdmin},
		{ID: "u-3", Role: entities.RoleCustomer},
	}, nil)

	summary, err := uc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only paid, shipped and delivered orders count as revenue.
	if summary.PaidRevenue != 150 {
		t.Fatalf("expected paid revenue 150, got %.2f", summary.PaidRevenue)
	}
	if summary.OrdersByStatus[entities.OrderStatusPago] != 1 ||
		summary.OrdersByStatus[entities.OrderStatusPendente] != 1 ||
		summary.OrdersByStatus[entities.OrderStatusCancelado] != 1 {
		t.Fatalf("unexpected status breakdown: %+v", summary.OrdersByStatus)
	}
	if summary.ProductCount != 2 {
		t.Fatalf("expected 2 products, got %d", summary.ProductCount)
	}
	if summary.CustomerCount != 2 {
		t.Fatalf("expected 2 customers, got %d", summary.CustomerCount)
	}
}
