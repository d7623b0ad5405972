package usecase

import (
	"context"

	"imperium_store/internal/domain/entities"
	"imperium_store/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// IDashboardUseCase aggregates back-office numbers for the admin home screen.

type IDashboardUseCase interface {
	Summary(ctx context.Context) (entities.DashboardSummary, error)
}

type DashboardUseCase struct {
	orders   interfaces.IOrderRepository
	products interfaces.IProductRepository
	users    interfaces.IUserRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(orders interfaces.IOrderRepository, products interfaces.IProductRepository, users interfaces.IUserRepository) *DashboardUseCase {
	return &DashboardUseCase{orders: orders, products: products, users: users}
}

func (u *DashboardUseCase) Summary(ctx context.Context) (entities.DashboardSummary, error) {
	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		return entities.DashboardSummary{}, err
	}
	products, err := u.products.List(ctx)
	if err != nil {
		return entities.DashboardSummary{}, err
	}
	users, err := u.users.List(ctx)
	if err != nil {
		return entities.DashboardSummary{}, err
	}

	byStatus := make(map[entities.OrderStatus]int)
	revenue := decimal.Zero
	for _, o := range orders {
		byStatus[o.Status]++
		switch o.Status {
		case entities.OrderStatusPago, entities.OrderStatusEnviado, entities.OrderStatusEntregue:
			revenue = revenue.Add(decimal.NewFromFloat(o.Total))
		}
	}

	customers := 0
	for _, usr := range users {
		if !usr.IsAdmin() {
			customers++
		}
	}

	return entities.DashboardSummary{
		OrdersByStatus: byStatus,
		PaidRevenue:    revenue.Round(2).InexactFloat64(),
		ProductCount:   len(products),
		CustomerCount:  customers,
	}, nil
}
