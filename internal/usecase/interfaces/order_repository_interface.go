package interfaces

import (
	"context"

	"imperium_store/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for orders.
//
// The store must be able to:
//   - create an order at checkout
//   - list a customer's orders and the full back-office listing
//   - update status (webhook and back-office transitions)

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Order, error)
	ListAll(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, paymentID string) (entities.Order, error)
}
