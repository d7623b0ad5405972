package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"imperium_store/internal/domain/entities"
	"imperium_store/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrOrderAccessDenied  = errors.New("order belongs to another customer")
)

// IOrderUseCase exposes order tracking and back-office order management.
//
// Status transitions:
//   - ApplyPaymentResult handles the payment-provider webhook (pago/falhou)
//   - UpdateStatus handles back-office actions (enviado/entregue/cancelado)

type IOrderUseCase interface {
	GetByID(ctx context.Context, id, requesterID string, isAdmin bool) (entities.Order, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Order, error)
	ListAll(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	ApplyPaymentResult(ctx context.Context, orderID, paymentID, providerStatus string) (entities.Order, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

func (u *OrderUseCase) GetByID(ctx context.Context, id, requesterID string, isAdmin bool) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if !isAdmin && o.UserID != requesterID {
		return entities.Order{}, ErrOrderAccessDenied
	}
	return o, nil
}

func (u *OrderUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *OrderUseCase) ListAll(ctx context.Context) ([]entities.Order, error) {
	return u.repo.ListAll(ctx)
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !entities.ValidOrderStatus(status) {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status, "")
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

// ApplyPaymentResult maps a provider payment outcome onto the order:
// "approved" marks it paid, everything else marks it failed. The webhook path
// is idempotent at the provider side, so re-delivery just rewrites the same
// status.
func (u *OrderUseCase) ApplyPaymentResult(ctx context.Context, orderID, paymentID, providerStatus string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	status := entities.OrderStatusFalhou
	if strings.EqualFold(strings.TrimSpace(providerStatus), "approved") {
		status = entities.OrderStatusPago
	}
	log.Printf("[order][usecase] apply payment result order_id=%s payment_id=%s provider_status=%s -> %s",
		orderID, paymentID, providerStatus, status)

	updated, err := u.repo.UpdateStatus(ctx, orderID, status, strings.TrimSpace(paymentID))
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}
