package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"imperium_store/internal/domain/entities"
	"imperium_store/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrMissingAddress = errors.New("missing shipping address")
)

// CheckoutCommand carries the customer's choices for a checkout.
//
// SelectedService optionally names a quoted shipping tier ("PAC", "SEDEX",
// "Transportadora"); when absent or not quotable the cheapest valid quote is
// used, and when the engine cannot quote at all the flat fallback applies.
type CheckoutCommand struct {
	Address         *entities.Address
	CouponCode      string
	SelectedService string
}

// ICheckoutUseCase turns a cart into a pending order and runs the payment.

type ICheckoutUseCase interface {
	CreateSession(ctx context.Context, userID string, cmd CheckoutCommand) (entities.CheckoutSession, error)
}

type CheckoutUseCase struct {
	users    interfaces.IUserRepository
	products interfaces.IProductRepository
	orders   interfaces.IOrderRepository
	coupons  ICouponUseCase
	shipping IShippingQuoteUseCase
	gateway  interfaces.IPaymentGateway
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	users interfaces.IUserRepository,
	products interfaces.IProductRepository,
	orders interfaces.IOrderRepository,
	coupons ICouponUseCase,
	shipping IShippingQuoteUseCase,
	gateway interfaces.IPaymentGateway,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		users:    users,
		products: products,
		orders:   orders,
		coupons:  coupons,
		shipping: shipping,
		gateway:  gateway,
	}
}

// CreateSession prices the cart, resolves discount and shipping, persists the
// order and submits the payment. Shipping never blocks a checkout: any engine
// failure lands on the flat fallback estimate.
func (u *CheckoutUseCase) CreateSession(ctx context.Context, userID string, cmd CheckoutCommand) (entities.CheckoutSession, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.CheckoutSession{}, ErrInvalidUserID
	}
	log.Printf("[checkout][usecase] session start user_id=%s", userID)

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if user.ID == "" {
		return entities.CheckoutSession{}, ErrUserNotFound
	}
	if len(user.Cart) == 0 {
		return entities.CheckoutSession{}, ErrEmptyCart
	}

	address := cmd.Address
	if address == nil {
		address = user.ShippingAddress
	}
	if address == nil || strings.TrimSpace(address.ZipCode) == "" {
		return entities.CheckoutSession{}, ErrMissingAddress
	}

	cart, err := u.buildCart(ctx, user.Cart)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if len(cart.Items) == 0 {
		return entities.CheckoutSession{}, ErrEmptyCart
	}

	discount := decimal.Zero
	couponCode := ""
	if code := strings.TrimSpace(cmd.CouponCode); code != "" {
		coupon, d, err := u.coupons.Validate(ctx, code, cart.Subtotal)
		if err != nil {
			return entities.CheckoutSession{}, err
		}
		discount = d
		couponCode = coupon.Code
	}

	selection := u.resolveShipping(address.ZipCode, cart, cmd.SelectedService)
	log.Printf("[checkout][usecase] shipping resolved user_id=%s service=%q carrier=%s price=%.2f fallback=%t",
		userID, selection.Service, selection.Carrier, selection.Price, selection.Fallback)

	total := cart.Subtotal.
		Sub(discount).
		Add(decimal.NewFromFloat(selection.Price)).
		Round(2)

	now := time.Now().UTC()
	order := entities.Order{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		Items:           toOrderItems(cart),
		Subtotal:        cart.Subtotal.InexactFloat64(),
		Discount:        discount.InexactFloat64(),
		CouponCode:      couponCode,
		Shipping:        selection,
		ShippingAddress: *address,
		Total:           total.InexactFloat64(),
		Status:          entities.OrderStatusPendente,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		log.Printf("[checkout][usecase] order create failed user_id=%s err=%v", userID, err)
		return entities.CheckoutSession{}, err
	}

	session := entities.CheckoutSession{
		OrderID:       created.ID,
		PaymentStatus: string(entities.OrderStatusPendente),
		Total:         created.Total,
	}

	if u.gateway != nil {
		paymentID, providerStatus, err := u.submitPayment(ctx, created)
		if err != nil {
			// The order stays pendente; the provider webhook or a retry settles it.
			log.Printf("[checkout][usecase] payment submit failed order_id=%s err=%v", created.ID, err)
		} else {
			session.PaymentID = paymentID
			session.PaymentStatus = providerStatus
			status := entities.OrderStatusFalhou
			if strings.EqualFold(providerStatus, "approved") {
				status = entities.OrderStatusPago
			}
			if _, err := u.orders.UpdateStatus(ctx, created.ID, status, paymentID); err != nil {
				log.Printf("[checkout][usecase] order status update failed order_id=%s err=%v", created.ID, err)
			}
		}
	}

	if _, err := u.users.UpdateCart(ctx, user.ID, nil); err != nil {
		log.Printf("[checkout][usecase] cart clear failed user_id=%s err=%v", userID, err)
	}

	log.Printf("[checkout][usecase] session success user_id=%s order_id=%s total=%.2f payment_status=%s",
		userID, session.OrderID, session.Total, session.PaymentStatus)
	return session, nil
}

func (u *CheckoutUseCase) resolveShipping(zipCode string, cart entities.Cart, selectedService string) entities.ShippingSelection {
	selection, quotes := u.shipping.EstimateShipping(zipCode, cart.TotalQuantity)

	// Honor an explicit tier choice when it is quotable.
	if selectedService != "" {
		for _, q := range quotes {
			if strings.EqualFold(q.Name, selectedService) && !q.HasError && q.Price > 0 {
				return entities.ShippingSelection{
					Service:      q.Name,
					Carrier:      q.Company.Name,
					Price:        q.Price,
					DeliveryDays: q.DeliveryTime,
				}
			}
		}
	}
	return selection
}

func (u *CheckoutUseCase) submitPayment(ctx context.Context, order entities.Order) (string, string, error) {
	payload, err := json.Marshal(map[string]any{
		"transaction_amount": order.Total,
		"description":        fmt.Sprintf("Pedido %s", order.ID),
		"external_reference": order.ID,
	})
	if err != nil {
		return "", "", err
	}

	paymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		return "", "", err
	}
	return paymentID, providerStatus, nil
}

func (u *CheckoutUseCase) buildCart(ctx context.Context, items []entities.CartItem) (entities.Cart, error) {
	products := make(map[string]entities.Product, len(items))
	for _, it := range items {
		p, err := u.products.GetByID(ctx, it.ProductID)
		if err != nil {
			return entities.Cart{}, err
		}
		if p.ID != "" {
			products[p.ID] = p
		}
	}
	return entities.BuildCart(items, products), nil
}

func toOrderItems(cart entities.Cart) []entities.OrderItem {
	items := make([]entities.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, entities.OrderItem{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Price:     line.Product.Price,
			Quantity:  line.Quantity,
		})
	}
	return items
}
