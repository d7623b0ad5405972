package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"imperium_store/internal/domain/entities"
	mock_interfaces "imperium_store/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type checkoutFixture struct {
	users   *mock_interfaces.MockIUserRepository
	prods   *mock_interfaces.MockIProductRepository
	orders  *mock_interfaces.MockIOrderRepository
	coupons *mock_interfaces.MockICouponRepository
	gateway *mock_interfaces.MockIPaymentGateway
	uc      *CheckoutUseCase
}

func newCheckoutFixture(ctrl *gomock.Controller) checkoutFixture {
	f := checkoutFixture{
		users:   mock_interfaces.NewMockIUserRepository(ctrl),
		prods:   mock_interfaces.NewMockIProductRepository(ctrl),
		orders:  mock_interfaces.NewMockIOrderRepository(ctrl),
		coupons: mock_interfaces.NewMockICouponRepository(ctrl),
		gateway: mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	f.uc = NewCheckoutUseCase(
		f.users,
		f.prods,
		f.orders,
		NewCouponUseCase(f.coupons),
		NewShippingQuoteUseCase(),
		f.gateway,
	)
	return f
}

func TestCheckoutUseCase_CreateSession_EmptyCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newCheckoutFixture(ctrl)

	f.users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil)

	_, err := f.uc.CreateSession(context.Background(), "user-1", CheckoutCommand{
		Address: &entities.Address{ZipCode: "01310-930"},
	})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckoutUseCase_CreateSession_MissingAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newCheckoutFixture(ctrl)

	// No address in the command and none stored on the profile.
	f.users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{
		ID:   "user-1",
		Cart: []entities.CartItem{{ProductID: "p-1", Quantity: 1}},
	}, nil)

	_, err := f.uc.CreateSession(context.Background(), "user-1", CheckoutCommand{})
	if !errors.Is(err, ErrMissingAddress) {
		t.Fatalf("expected ErrMissingAddress, got %v", err)
	}
}

func TestCheckoutUseCase_CreateSession_UnknownCoupon(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newCheckoutFixture(ctrl)

	f.users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{
		ID:   "user-1",
		Cart: []entities.CartItem{{ProductID: "p-1", Quantity: 1}},
	}, nil)
	f.prods.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Price: 100, Stock: 10}, nil)
	f.coupons.EXPECT().GetByCode(gomock.Any(), "NADA").Return(entities.Coupon{}, nil)

	_, err := f.uc.CreateSession(context.Background(), "user-1", CheckoutCommand{
		Address:    &entities.Address{ZipCode: "01310-930"},
		CouponCode: "nada",
	})
	if !errors.Is(err, ErrCouponNotFound) {
		t.Fatalf("expected ErrCouponNotFound, got %v", err)
	}
}

func TestCheckoutUseCase_CreateSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newCheckoutFixture(ctrl)

	f.users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{
		ID:   "user-1",
		Cart: []entities.CartItem{{ProductID: "p-1", Quantity: 2}},
	}, nil)
	f.prods.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{
		ID: "p-1", Name: "Espada Longa", Price: 100, Stock: 10,
	}, nil)
	f.coupons.EXPECT().GetByCode(gomock.Any(), "BEMVINDO10").Return(entities.Coupon{
		ID: "c-1", Code: "BEMVINDO10", DiscountType: entities.DiscountTypePercentage, DiscountValue: 10, Active: true,
	}, nil)

	var createdID string
	f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, order entities.Order) (entities.Order, error) {
			createdID = order.ID
			if order.Status != entities.OrderStatusPendente {
				t.Fatalf("expected status pendente, got %s", order.Status)
			}
			if order.Subtotal != 200 {
				t.Fatalf("expected subtotal 200, got %.2f", order.Subtotal)
			}
			if order.Discount != 20 {
				t.Fatalf("expected discount 20, got %.2f", order.Discount)
			}
			// SEDEX for an SP CEP and 0.6kg: (18 + 0.6*4) * 1.0 = 20.40.
			if order.Shipping.Service != "SEDEX" || order.Shipping.Price != 20.40 {
				t.Fatalf("expected SEDEX at 20.40, got %s at %.2f", order.Shipping.Service, order.Shipping.Price)
			}
			if order.Total != 200.40 {
				t.Fatalf("expected total 200.40, got %.2f", order.Total)
			}
			if order.ShippingAddress.ZipCode != "01310-930" {
				t.Fatalf("unexpected shipping address: %+v", order.ShippingAddress)
			}
			return order, nil
		})
	f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var body map[string]any
			if err := json.Unmarshal(payload, &body); err != nil {
				t.Fatalf("invalid payment payload: %v", err)
			}
			if body["external_reference"] != createdID {
				t.Fatalf("expected external_reference %q, got %v", createdID, body["external_reference"])
			}
			return "mp-123", "approved", nil, nil
		})
	f.orders.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), entities.OrderStatusPago, "mp-123").DoAndReturn(
		func(_ context.Context, id string, status entities.OrderStatus, paymentID string) (entities.Order, error) {
			return entities.Order{ID: id, Status: status, PaymentID: paymentID}, nil
		})
	f.users.EXPECT().UpdateCart(gomock.Any(), "user-1", nil).Return(entities.User{ID: "user-1"}, nil)

	session, err := f.uc.CreateSession(context.Background(), "user-1", CheckoutCommand{
		Address:         &entities.Address{ZipCode: "01310-930"},
		CouponCode:      "bemvindo10",
		SelectedService: "sedex",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.OrderID != createdID {
		t.Fatalf("expected order id %q, got %q", createdID, session.OrderID)
	}
	if session.PaymentID != "mp-123" || session.PaymentStatus != "approved" {
		t.Fatalf("unexpected session payment: %+v", session)
	}
	if session.Total != 200.40 {
		t.Fatalf("expected total 200.40, got %.2f", session.Total)
	}
}

func TestCheckoutUseCase_CreateSession_PaymentFailureKeepsOrderPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newCheckoutFixture(ctrl)

	f.users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{
		ID:   "user-1",
		Cart: []entities.CartItem{{ProductID: "p-1", Quantity: 1}},
	}, nil)
	f.prods.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Price: 50, Stock: 5}, nil)
	f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, order entities.Order) (entities.Order, error) {
			return order, nil
		})
	f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
		Return("", "", nil, errors.New("gateway unavailable"))
	f.users.EXPECT().UpdateCart(gomock.Any(), "user-1", nil).Return(entities.User{ID: "user-1"}, nil)

	session, err := f.uc.CreateSession(context.Background(), "user-1", CheckoutCommand{
		Address: &entities.Address{ZipCode: "01310-930"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.PaymentStatus != string(entities.OrderStatusPendente) {
		t.Fatalf("expected pendente payment status, got %s", session.PaymentStatus)
	}
	if session.PaymentID != "" {
		t.Fatalf("expected empty payment id, got %q", session.PaymentID)
	}
}
