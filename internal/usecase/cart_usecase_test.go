package usecase

import (
	"context"
	"errors"
	"testing"

	"imperium_store/internal/domain/entities"
	mock_interfaces "imperium_store/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestCartUseCase_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCartUseCase(users, products)

		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil)
		products.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Product{}, nil)

		_, err := uc.AddItem(ctx, "user-1", "missing", 1)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("insufficient stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCartUseCase(users, products)

		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil)
		products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Stock: 2}, nil)

		_, err := uc.AddItem(ctx, "user-1", "p-1", 3)
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("merges quantities for repeated product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCartUseCase(users, products)

		product := entities.Product{ID: "p-1", Name: "Espada", Price: 100, Stock: 10}
		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{
			ID:   "user-1",
			Cart: []entities.CartItem{{ProductID: "p-1", Quantity: 2}},
		}, nil)
		products.EXPECT().GetByID(gomock.Any(), "p-1").Return(product, nil).AnyTimes()
		users.EXPECT().UpdateCart(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, items []entities.CartItem) (entities.User, error) {
				if len(items) != 1 || items[0].Quantity != 3 {
					t.Fatalf("expected merged quantity 3, got %+v", items)
				}
				return entities.User{ID: id, Cart: items}, nil
			})

		cart, err := uc.AddItem(ctx, "user-1", "p-1", 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cart.TotalQuantity != 3 {
			t.Fatalf("expected total quantity 3, got %d", cart.TotalQuantity)
		}
		if !cart.Subtotal.Equal(decimal.NewFromInt(300)) {
			t.Fatalf("expected subtotal 300, got %s", cart.Subtotal)
		}
	})
}

func TestCartUseCase_UpdateItemQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects quantity below one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCartUseCase(users, products)

		_, err := uc.UpdateItemQuantity(ctx, "user-1", "p-1", 0)
		if !errors.Is(err, ErrInvalidCartItem) {
			t.Fatalf("expected ErrInvalidCartItem, got %v", err)
		}
	})

	t.Run("rejects product not in cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCartUseCase(users, products)

		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil)
		products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Stock: 10}, nil)

		_, err := uc.UpdateItemQuantity(ctx, "user-1", "p-1", 2)
		if !errors.Is(err, ErrInvalidCartItem) {
			t.Fatalf("expected ErrInvalidCartItem, got %v", err)
		}
	})
}

func TestCartUseCase_RemoveItem(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	products := mock_interfaces.NewMockIProductRepository(ctrl)
	uc := NewCartUseCase(users, products)

	users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{
		ID: "user-1",
		Cart: []entities.CartItem{
			{ProductID: "p-1", Quantity: 1},
			{ProductID: "p-2", Quantity: 2},
		},
	}, nil)
	users.EXPECT().UpdateCart(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, id string, items []entities.CartItem) (entities.User, error) {
			if len(items) != 1 || items[0].ProductID != "p-2" {
				t.Fatalf("expected only p-2 to remain, got %+v", items)
			}
			return entities.User{ID: id, Cart: items}, nil
		})
	products.EXPECT().GetByID(gomock.Any(), "p-2").Return(entities.Product{ID: "p-2", Name: "Elmo", Price: 50, Stock: 5}, nil)

	cart, err := uc.RemoveItem(ctx, "user-1", "p-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.TotalQuantity != 2 {
		t.Fatalf("expected total quantity 2, got %d", cart.TotalQuantity)
	}
}
