package usecase

import (
	"context"
	"errors"
	"strings"

	"imperium_store/internal/domain/entities"
	"imperium_store/internal/usecase/interfaces"
)

var (
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrInvalidCartItem   = errors.New("invalid cart item")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrUserNotFound      = errors.New("user not found")
)

// ICartUseCase exposes the shopping cart. Cart items live on the user
// document; this use case joins them with live product data and keeps
// quantities within stock.

type ICartUseCase interface {
	Get(ctx context.Context, userID string) (entities.Cart, error)
	AddItem(ctx context.Context, userID, productID string, quantity int) (entities.Cart, error)
	UpdateItemQuantity(ctx context.Context, userID, productID string, quantity int) (entities.Cart, error)
	RemoveItem(ctx context.Context, userID, productID string) (entities.Cart, error)
	Clear(ctx context.Context, userID string) error
}

type CartUseCase struct {
	users    interfaces.IUserRepository
	products interfaces.IProductRepository
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(users interfaces.IUserRepository, products interfaces.IProductRepository) *CartUseCase {
	return &CartUseCase{users: users, products: products}
}

func (u *CartUseCase) Get(ctx context.Context, userID string) (entities.Cart, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}
	return u.buildCart(ctx, user.Cart)
}

func (u *CartUseCase) AddItem(ctx context.Context, userID, productID string, quantity int) (entities.Cart, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" || quantity < 1 {
		return entities.Cart{}, ErrInvalidCartItem
	}

	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return entities.Cart{}, err
	}
	if product.ID == "" {
		return entities.Cart{}, ErrProductNotFound
	}

	items := user.Cart
	merged := false
	for i, it := range items {
		if it.ProductID == productID {
			items[i].Quantity += quantity
			if items[i].Quantity > product.Stock {
				return entities.Cart{}, ErrInsufficientStock
			}
			merged = true
			break
		}
	}
	if !merged {
		if quantity > product.Stock {
			return entities.Cart{}, ErrInsufficientStock
		}
		items = append(items, entities.CartItem{ProductID: productID, Quantity: quantity})
	}

	return u.saveAndBuild(ctx, user.ID, items)
}

func (u *CartUseCase) UpdateItemQuantity(ctx context.Context, userID, productID string, quantity int) (entities.Cart, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" || quantity < 1 {
		return entities.Cart{}, ErrInvalidCartItem
	}

	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return entities.Cart{}, err
	}
	if product.ID == "" {
		return entities.Cart{}, ErrProductNotFound
	}
	if quantity > product.Stock {
		return entities.Cart{}, ErrInsufficientStock
	}

	found := false
	items := user.Cart
	for i, it := range items {
		if it.ProductID == productID {
			items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return entities.Cart{}, ErrInvalidCartItem
	}

	return u.saveAndBuild(ctx, user.ID, items)
}

func (u *CartUseCase) RemoveItem(ctx context.Context, userID, productID string) (entities.Cart, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Cart{}, ErrInvalidCartItem
	}

	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}

	items := make([]entities.CartItem, 0, len(user.Cart))
	for _, it := range user.Cart {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}

	return u.saveAndBuild(ctx, user.ID, items)
}

func (u *CartUseCase) Clear(ctx context.Context, userID string) error {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return err
	}
	_, err = u.users.UpdateCart(ctx, user.ID, nil)
	return err
}

func (u *CartUseCase) loadUser(ctx context.Context, userID string) (entities.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.User{}, ErrInvalidUserID
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *CartUseCase) saveAndBuild(ctx context.Context, userID string, items []entities.CartItem) (entities.Cart, error) {
	if _, err := u.users.UpdateCart(ctx, userID, items); err != nil {
		return entities.Cart{}, err
	}
	return u.buildCart(ctx, items)
}

func (u *CartUseCase) buildCart(ctx context.Context, items []entities.CartItem) (entities.Cart, error) {
	products := make(map[string]entities.Product, len(items))
	for _, it := range items {
		if _, ok := products[it.ProductID]; ok {
			continue
		}
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
