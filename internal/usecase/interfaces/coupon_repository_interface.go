package interfaces

import (
	"context"

	"imperium_store/internal/domain/entities"
)

// ICouponRepository abstracts DynamoDB persistence for discount coupons.

type ICouponRepository interface {
	List(ctx context.Context) ([]entities.Coupon, error)
	GetByID(ctx context.Context, id string) (entities.Coupon, error)
	GetByCode(ctx context.Context, code string) (entities.Coupon, error)
	Create(ctx context.Context, c entities.Coupon) (entities.Coupon, error)
	Update(ctx context.Context, c entities.Coupon) (entities.Coupon, error)
	Delete(ctx context.Context, id string) error
}
