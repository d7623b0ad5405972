package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"imperium_store/internal/domain/entities"
	"imperium_store/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCouponNotFound  = errors.New("coupon not found")
	ErrCouponNotUsable = errors.New("coupon not usable")
	ErrInvalidCouponID = errors.New("invalid coupon id")
	ErrInvalidCoupon   = errors.New("invalid coupon data")
	ErrDuplicateCoupon = errors.New("coupon code already exists")
)

// ICouponUseCase exposes coupon management and validation. Codes are stored
// upper-cased so lookups are case-insensitive at checkout.

type ICouponUseCase interface {
	List(ctx context.Context) ([]entities.Coupon, error)
	Create(ctx context.Context, c entities.Coupon) (entities.Coupon, error)
	Update(ctx context.Context, c entities.Coupon) (entities.Coupon, error)
	Delete(ctx context.Context, id string) error
	Validate(ctx context.Context, code string, subtotal decimal.Decimal) (entities.Coupon, decimal.Decimal, error)
}

type CouponUseCase struct {
	repo interfaces.ICouponRepository
}

var _ ICouponUseCase = (*CouponUseCase)(nil)

func NewCouponUseCase(repo interfaces.ICouponRepository) *CouponUseCase {
	return &CouponUseCase{repo: repo}
}

func (u *CouponUseCase) List(ctx context.Context) ([]entities.Coupon, error) {
	return u.repo.List(ctx)
}

func (u *CouponUseCase) Create(ctx context.Context, c entities.Coupon) (entities.Coupon, error) {
	c.Code = normalizeCouponCode(c.Code)
	if c.Code == "" || c.DiscountValue <= 0 {
		return entities.Coupon{}, ErrInvalidCoupon
	}
	if c.DiscountType != entities.DiscountTypePercentage && c.DiscountType != entities.DiscountTypeFixed {
		return entities.Coupon{}, ErrInvalidCoupon
	}
	if c.DiscountType == entities.DiscountTypePercentage && c.DiscountValue > 100 {
		return entities.Coupon{}, ErrInvalidCoupon
	}

	if existing, err := u.repo.GetByCode(ctx, c.Code); err != nil {
		return entities.Coupon{}, err
	} else if existing.ID != "" {
		return entities.Coupon{}, ErrDuplicateCoupon
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.repo.Create(ctx, c)
}

func (u *CouponUseCase) Update(ctx context.Context, c entities.Coupon) (entities.Coupon, error) {
	c.ID = strings.TrimSpace(c.ID)
	if c.ID == "" {
		return entities.Coupon{}, ErrInvalidCouponID
	}
	c.Code = normalizeCouponCode(c.Code)
	if c.Code == "" || c.DiscountValue <= 0 {
		return entities.Coupon{}, ErrInvalidCoupon
	}

	existing, err := u.repo.GetByID(ctx, c.ID)
	if err != nil {
		return entities.Coupon{}, err
	}
	if existing.ID == "" {
		return entities.Coupon{}, ErrCouponNotFound
	}

	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, c)
}

func (u *CouponUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCouponID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrCouponNotFound
	}
	return u.repo.Delete(ctx, id)
}

// Validate resolves a code and computes the discount it grants on a subtotal.
func (u *CouponUseCase) Validate(ctx context.Context, code string, subtotal decimal.Decimal) (entities.Coupon, decimal.Decimal, error) {
	code = normalizeCouponCode(code)
	if code == "" {
		return entities.Coupon{}, decimal.Zero, ErrCouponNotFound
	}

	c, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.Coupon{}, decimal.Zero, err
	}
	if c.ID == "" {
		return entities.Coupon{}, decimal.Zero, ErrCouponNotFound
	}
	if !c.Usable(time.Now().UTC()) {
		return entities.Coupon{}, decimal.Zero, ErrCouponNotUsable
	}
	return c, c.DiscountFor(subtotal), nil
}

func normalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
