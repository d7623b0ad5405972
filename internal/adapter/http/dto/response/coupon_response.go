package response

import (
	"time"

	"imperium_store/internal/domain/entities"
)

type CouponResponse struct {
	ID            string     `json:"id"`
	Code          string     `json:"code"`
	DiscountType  string     `json:"discount_type"`
	DiscountValue float64    `json:"discount_value"`
	Active        bool       `json:"active"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func FromCoupon(c entities.Coupon) CouponResponse {
	return CouponResponse{
		ID:            c.ID,
		Code:          c.Code,
		DiscountType:  string(c.DiscountType),
		DiscountValue: c.DiscountValue,
		Active:        c.Active,
		ExpiresAt:     c.ExpiresAt,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func FromCoupons(coupons []entities.Coupon) []CouponResponse {
	out := make([]CouponResponse, 0, len(coupons))
	for _, c := range coupons {
		out = append(out, FromCoupon(c))
	}
	return out
}
