package request

import (
	"strings"
	"time"

	"imperium_store/internal/domain/entities"
)

type CouponRequest struct {
	Code          string     `json:"code" binding:"required"`
	DiscountType  string     `json:"discount_type" binding:"required"`
	DiscountValue float64    `json:"discount_value" binding:"required"`
	Active        bool       `json:"active"`
	ExpiresAt     *time.Time `json:"expires_at"`
}

func (r CouponRequest) ToEntity() entities.Coupon {
	return entities.Coupon{
		Code:          strings.TrimSpace(r.Code),
		DiscountType:  entities.DiscountType(strings.TrimSpace(r.DiscountType)),
		DiscountValue: r.DiscountValue,
		Active:        r.Active,
		ExpiresAt:     r.ExpiresAt,
	}
}
