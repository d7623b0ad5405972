package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// Coupon is a discount code persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (code-index): code
type Coupon struct {
	ID            string       `json:"id"`
	Code          string       `json:"code"`
	DiscountType  DiscountType `json:"discount_type"`
	DiscountValue float64      `json:"discount_value"`
	Active        bool         `json:"active"`
	ExpiresAt     *time.Time   `json:"expires_at,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// Usable reports whether the coupon can be applied at the given instant.
func (c Coupon) Usable(now time.Time) bool {
	if !c.Active {
		return false
	}
	if c.ExpiresAt != nil && now.After(*c.ExpiresAt) {
		return false
	}
	return true
}

// DiscountFor computes the discount amount for a subtotal. Percentage coupons
// take a share of the subtotal; fixed coupons are capped at the subtotal so a
// discount can never push a total negative.
func (c Coupon) DiscountFor(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.Sign() <= 0 {
		return decimal.Zero
	}
	switch c.DiscountType {
	case DiscountTypePercentage:
		pct := decimal.NewFromFloat(c.DiscountValue)
		return subtotal.Mul(pct).Div(decimal.NewFromInt(100)).Round(2)
	case DiscountTypeFixed:
		v := decimal.NewFromFloat(c.DiscountValue)
		if v.GreaterThan(subtotal) {
			return subtotal
		}
		return v.Round(2)
	default:
		return decimal.Zero
	}
}
