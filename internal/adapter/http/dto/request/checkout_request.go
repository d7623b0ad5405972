package request

import (
	"strings"

	"imperium_store/internal/domain/entities"
)

type AddressRequest struct {
	Street       string `json:"street" binding:"required"`
	Number       string `json:"number" binding:"required"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood" binding:"required"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	ZipCode      string `json:"zip_code" binding:"required"`
}

func (r AddressRequest) ToEntity() entities.Address {
	return entities.Address{
		Street:       strings.TrimSpace(r.Street),
		Number:       strings.TrimSpace(r.Number),
		Complement:   strings.TrimSpace(r.Complement),
		Neighborhood: strings.TrimSpace(r.Neighborhood),
		City:         strings.TrimSpace(r.City),
		State:        strings.TrimSpace(r.State),
		ZipCode:      strings.TrimSpace(r.ZipCode),
	}
}

// CheckoutRequest closes the cart into an order. Address is optional when the
// customer already saved a shipping address on their profile.
type CheckoutRequest struct {
	Address         *AddressRequest `json:"address"`
	CouponCode      string          `json:"coupon_code"`
	SelectedService string          `json:"selected_service"`
}

func (r CheckoutRequest) ResolveAddress() *entities.Address {
	if r.Address == nil {
		return nil
	}
	addr := r.Address.ToEntity()
	return &addr
}
