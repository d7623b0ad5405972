package response

import (
	"time"

	"imperium_store/internal/domain/entities"
)

type UserResponse struct {
	ID              string           `json:"id"`
	Email           string           `json:"email"`
	Name            string           `json:"name"`
	Role            string           `json:"role"`
	ShippingAddress *AddressResponse `json:"shipping_address,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func FromUser(u entities.User) UserResponse {
	out := UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.ShippingAddress != nil {
		addr := fromAddress(*u.ShippingAddress)
		out.ShippingAddress = &addr
	}
	return out
}

func FromUsers(users []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}
