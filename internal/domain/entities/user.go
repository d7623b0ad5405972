package entities

import "time"

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Address is the shipping address attached to a user profile and copied onto
// orders at checkout time.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}

// CartItem is one cart line stored on the user document. Product data is
// joined at read time so stale prices never live in the cart.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// User is the customer profile persisted in DynamoDB. Identity (sign-in,
// password, session) is owned by the external identity provider; this record
// only mirrors what the store needs: profile, role, address and cart.
//
// Storage model (DynamoDB):
//   - PK: id (identity-provider subject)
//   - GSI1 (email-index): email
type User struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	Name            string     `json:"name"`
	Role            string     `json:"role"`
	Cart            []CartItem `json:"cart,omitempty"`
	ShippingAddress *Address   `json:"shipping_address,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
