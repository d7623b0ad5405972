package request

import (
	"strings"

	"imperium_store/internal/domain/entities"
)

type ProfileRequest struct {
	Name    string          `json:"name" binding:"required"`
	Address *AddressRequest `json:"shipping_address"`
}

func (r ProfileRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

func (r ProfileRequest) ResolveAddress() *entities.Address {
	if r.Address == nil {
		return nil
	}
	addr := r.Address.ToEntity()
	return &addr
}
