package interfaces

import (
	"context"

	"imperium_store/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for customer profiles.
//
// User IDs are the identity-provider subjects; Upsert keeps the local profile
// in sync with the external identity service on first sight of a token.

type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	Upsert(ctx context.Context, u entities.User) (entities.User, error)
	UpdateProfile(ctx context.Context, id, name string, addr *entities.Address) (entities.User, error)
	UpdateCart(ctx context.Context, id string, items []entities.CartItem) (entities.User, error)
}
