package interfaces

import (
	"context"

	"imperium_store/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for the catalog.
//
// "Not found" is reported as a zero-value entity with a nil error; use cases
// translate that into their own sentinel errors.

type IProductRepository interface {
	List(ctx context.Context) ([]entities.Product, error)
	ListByCategory(ctx context.Context, category string) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}
