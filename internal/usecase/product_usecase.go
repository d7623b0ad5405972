package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"imperium_store/internal/domain/entities"
	"imperium_store/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidProductID   = errors.New("invalid product id")
	ErrInvalidProduct     = errors.New("invalid product data")
	ErrStorageUnavailable = errors.New("object storage not configured")
)

// IProductUseCase exposes catalog operations. Listing and lookup are public;
// create/update/delete and image upload are back-office only (enforced at the
// route layer).

type IProductUseCase interface {
	List(ctx context.Context) ([]entities.Product, error)
	ListByCategory(ctx context.Context, category string) ([]entities.Product, error)
	Categories(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
	GenerateImageUploadURL(ctx context.Context, productID, contentType string) (uploadURL, publicURL string, err error)
}

type ProductUseCase struct {
	repo    interfaces.IProductRepository
	storage interfaces.IObjectStorage
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository, storage interfaces.IObjectStorage) *ProductUseCase {
	return &ProductUseCase{repo: repo, storage: storage}
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

func (u *ProductUseCase) ListByCategory(ctx context.Context, category string) ([]entities.Product, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return u.repo.List(ctx)
	}
	return u.repo.ListByCategory(ctx, category)
}

// Categories derives the distinct category names from the catalog, sorted.
func (u *ProductUseCase) Categories(ctx context.Context) ([]string, error) {
	products, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, p := range products {
		c := strings.TrimSpace(p.Category)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || p.Price <= 0 || p.Stock < 0 {
		return entities.Product{}, ErrInvalidProduct
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.repo.Create(ctx, p)
}

func (u *ProductUseCase) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || p.Price <= 0 || p.Stock < 0 {
		return entities.Product{}, ErrInvalidProduct
	}

	existing, err := u.repo.GetByID(ctx, p.ID)
	if err != nil {
		return entities.Product{}, err
	}
	if existing.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}

	p.CreatedAt = existing.CreatedAt
	if p.ImageURL == "" {
		p.ImageURL = existing.ImageURL
	}
	p.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, p)
}

func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProductID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrProductNotFound
	}
	return u.repo.Delete(ctx, id)
}

// GenerateImageUploadURL presigns an upload slot for a product image and
// records the resulting public URL on the product.
func (u *ProductUseCase) GenerateImageUploadURL(ctx context.Context, productID, contentType string) (string, string, error) {
	if u.storage == nil {
		return "", "", ErrStorageUnavailable
	}

	p, err := u.GetByID(ctx, productID)
	if err != nil {
		return "", "", err
	}

	key := fmt.Sprintf("products/%s/%s", p.ID, uuid.NewString())
	uploadURL, publicURL, err := u.storage.GenerateUploadURL(ctx, key, contentType)
	if err != nil {
		return "", "", err
	}

	p.ImageURL = publicURL
	p.UpdatedAt = time.Now().UTC()
	if _, err := u.repo.Update(ctx, p); err != nil {
		return "", "", err
	}
	return uploadURL, publicURL, nil
}
