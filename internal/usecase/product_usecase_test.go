package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"imperium_store/internal/domain/entities"
	mock_interfaces "imperium_store/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProductUseCase_Categories(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProductRepository(ctrl)
	uc := NewProductUseCase(repo, nil)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Product{
		{ID: "p-1", Category: "armas"},
		{ID: "p-2", Category: "armaduras"},
		{ID: "p-3", Category: "armas"},
		{ID: "p-4", Category: "  "},
	}, nil)

	categories, err := uc.Categories(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 2 || categories[0] != "armaduras" || categories[1] != "armas" {
		t.Fatalf("expected sorted distinct categories, got %v", categories)
	}
}

func TestProductUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects invalid data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil)

		cases := []entities.Product{
			{Name: "  ", Price: 10},
			{Name: "Espada", Price: 0},
			{Name: "Espada", Price: 10, Stock: -1},
		}
		for _, p := range cases {
			if _, err := uc.Create(ctx, p); !errors.Is(err, ErrInvalidProduct) {
				t.Fatalf("product %+v: expected ErrInvalidProduct, got %v", p, err)
			}
		}
	})

	t.Run("assigns id and timestamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.ID == "" || p.CreatedAt.IsZero() || !p.CreatedAt.Equal(p.UpdatedAt) {
					t.Fatalf("expected generated id and matching timestamps, got %+v", p)
				}
				return p, nil
			})

		created, err := uc.Create(ctx, entities.Product{Name: " Espada ", Price: 199.90, Category: "armas", Stock: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Name != "Espada" {
			t.Fatalf("expected trimmed name, got %q", created.Name)
		}
	})
}

func TestProductUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps existing image when omitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Name: "Espada", ImageURL: "https://cdn.local/old.png"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.ImageURL != "https://cdn.local/old.png" {
					t.Fatalf("expected image to be preserved, got %q", p.ImageURL)
				}
				return p, nil
			})

		if _, err := uc.Update(ctx, entities.Product{ID: "p-1", Name: "Espada Longa", Price: 249.90, Stock: 3}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Product{}, nil)

		_, err := uc.Update(ctx, entities.Product{ID: "missing", Name: "Espada", Price: 10})
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})
}

func TestProductUseCase_GenerateImageUploadURL(t *testing.T) {
	ctx := context.Background()

	t.Run("storage not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil)

		_, _, err := uc.GenerateImageUploadURL(ctx, "p-1", "image/png")
		if !errors.Is(err, ErrStorageUnavailable) {
			t.Fatalf("expected ErrStorageUnavailable, got %v", err)
		}
	})

	t.Run("presigns under the product prefix and records the public url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		store := mock_interfaces.NewMockIObjectStorage(ctrl)
		uc := NewProductUseCase(repo, store)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Name: "Espada"}, nil)
		store.EXPECT().GenerateUploadURL(gomock.Any(), gomock.Any(), "image/png").DoAndReturn(
			func(_ context.Context, key, _ string) (string, string, error) {
				if !strings.HasPrefix(key, "products/p-1/") {
					t.Fatalf("expected key under products/p-1/, got %q", key)
				}
				return "https://s3.local/put", "https://cdn.local/" + key, nil
			})
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if !strings.HasPrefix(p.ImageURL, "https://cdn.local/products/p-1/") {
					t.Fatalf("expected public url recorded, got %q", p.ImageURL)
				}
				return p, nil
			})

		uploadURL, publicURL, err := uc.GenerateImageUploadURL(ctx, "p-1", "image/png")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if uploadURL == "" || publicURL == "" {
			t.Fatalf("expected both urls, got %q %q", uploadURL, publicURL)
		}
	})
}
