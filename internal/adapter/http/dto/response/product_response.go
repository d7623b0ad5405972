package response

import (
	"time"

	"imperium_store/internal/domain/entities"
)

type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	ImageURL    string    `json:"image_url"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type ImageUploadResponse struct {
	UploadURL string `json:"upload_url"`
	ImageURL  string `json:"image_url"`
}
