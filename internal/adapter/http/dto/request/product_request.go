package request

import (
	"strings"

	"imperium_store/internal/domain/entities"
)

type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"image_url"`
	Featured    bool    `json:"featured"`
}

func (r ProductRequest) ToEntity() entities.Product {
	return entities.Product{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Price:       r.Price,
		Category:    strings.TrimSpace(r.Category),
		Stock:       r.Stock,
		ImageURL:    strings.TrimSpace(r.ImageURL),
		Featured:    r.Featured,
	}
}

// ImageUploadRequest asks for a presigned URL to upload a product image.
type ImageUploadRequest struct {
	ContentType string `json:"content_type" binding:"required"`
}
