package usecase

import (
	"context"

	"orderbot/internal/domain/entity"
	"orderbot/internal/domain/repository"

	"github.com/google/uuid"
)

// ProductInput carries admin-editable product fields.
type ProductInput struct {
	Name           string                `json:"name" validate:"required,max=200"`
	Category       entity.Category       `json:"category" validate:"required"`
	Subcategory    string                `json:"subcategory"`
	Description    string                `json:"description" validate:"required"`
	Price          float64               `json:"price" validate:"gt=0"`
	OriginalPrice  float64               `json:"originalPrice" validate:"gte=0"`
	Availability   *bool                 `json:"availability"`
	Stock          *int                  `json:"stock" validate:"omitempty,gte=0"`
	Specifications entity.Specifications `json:"specifications"`
	Customizable   bool                  `json:"customizable"`
	Tags           []string              `json:"tags"`
	Featured       bool                  `json:"featured"`
	MenuSection    entity.MenuSection    `json:"menuSection"`
	// KeepImages lists existing image keys to retain on update. Nil keeps all.
	KeepImages []string `json:"keepImages"`
}

// ImageUpload is one uploaded file.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ProductPage is one page of an admin product listing.
type ProductPage struct {
	Products []*entity.Product `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

// CatalogUsecase manages the product catalog for the admin API.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, filter repository.ProductFilter) (*ProductPage, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *ProductInput, images []ImageUpload) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput, images []ImageUpload) (*entity.Product, error)
	// DeleteProduct removes the product and its stored images.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
