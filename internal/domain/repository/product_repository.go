package repository

import (
	"context"

	"orderbot/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
)

// CatalogQuery is the menu builder's read against the catalog. Results are
// ordered featured first, then newest first.
type CatalogQuery struct {
	Category      entity.Category
	AvailableOnly bool
	Limit         int
	// IncludeFeatured also matches featured items of any category.
	IncludeFeatured bool
}

// ProductFilter narrows an admin product listing. Nil pointers do not filter.
type ProductFilter struct {
	Page
	Category     entity.Category
	Availability *bool
	Featured     *bool
	// Search matches name, description and tags.
	Search string
}

// ProductStats is the dashboard view of the catalog.
type ProductStats struct {
	Total     int64
	Available int64
	LowStock  int64
}

// ProductRepository is the catalog store.
type ProductRepository interface {
	// FindForMenu returns the items a category menu lists.
	FindForMenu(ctx context.Context, query CatalogQuery) ([]*entity.Product, error)

	// FindByID retrieves a product by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List returns one page of products and the total match count.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int64, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update overwrites an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// Stats counts products, available products and products low on stock.
	Stats(ctx context.Context) (*ProductStats, error)
}
