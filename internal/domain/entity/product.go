package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultProductStock is assigned when a product is created without stock.
const DefaultProductStock = 100

// LowStockThreshold marks products the dashboard flags for restocking.
const LowStockThreshold = 10

// MenuSection groups products on printed menus.
type MenuSection string

const (
	MenuSectionStarters MenuSection = "starters"
	MenuSectionMains    MenuSection = "mains"
	MenuSectionDesserts MenuSection = "desserts"
	MenuSectionDrinks   MenuSection = "drinks"
	MenuSectionSpecials MenuSection = "specials"
)

// ProductImage is one stored picture. Key addresses the blob; URL is public.
type ProductImage struct {
	Key      string `json:"key,omitempty"`
	URL      string `json:"url"`
	ThumbURL string `json:"thumbUrl,omitempty"`
	Alt      string `json:"alt,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// Specifications is optional free-form detail about a dish.
type Specifications struct {
	Dimensions      string   `json:"dimensions,omitempty"`
	Weight          string   `json:"weight,omitempty"`
	Servings        string   `json:"servings,omitempty"`
	Ingredients     []string `json:"ingredients,omitempty"`
	Allergens       []string `json:"allergens,omitempty"`
	Calories        int      `json:"calories,omitempty"`
	PreparationTime string   `json:"preparationTime,omitempty"`
	SpiceLevel      string   `json:"spiceLevel,omitempty"`
	DietaryInfo     []string `json:"dietaryInfo,omitempty"`
}

// Rating is the aggregated customer rating.
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Product is a catalog item.
type Product struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	Category       Category       `json:"category"`
	Subcategory    string         `json:"subcategory,omitempty"`
	Description    string         `json:"description"`
	Price          float64        `json:"price"`
	OriginalPrice  float64        `json:"originalPrice,omitempty"`
	Images         []ProductImage `json:"images"`
	Availability   bool           `json:"availability"`
	Stock          int            `json:"stock"`
	Specifications Specifications `json:"specifications"`
	Customizable   bool           `json:"customizable"`
	Tags           []string       `json:"tags,omitempty"`
	Featured       bool           `json:"featured"`
	Rating         Rating         `json:"rating"`
	MenuSection    MenuSection    `json:"menuSection,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// Snapshot copies the fields a chat menu needs.
func (p *Product) Snapshot() ItemSnapshot {
	images := make([]ProductImage, len(p.Images))
	copy(images, p.Images)

	return ItemSnapshot{
		ID:          p.ID.String(),
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Price:       p.Price,
		Original:    p.OriginalPrice,
		Featured:    p.Featured,
		SpiceLevel:  p.Specifications.SpiceLevel,
		Servings:    p.Specifications.Servings,
		PrepTime:    p.Specifications.PreparationTime,
		Ingredients: p.Specifications.Ingredients,
		Images:      images,
	}
}

// IsLowStock reports whether stock is under the restock threshold.
func (p *Product) IsLowStock() bool {
	return p.Stock < LowStockThreshold
}
