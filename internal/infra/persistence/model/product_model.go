package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key"`
	Name           string         `gorm:"type:varchar(200);not null"`
	Category       string         `gorm:"type:varchar(32);not null;index"`
	Subcategory    string         `gorm:"type:varchar(100)"`
	Description    string         `gorm:"type:text"`
	Price          float64        `gorm:"type:double precision;not null"`
	OriginalPrice  float64        `gorm:"type:double precision"`
	Images         datatypes.JSON `gorm:"type:jsonb"`
	Availability   bool           `gorm:"not null;default:true;index"`
	Stock          int            `gorm:"not null;default:100"`
	Specifications datatypes.JSON `gorm:"type:jsonb"`
	Customizable   bool           `gorm:"not null;default:false"`
	Tags           datatypes.JSON `gorm:"type:jsonb"`
	Featured       bool           `gorm:"not null;default:false;index"`
	RatingAverage  float64        `gorm:"not null;default:0"`
	RatingCount    int            `gorm:"not null;default:0"`
	MenuSection    string         `gorm:"type:varchar(32)"`
	CreatedAt      time.Time      `gorm:"index"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
