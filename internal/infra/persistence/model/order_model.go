package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primary_key"`
	OrderID             string           `gorm:"type:varchar(32);uniqueIndex;not null"`
	CustomerID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	CustomerPhone       string           `gorm:"type:varchar(32);not null;index"`
	Items               []OrderItemModel `gorm:"foreignKey:OrderRef;constraint:OnDelete:CASCADE"`
	TotalAmount         int64            `gorm:"not null"`
	DeliveryFee         int64            `gorm:"not null;default:0"`
	RecipientName       string           `gorm:"type:varchar(100)"`
	RecipientPhone      string           `gorm:"type:varchar(32)"`
	Address             string           `gorm:"type:text;not null"`
	City                string           `gorm:"type:varchar(100);index"`
	Area                string           `gorm:"type:varchar(100)"`
	DeliveryDate        time.Time        `gorm:"type:date"`
	DeliveryTime        string           `gorm:"type:varchar(50)"`
	SpecialInstructions string           `gorm:"type:text"`
	Status              string           `gorm:"type:varchar(32);not null;index"`
	PaymentMethod       string           `gorm:"type:varchar(32);not null"`
	PaymentStatus       string           `gorm:"type:varchar(32);not null"`
	TransactionID       string           `gorm:"type:varchar(100)"`
	Timeline            datatypes.JSON   `gorm:"type:jsonb"`
	Notes               string           `gorm:"type:text"`
	CreatedAt           time.Time        `gorm:"index"`
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is one line of an order, kept in 'order_items' so sales can
// be aggregated per product.
type OrderItemModel struct {
	ID            uint           `gorm:"primaryKey;autoIncrement"`
	OrderRef      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Position      int            `gorm:"not null"`
	ProductID     string         `gorm:"type:varchar(64)"`
	ProductName   string         `gorm:"type:varchar(255);not null;index"`
	Price         int64          `gorm:"not null"`
	Quantity      int            `gorm:"not null"`
	Customization datatypes.JSON `gorm:"type:jsonb"`
	ImageURL      string         `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
