package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CustomerModel is the GORM-specific struct for the 'customers' table.
// Context, cart and history are stored as JSONB documents on the row.
type CustomerModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key"`
	PhoneNumber       string         `gorm:"type:varchar(32);uniqueIndex;not null"`
	Name              string         `gorm:"type:varchar(100)"`
	Email             string         `gorm:"type:varchar(255)"`
	Notes             string         `gorm:"type:text"`
	ConversationState string         `gorm:"type:varchar(32);not null;default:'main_menu'"`
	CurrentContext    datatypes.JSON `gorm:"type:jsonb"`
	Cart              datatypes.JSON `gorm:"type:jsonb"`
	CartTotal         int64          `gorm:"not null;default:0"`
	OrderHistory      datatypes.JSON `gorm:"type:jsonb"`
	Preferences       datatypes.JSON `gorm:"type:jsonb"`
	LastInteractionAt time.Time      `gorm:"index"`
	CreatedAt         time.Time      `gorm:"index"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
