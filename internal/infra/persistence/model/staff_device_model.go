package model

import (
	"time"

	"github.com/google/uuid"
)

// StaffDeviceModel is the GORM-specific struct for the 'staff_devices' table.
// It represents a shop device registered for new-order push notifications.
type StaffDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	StaffName string    `gorm:"type:varchar(100)"`
	FCMToken  string    `gorm:"type:varchar(255);not null;index"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StaffDeviceModel) TableName() string {
	return "staff_devices"
}

// All lists every table the service owns, in migration order.
func All() []any {
	return []any{
		&CustomerModel{},
		&ProductModel{},
		&OrderModel{},
		&OrderItemModel{},
		&StaffDeviceModel{},
	}
}
