package entity

import (
	"time"

	"github.com/google/uuid"
)

// StaffDevice is a kitchen or counter device that receives new-order alerts.
// DeviceID is chosen by the client and stays stable across FCM token refreshes.
type StaffDevice struct {
	ID        uuid.UUID `json:"id"`
	StaffName string    `json:"staff_name"`
	FCMToken  string    `json:"fcm_token"`
	DeviceID  string    `json:"device_id"`
	Platform  string    `json:"platform"` // ios, android or web
	// IsActive is cleared once FCM reports the token unregistered.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
