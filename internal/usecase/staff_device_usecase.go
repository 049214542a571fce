package usecase

import (
	"context"

	"orderbot/internal/domain/entity"

	"github.com/google/uuid"
)

// StaffDeviceInfo represents device information for registration
type StaffDeviceInfo struct {
	StaffName string `json:"staff_name" validate:"required,max=100"`
	FCMToken  string `json:"fcm_token" validate:"required"`
	DeviceID  string `json:"device_id" validate:"required"`
	Platform  string `json:"platform" validate:"required,oneof=ios android web"`
}

// StaffDeviceUsecase manages devices that receive new-order alerts.
type StaffDeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes an existing one
	RegisterDevice(ctx context.Context, info *StaffDeviceInfo) (*entity.StaffDevice, error)

	// ListDevices returns every registered device
	ListDevices(ctx context.Context) ([]*entity.StaffDevice, error)

	// RemoveDevice deletes a device
	RemoveDevice(ctx context.Context, id uuid.UUID) error

	// SendTestAlert pushes a test notification to a device
	SendTestAlert(ctx context.Context, id uuid.UUID) error
}
