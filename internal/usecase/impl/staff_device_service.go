package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"orderbot/config"
	"orderbot/internal/domain/entity"
	domainerrors "orderbot/internal/domain/errors"
	"orderbot/internal/domain/repository"
	"orderbot/internal/domain/service"
	"orderbot/internal/errors"
	"orderbot/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// StaffDeviceServiceParams holds dependencies for StaffDeviceService, injected by Fx.
type StaffDeviceServiceParams struct {
	fx.In

	DeviceRepo      repository.StaffDeviceRepository
	NotificationSvc service.NotificationService
	Config          *config.Config
	Logger          *slog.Logger
}

type staffDeviceService struct {
	deviceRepo      repository.StaffDeviceRepository
	notificationSvc service.NotificationService
	shopName        string
	logger          *slog.Logger
}

// NewStaffDeviceService creates a new staff device service instance
func NewStaffDeviceService(params StaffDeviceServiceParams) usecase.StaffDeviceUsecase {
	var shopName string
	if params.Config.Shop != nil {
		shopName = params.Config.Shop.Name
	}

	return &staffDeviceService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		shopName:        shopName,
		logger:          params.Logger,
	}
}

// RegisterDevice registers a new device or refreshes the token of a known device id
func (s *staffDeviceService) RegisterDevice(ctx context.Context, info *usecase.StaffDeviceInfo) (*entity.StaffDevice, error) {
	now := time.Now()
	device := &entity.StaffDevice{
		ID:        uuid.New(),
		StaffName: info.StaffName,
		FCMToken:  info.FCMToken,
		DeviceID:  info.DeviceID,
		Platform:  info.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Upsert keeps the stored id when the device id is already registered.
	if err := s.deviceRepo.Upsert(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to register staff device: %w", err)
	}

	return device, nil
}

// ListDevices returns every registered device
func (s *staffDeviceService) ListDevices(ctx context.Context) ([]*entity.StaffDevice, error) {
	devices, err := s.deviceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff devices: %w", err)
	}

	return devices, nil
}

// RemoveDevice deletes a device
func (s *staffDeviceService) RemoveDevice(ctx context.Context, id uuid.UUID) error {
	if err := s.deviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStaffDeviceNotFound) {
			return domainerrors.ErrStaffDeviceNotFound
		}

		return fmt.Errorf("failed to delete staff device: %w", err)
	}

	return nil
}

// SendTestAlert pushes a test notification to one device. A token the push
// provider has forgotten deactivates the device.
func (s *staffDeviceService) SendTestAlert(ctx context.Context, id uuid.UUID) error {
	device, err := s.deviceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStaffDeviceNotFound) {
			return domainerrors.ErrStaffDeviceNotFound
		}

		return fmt.Errorf("failed to load staff device: %w", err)
	}

	alert := &service.StaffAlert{
		Title: "Test alert",
		Body:  "New orders for " + s.shopName + " will show up here.",
		Data:  map[string]string{"event_type": "device.test", "device_id": device.DeviceID},
	}
	if s.shopName == "" {
		alert.Body = "New orders will show up here."
	}

	err = s.notificationSvc.Send(ctx, device.FCMToken, alert)
	if errors.Is(err, service.ErrDeviceTokenInvalid) {
		if deactivateErr := s.deviceRepo.DeactivateTokens(ctx, []string{device.FCMToken}); deactivateErr != nil {
			s.logger.WarnContext(ctx, "Failed to deactivate staff device",
				slog.String("device_id", device.DeviceID),
				slog.Any("error", deactivateErr),
			)
		}

		return domainerrors.ErrStaffDeviceUnreachable
	}
	if err != nil {
		return fmt.Errorf("failed to send test alert: %w", err)
	}

	return nil
}
