package impl

import (
	"context"
	"testing"

	"orderbot/config"
	"orderbot/internal/domain/entity"
	domainerrors "orderbot/internal/domain/errors"
	"orderbot/internal/domain/repository"
	"orderbot/internal/domain/service"
	mockRepo "orderbot/internal/mocks/repository"
	mockService "orderbot/internal/mocks/service"
	"orderbot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type staffDeviceServiceFixtures struct {
	service         usecase.StaffDeviceUsecase
	deviceRepo      *mockRepo.MockStaffDeviceRepository
	notificationSvc *mockService.MockNotificationService
}

func createTestStaffDeviceService(t *testing.T) staffDeviceServiceFixtures {
	deviceRepo := mockRepo.NewMockStaffDeviceRepository(t)
	notificationSvc := mockService.NewMockNotificationService(t)

	srv := NewStaffDeviceService(StaffDeviceServiceParams{
		DeviceRepo:      deviceRepo,
		NotificationSvc: notificationSvc,
		Config:          &config.Config{Shop: &config.ShopConfig{Name: "Tony's Pizza Palace"}},
		Logger:          newDiscardLogger(),
	})

	return staffDeviceServiceFixtures{
		service:         srv,
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
	}
}

func TestStaffDeviceService_RegisterDevice(t *testing.T) {
	fx := createTestStaffDeviceService(t)

	fx.deviceRepo.EXPECT().Upsert(mock.Anything, mock.AnythingOfType("*entity.StaffDevice")).Return(nil)

	device, err := fx.service.RegisterDevice(context.Background(), &usecase.StaffDeviceInfo{
		StaffName: "Luigi",
		FCMToken:  "fcm-token",
		DeviceID:  "tablet-1",
		Platform:  "android",
	})
	require.NoError(t, err)
	assert.True(t, device.IsActive)
	assert.Equal(t, "tablet-1", device.DeviceID)
	assert.Equal(t, "Luigi", device.StaffName)
}

func TestStaffDeviceService_ListAndRemove(t *testing.T) {
	fx := createTestStaffDeviceService(t)
	known, missing := uuid.New(), uuid.New()

	fx.deviceRepo.EXPECT().List(mock.Anything).Return([]*entity.StaffDevice{{ID: known}}, nil)
	fx.deviceRepo.EXPECT().Delete(mock.Anything, known).Return(nil)
	fx.deviceRepo.EXPECT().Delete(mock.Anything, missing).Return(repository.ErrStaffDeviceNotFound)

	devices, err := fx.service.ListDevices(context.Background())
	require.NoError(t, err)
	assert.Len(t, devices, 1)

	require.NoError(t, fx.service.RemoveDevice(context.Background(), known))
	require.ErrorIs(t, fx.service.RemoveDevice(context.Background(), missing), domainerrors.ErrStaffDeviceNotFound)
}

func TestStaffDeviceService_SendTestAlert(t *testing.T) {
	id := uuid.New()
	device := &entity.StaffDevice{ID: id, DeviceID: "tablet-1", FCMToken: "fcm-token", IsActive: true}

	t.Run("delivered", func(t *testing.T) {
		fx := createTestStaffDeviceService(t)
		fx.deviceRepo.EXPECT().FindByID(mock.Anything, id).Return(device, nil)
		fx.notificationSvc.EXPECT().
			Send(mock.Anything, "fcm-token", mock.MatchedBy(func(alert *service.StaffAlert) bool {
				return alert.Title == "Test alert" &&
					alert.Body == "New orders for Tony's Pizza Palace will show up here." &&
					alert.Data["device_id"] == "tablet-1"
			})).
			Return(nil)

		require.NoError(t, fx.service.SendTestAlert(context.Background(), id))
	})

	t.Run("unknown device", func(t *testing.T) {
		fx := createTestStaffDeviceService(t)
		fx.deviceRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrStaffDeviceNotFound)

		require.ErrorIs(t, fx.service.SendTestAlert(context.Background(), id), domainerrors.ErrStaffDeviceNotFound)
	})

	t.Run("token gone deactivates", func(t *testing.T) {
		fx := createTestStaffDeviceService(t)
		fx.deviceRepo.EXPECT().FindByID(mock.Anything, id).Return(device, nil)
		fx.notificationSvc.EXPECT().
			Send(mock.Anything, "fcm-token", mock.Anything).
			Return(errors.Wrap(service.ErrDeviceTokenInvalid, "registration-token-not-registered"))
		fx.deviceRepo.EXPECT().DeactivateTokens(mock.Anything, []string{"fcm-token"}).Return(nil)

		require.ErrorIs(t, fx.service.SendTestAlert(context.Background(), id), domainerrors.ErrStaffDeviceUnreachable)
	})

	t.Run("provider failure", func(t *testing.T) {
		fx := createTestStaffDeviceService(t)
		fx.deviceRepo.EXPECT().FindByID(mock.Anything, id).Return(device, nil)
		fx.notificationSvc.EXPECT().Send(mock.Anything, "fcm-token", mock.Anything).Return(errors.New("fcm 503"))

		err := fx.service.SendTestAlert(context.Background(), id)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrStaffDeviceUnreachable)
	})
}
