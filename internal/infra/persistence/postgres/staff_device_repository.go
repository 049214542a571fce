package postgres

import (
	"context"

	"orderbot/internal/domain/entity"
	"orderbot/internal/domain/repository"
	"orderbot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// staffDeviceRepository implements the repository.StaffDeviceRepository interface.
type staffDeviceRepository struct {
	db *gorm.DB
}

// NewStaffDeviceRepository is the constructor for staffDeviceRepository.
func NewStaffDeviceRepository(db *gorm.DB) repository.StaffDeviceRepository {
	return &staffDeviceRepository{
		db: db,
	}
}

// Upsert registers a device. A known device id gets the new token and is
// reactivated; the stored ID and CreatedAt are copied back onto device.
func (repo *staffDeviceRepository) Upsert(ctx context.Context, device *entity.StaffDevice) error {
	deviceM := fromStaffDeviceDomain(device)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"staff_name", "fcm_token", "platform", "is_active", "updated_at"}),
		}).Create(deviceM).Error; err != nil {
			return err
		}

		return tx.Where("device_id = ?", device.DeviceID).First(deviceM).Error
	})
	if err != nil {
		return errors.Wrap(err, "failed to upsert staff device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindByID retrieves a device by its unique ID.
func (repo *staffDeviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StaffDevice, error) {
	var deviceM model.StaffDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStaffDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find staff device by ID")
	}

	return toStaffDeviceDomain(&deviceM), nil
}

// List returns all devices, newest first.
func (repo *staffDeviceRepository) List(ctx context.Context) ([]*entity.StaffDevice, error) {
	return repo.find(ctx, repo.db.WithContext(ctx), "failed to list staff devices")
}

// FindActive returns the devices that receive new-order alerts.
func (repo *staffDeviceRepository) FindActive(ctx context.Context) ([]*entity.StaffDevice, error) {
	return repo.find(ctx, repo.db.WithContext(ctx).Where("is_active = ?", true), "failed to find active staff devices")
}

func (repo *staffDeviceRepository) find(_ context.Context, query *gorm.DB, failure string) ([]*entity.StaffDevice, error) {
	var deviceModels []*model.StaffDeviceModel

	if err := query.Order("created_at DESC").Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, failure)
	}

	devices := make([]*entity.StaffDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toStaffDeviceDomain(deviceM))
	}

	return devices, nil
}

// DeactivateTokens marks devices whose tokens FCM rejected as inactive.
func (repo *staffDeviceRepository) DeactivateTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.StaffDeviceModel{}).
		Where("fcm_token IN ?", tokens).
		Update("is_active", false).Error; err != nil {
		return errors.Wrap(err, "failed to deactivate staff device tokens")
	}

	return nil
}

// Delete removes a device by its ID.
func (repo *staffDeviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.StaffDeviceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete staff device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStaffDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toStaffDeviceDomain converts a GORM StaffDeviceModel to a domain StaffDevice entity.
func toStaffDeviceDomain(data *model.StaffDeviceModel) *entity.StaffDevice {
	if data == nil {
		return nil
	}

	return &entity.StaffDevice{
		ID:        data.ID,
		StaffName: data.StaffName,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromStaffDeviceDomain converts a domain StaffDevice entity to a GORM StaffDeviceModel.
func fromStaffDeviceDomain(data *entity.StaffDevice) *model.StaffDeviceModel {
	if data == nil {
		return nil
	}

	return &model.StaffDeviceModel{
		ID:        data.ID,
		StaffName: data.StaffName,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
