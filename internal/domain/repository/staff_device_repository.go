package repository

import (
	"context"

	"orderbot/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for staff device persistence.
var (
	// ErrStaffDeviceNotFound is returned when a device is not found.
	ErrStaffDeviceNotFound = errors.New("staff device not found")
)

// StaffDeviceRepository defines the interface for staff device database operations.
type StaffDeviceRepository interface {
	// Upsert registers a device, or refreshes the token of a known device id.
	Upsert(ctx context.Context, device *entity.StaffDevice) error

	// FindByID retrieves a device by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.StaffDevice, error)

	// List returns all registered devices, including inactive ones.
	List(ctx context.Context) ([]*entity.StaffDevice, error)

	// FindActive returns the devices that should receive alerts.
	FindActive(ctx context.Context) ([]*entity.StaffDevice, error)

	// DeactivateTokens marks devices holding any of the tokens as inactive.
	DeactivateTokens(ctx context.Context, tokens []string) error

	// Delete removes a device by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
