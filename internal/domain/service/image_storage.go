package service

import (
	"context"

	"orderbot/internal/domain/entity"
	"orderbot/internal/errors"
)

var (
	// ErrImageTooLarge is returned for uploads over the configured byte limit.
	ErrImageTooLarge = errors.New("image exceeds size limit")

	// ErrImageNotFound is returned when a key does not exist in storage.
	ErrImageNotFound = errors.New("image not found")
)

// ImageStorage stores product pictures and serves them from public URLs.
type ImageStorage interface {
	// Save resizes and stores an uploaded image with a thumbnail.
	Save(ctx context.Context, filename string, data []byte) (*entity.ProductImage, error)

	// Read returns a stored object and its content type.
	Read(ctx context.Context, key string) ([]byte, string, error)

	// Delete removes an image and its thumbnail by key.
	Delete(ctx context.Context, key string) error
}
