package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"testing"

	"orderbot/config"
	"orderbot/internal/domain/service"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
)

func newTestStorage(t *testing.T, cfg *config.StorageConfig) *blobStorage {
	t.Helper()

	bucket, err := blob.OpenBucket(t.Context(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	return newBlobStorage(bucket, cfg, slog.New(slog.DiscardHandler))
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := range width {
		for y := range height {
			img.Set(x, y, color.RGBA{R: 200, G: 80, B: 40, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestBlobStorage_Save_ResizesAndStoresThumbnail(t *testing.T) {
	s := newTestStorage(t, &config.StorageConfig{
		PublicBaseURL:  "https://cdn.example/images/",
		ImageWidth:     200,
		ThumbnailWidth: 50,
	})

	stored, err := s.Save(t.Context(), "pizza.png", pngBytes(t, 400, 200))
	require.NoError(t, err)

	assert.Contains(t, stored.Key, "products/")
	assert.Equal(t, "https://cdn.example/images/"+stored.Key, stored.URL)
	assert.Equal(t, "https://cdn.example/images/"+thumbKeyFor(stored.Key), stored.ThumbURL)
	assert.Equal(t, "image/jpeg", stored.MimeType)

	data, contentType, err := s.Read(t.Context(), stored.Key)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", contentType)
	img, err := imaging.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())

	thumbData, _, err := s.Read(t.Context(), thumbKeyFor(stored.Key))
	require.NoError(t, err)
	thumb, err := imaging.Decode(bytes.NewReader(thumbData))
	require.NoError(t, err)
	assert.Equal(t, 50, thumb.Bounds().Dx())
}

func TestBlobStorage_Save_KeepsSmallImageWidth(t *testing.T) {
	s := newTestStorage(t, &config.StorageConfig{ImageWidth: 1024, ThumbnailWidth: 30})

	stored, err := s.Save(t.Context(), "salad.png", pngBytes(t, 120, 60))
	require.NoError(t, err)
	assert.Equal(t, "/"+stored.Key, stored.URL)

	data, _, err := s.Read(t.Context(), stored.Key)
	require.NoError(t, err)
	img, err := imaging.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
}

func TestBlobStorage_Save_Rejects(t *testing.T) {
	s := newTestStorage(t, &config.StorageConfig{MaxImageBytes: 10, ThumbnailWidth: 30})

	_, err := s.Save(t.Context(), "big.png", pngBytes(t, 20, 20))
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrImageTooLarge))

	s = newTestStorage(t, &config.StorageConfig{ThumbnailWidth: 30})
	_, err = s.Save(t.Context(), "notes.txt", []byte("not an image"))
	require.Error(t, err)
}

func TestBlobStorage_Delete(t *testing.T) {
	s := newTestStorage(t, &config.StorageConfig{ThumbnailWidth: 30})

	stored, err := s.Save(t.Context(), "dessert.png", pngBytes(t, 60, 60))
	require.NoError(t, err)

	require.NoError(t, s.Delete(t.Context(), stored.Key))

	_, _, err = s.Read(t.Context(), stored.Key)
	assert.ErrorIs(t, err, service.ErrImageNotFound)
	_, _, err = s.Read(t.Context(), thumbKeyFor(stored.Key))
	assert.ErrorIs(t, err, service.ErrImageNotFound)

	// Deleting again is a no-op.
	require.NoError(t, s.Delete(t.Context(), stored.Key))
}
