// Package storage keeps product images in a gocloud.dev bucket.
package storage

import (
	"bytes"
	"context"
	"image"
	"log/slog"
	"path"
	"strings"

	"orderbot/config"
	"orderbot/internal/domain/entity"
	"orderbot/internal/domain/service"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const (
	imagePrefix = "products/"
	thumbPrefix = "products/thumbs/"
	contentType = "image/jpeg"
	jpegQuality = 85
)

type blobStorage struct {
	bucket     *blob.Bucket
	publicBase string
	maxBytes   int64
	width      int
	thumbWidth int
	logger     *slog.Logger
}

// StorageParams holds dependencies for ImageStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStorage opens the configured bucket and closes it on shutdown.
func NewImageStorage(params StorageParams) (service.ImageStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil {
		return nil, errors.New("storage is not configured")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}
	params.Logger.Info("Image bucket opened", slog.String("bucket", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return newBlobStorage(bucket, cfg, params.Logger), nil
}

func newBlobStorage(bucket *blob.Bucket, cfg *config.StorageConfig, logger *slog.Logger) *blobStorage {
	return &blobStorage{
		bucket:     bucket,
		publicBase: strings.TrimRight(cfg.PublicBaseURL, "/"),
		maxBytes:   cfg.MaxImageBytes,
		width:      cfg.ImageWidth,
		thumbWidth: cfg.ThumbnailWidth,
		logger:     logger,
	}
}

// Save decodes the upload, downsizes it to the configured width and stores it
// next to a thumbnail. Both are re-encoded as JPEG.
func (s *blobStorage) Save(ctx context.Context, filename string, data []byte) (*entity.ProductImage, error) {
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return nil, errors.Wrapf(service.ErrImageTooLarge, "%s is %d bytes", filename, len(data))
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", filename)
	}

	if s.width > 0 && img.Bounds().Dx() > s.width {
		img = imaging.Resize(img, s.width, 0, imaging.Lanczos)
	}
	thumb := imaging.Resize(img, s.thumbWidth, 0, imaging.Lanczos)

	name := uuid.NewString() + ".jpg"
	key := imagePrefix + name
	thumbKey := thumbPrefix + name

	if err := s.write(ctx, key, img); err != nil {
		return nil, err
	}
	if err := s.write(ctx, thumbKey, thumb); err != nil {
		_ = s.bucket.Delete(ctx, key)

		return nil, err
	}
	s.logger.Debug("Product image stored",
		slog.String("key", key),
		slog.String("filename", filename),
		slog.Int("width", img.Bounds().Dx()),
	)

	return &entity.ProductImage{
		Key:      key,
		URL:      s.publicURL(key),
		ThumbURL: s.publicURL(thumbKey),
		MimeType: contentType,
	}, nil
}

func (s *blobStorage) write(ctx context.Context, key string, img image.Image) error {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return errors.Wrapf(err, "failed to encode %s", key)
	}

	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, buf.Bytes(), opts); err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}

	return nil
}

func (s *blobStorage) Read(ctx context.Context, key string) ([]byte, string, error) {
	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrImageNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to stat %s", key)
	}

	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to read %s", key)
	}

	return data, attrs.ContentType, nil
}

// Delete removes the image and its thumbnail. Missing objects are not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	for _, k := range []string{key, thumbKeyFor(key)} {
		if err := s.bucket.Delete(ctx, k); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
			return errors.Wrapf(err, "failed to delete %s", k)
		}
	}

	return nil
}

func thumbKeyFor(key string) string {
	return thumbPrefix + path.Base(key)
}

func (s *blobStorage) publicURL(key string) string {
	if s.publicBase == "" {
		return "/" + key
	}

	return s.publicBase + "/" + key
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewImageStorage),
)
