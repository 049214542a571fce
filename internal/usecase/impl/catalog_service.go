package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"orderbot/config"
	deliverycontext "orderbot/internal/delivery/context"
	"orderbot/internal/domain/entity"
	domainerrors "orderbot/internal/domain/errors"
	"orderbot/internal/domain/repository"
	"orderbot/internal/domain/service"
	"orderbot/internal/errors"
	"orderbot/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultProductPageLimit = 50
	maxPageLimit            = 100
)

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	ImageStorage service.ImageStorage
	Config       *config.Config
	Logger       *slog.Logger
}

type catalogService struct {
	productRepo  repository.ProductRepository
	imageStorage service.ImageStorage
	maxImages    int
	logger       *slog.Logger
}

// NewCatalogService creates the admin catalog service.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	maxImages := 5
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxImages > 0 {
		maxImages = params.Config.Storage.MaxImages
	}

	return &catalogService{
		productRepo:  params.ProductRepo,
		imageStorage: params.ImageStorage,
		maxImages:    maxImages,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizePage clamps a page request to sane bounds.
func normalizePage(page repository.Page, defaultLimit int) repository.Page {
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Limit < 1 {
		page.Limit = defaultLimit
	}
	if page.Limit > maxPageLimit {
		page.Limit = maxPageLimit
	}

	return page
}

func (srv *catalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) (*usecase.ProductPage, error) {
	filter.Page = normalizePage(filter.Page, defaultProductPageLimit)

	products, total, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &usecase.ProductPage{
		Products: products,
		Total:    total,
		Page:     filter.Page.Page,
		Limit:    filter.Page.Limit,
	}, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return product, nil
}

func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput, images []usecase.ImageUpload) (*entity.Product, error) {
	if err := srv.validateInput(input, len(images)); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New(),
		Availability: true,
		Stock:        entity.DefaultProductStock,
		Images:       []entity.ProductImage{},
		CreatedAt:    now,
	}
	applyProductInput(product, input, now)

	stored, err := srv.storeImages(ctx, images, product.Name)
	if err != nil {
		return nil, err
	}
	product.Images = append(product.Images, stored...)

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.discardImages(ctx, stored)

		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.ProductInput, images []usecase.ImageUpload) (*entity.Product, error) {
	product, err := srv.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	kept, dropped := splitImages(product.Images, input.KeepImages)
	if err := srv.validateInput(input, len(kept)+len(images)); err != nil {
		return nil, err
	}

	applyProductInput(product, input, time.Now())

	stored, err := srv.storeImages(ctx, images, product.Name)
	if err != nil {
		return nil, err
	}
	product.Images = append(kept, stored...)

	if err := srv.productRepo.Update(ctx, product); err != nil {
		srv.discardImages(ctx, stored)
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	srv.discardImages(ctx, dropped)

	return product, nil
}

func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := srv.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return fmt.Errorf("failed to delete product: %w", err)
	}
	srv.discardImages(ctx, product.Images)

	return nil
}

func (srv *catalogService) validateInput(input *usecase.ProductInput, imageCount int) error {
	if !input.Category.IsValid() {
		return domainerrors.ErrInvalidCategory.WithDetails(input.Category.String())
	}
	if input.Price <= 0 || entity.MoneyFromFloat(input.Price) <= 0 {
		return domainerrors.ErrInvalidPrice
	}
	if imageCount > srv.maxImages {
		return domainerrors.ErrTooManyImages.WithDetails(fmt.Sprintf("at most %d images", srv.maxImages))
	}

	return nil
}

func applyProductInput(product *entity.Product, input *usecase.ProductInput, now time.Time) {
	product.Name = strings.TrimSpace(input.Name)
	product.Category = input.Category
	product.Subcategory = input.Subcategory
	product.Description = input.Description
	product.Price = input.Price
	product.OriginalPrice = input.OriginalPrice
	if input.Availability != nil {
		product.Availability = *input.Availability
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	product.Specifications = input.Specifications
	product.Customizable = input.Customizable
	product.Tags = input.Tags
	product.Featured = input.Featured
	product.MenuSection = input.MenuSection
	product.UpdatedAt = now
}

// splitImages keeps images whose key is listed. A nil list keeps everything.
func splitImages(images []entity.ProductImage, keep []string) (kept, dropped []entity.ProductImage) {
	if keep == nil {
		return images, nil
	}

	wanted := make(map[string]struct{}, len(keep))
	for _, key := range keep {
		wanted[key] = struct{}{}
	}
	for _, image := range images {
		if _, ok := wanted[image.Key]; ok {
			kept = append(kept, image)
		} else {
			dropped = append(dropped, image)
		}
	}

	return kept, dropped
}

func (srv *catalogService) storeImages(ctx context.Context, uploads []usecase.ImageUpload, alt string) ([]entity.ProductImage, error) {
	stored := make([]entity.ProductImage, 0, len(uploads))
	for _, upload := range uploads {
		if !strings.HasPrefix(upload.ContentType, "image/") {
			srv.discardImages(ctx, stored)

			return nil, domainerrors.ErrInvalidImage.WithDetails(upload.Filename)
		}

		image, err := srv.imageStorage.Save(ctx, upload.Filename, upload.Data)
		if err != nil {
			srv.discardImages(ctx, stored)
			if errors.Is(err, service.ErrImageTooLarge) {
				return nil, domainerrors.ErrInvalidImage.WithDetails(err.Error())
			}

			return nil, domainerrors.ErrImageUploadFailed.WithDetails(err.Error())
		}
		image.Alt = alt
		stored = append(stored, *image)
	}

	return stored, nil
}

// discardImages removes stored files, logging failures.
func (srv *catalogService) discardImages(ctx context.Context, images []entity.ProductImage) {
	for _, image := range images {
		if image.Key == "" {
			continue
		}
		if err := srv.imageStorage.Delete(ctx, image.Key); err != nil {
			srv.log(ctx).Warn("Failed to delete product image",
				slog.String("key", image.Key),
				slog.Any("error", err),
			)
		}
	}
}
