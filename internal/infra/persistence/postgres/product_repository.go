package postgres

import (
	"context"

	"orderbot/internal/domain/entity"
	domainerrors "orderbot/internal/domain/errors"
	"orderbot/internal/domain/repository"
	"orderbot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindForMenu returns the items listed on a chat category menu.
func (repo *productRepository) FindForMenu(ctx context.Context, query repository.CatalogQuery) ([]*entity.Product, error) {
	db := repo.db.WithContext(ctx)
	if query.IncludeFeatured {
		db = db.Where("category = ? OR featured = ?", query.Category.String(), true)
	} else {
		db = db.Where("category = ?", query.Category.String())
	}
	if query.AvailableOnly {
		db = db.Where("availability = ?", true)
	}
	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}

	var productModels []*model.ProductModel
	if err := db.
		Order("featured DESC").
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find menu products")
	}

	return toProductDomains(productModels)
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM)
}

// List returns one page of products and the total match count.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.Availability != nil {
		query = query.Where("availability = ?", *filter.Availability)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ? OR tags::text ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	if err := query.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products, err := toProductDomains(productModels)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM, err := fromProductDomain(product)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return nil
}

// Update overwrites every column of an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM, err := fromProductDomain(product)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(productM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by its ID.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Stats counts products for the dashboard.
func (repo *productRepository) Stats(ctx context.Context) (*repository.ProductStats, error) {
	var stats repository.ProductStats

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select(
			"COUNT(*) AS total, "+
				"COUNT(*) FILTER (WHERE availability) AS available, "+
				"COUNT(*) FILTER (WHERE stock < ?) AS low_stock",
			entity.LowStockThreshold,
		).
		Scan(&stats).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute product stats")
	}

	return &stats, nil
}

// --- Mapper Functions ---

func toProductDomains(productModels []*model.ProductModel) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		product, err := toProductDomain(productM)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) (*entity.Product, error) {
	if data == nil {
		return nil, nil
	}

	product := &entity.Product{
		ID:            data.ID,
		Name:          data.Name,
		Category:      entity.Category(data.Category),
		Subcategory:   data.Subcategory,
		Description:   data.Description,
		Price:         data.Price,
		OriginalPrice: data.OriginalPrice,
		Images:        []entity.ProductImage{},
		Availability:  data.Availability,
		Stock:         data.Stock,
		Customizable:  data.Customizable,
		Featured:      data.Featured,
		Rating:        entity.Rating{Average: data.RatingAverage, Count: data.RatingCount},
		MenuSection:   entity.MenuSection(data.MenuSection),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	if err := fromJSON(data.Images, &product.Images); err != nil {
		return nil, err
	}
	if err := fromJSON(data.Specifications, &product.Specifications); err != nil {
		return nil, err
	}
	if err := fromJSON(data.Tags, &product.Tags); err != nil {
		return nil, err
	}

	return product, nil
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) (*model.ProductModel, error) {
	images, err := toJSON(data.Images)
	if err != nil {
		return nil, err
	}
	specifications, err := toJSON(data.Specifications)
	if err != nil {
		return nil, err
	}
	tags, err := toJSON(data.Tags)
	if err != nil {
		return nil, err
	}

	return &model.ProductModel{
		ID:             data.ID,
		Name:           data.Name,
		Category:       data.Category.String(),
		Subcategory:    data.Subcategory,
		Description:    data.Description,
		Price:          data.Price,
		OriginalPrice:  data.OriginalPrice,
		Images:         images,
		Availability:   data.Availability,
		Stock:          data.Stock,
		Specifications: specifications,
		Customizable:   data.Customizable,
		Tags:           tags,
		Featured:       data.Featured,
		RatingAverage:  data.Rating.Average,
		RatingCount:    data.Rating.Count,
		MenuSection:    string(data.MenuSection),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}, nil
}
