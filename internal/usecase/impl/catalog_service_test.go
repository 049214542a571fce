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

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
	storage     *mockService.MockImageStorage
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	storage := mockService.NewMockImageStorage(t)

	return catalogServiceFixtures{
		service: NewCatalogService(CatalogServiceParams{
			ProductRepo:  productRepo,
			ImageStorage: storage,
			Config:       &config.Config{Storage: &config.StorageConfig{MaxImages: 2}},
			Logger:       newDiscardLogger(),
		}),
		productRepo: productRepo,
		storage:     storage,
	}
}

func saladInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:        "  Caesar Salad ",
		Category:    entity.CategorySalads,
		Description: "Romaine, parmesan, croutons",
		Price:       9.99,
	}
}

func jpegUpload(name string) usecase.ImageUpload {
	return usecase.ImageUpload{Filename: name, ContentType: "image/jpeg", Data: []byte{0xff, 0xd8}}
}

func TestCatalogService_ListProducts_ClampsPage(t *testing.T) {
	fx := createTestCatalogService(t)

	fx.productRepo.EXPECT().
		List(mock.Anything, repository.ProductFilter{Page: repository.Page{Page: 1, Limit: maxPageLimit}, Search: "pepperoni"}).
		Return([]*entity.Product{{Name: "Pepperoni"}}, int64(1), nil)

	page, err := fx.service.ListProducts(context.Background(), repository.ProductFilter{
		Page:   repository.Page{Page: -3, Limit: 1000},
		Search: "pepperoni",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, maxPageLimit, page.Limit)
	assert.Equal(t, int64(1), page.Total)
}

func TestCatalogService_CreateProduct(t *testing.T) {
	fx := createTestCatalogService(t)

	fx.storage.EXPECT().
		Save(mock.Anything, "caesar.jpg", mock.Anything).
		Return(&entity.ProductImage{Key: "products/abc.jpg", URL: "/images/products/abc.jpg"}, nil)
	fx.productRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.CreateProduct(context.Background(), saladInput(), []usecase.ImageUpload{jpegUpload("caesar.jpg")})
	require.NoError(t, err)

	assert.Equal(t, "Caesar Salad", product.Name)
	assert.True(t, product.Availability)
	assert.Equal(t, entity.DefaultProductStock, product.Stock)
	require.Len(t, product.Images, 1)
	assert.Equal(t, "Caesar Salad", product.Images[0].Alt)
	assert.NotEqual(t, uuid.Nil, product.ID)
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*usecase.ProductInput)
		uploads int
		wantErr error
	}{
		{"unknown category", func(in *usecase.ProductInput) { in.Category = "sushi" }, 0, domainerrors.ErrInvalidCategory},
		{"zero price", func(in *usecase.ProductInput) { in.Price = 0 }, 0, domainerrors.ErrInvalidPrice},
		{"sub-cent price", func(in *usecase.ProductInput) { in.Price = 0.001 }, 0, domainerrors.ErrInvalidPrice},
		{"too many images", func(*usecase.ProductInput) {}, 3, domainerrors.ErrTooManyImages},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			input := saladInput()
			tt.mutate(input)

			uploads := make([]usecase.ImageUpload, tt.uploads)
			for i := range uploads {
				uploads[i] = jpegUpload("x.jpg")
			}

			_, err := fx.service.CreateProduct(context.Background(), input, uploads)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCatalogService_CreateProduct_RejectsNonImage(t *testing.T) {
	fx := createTestCatalogService(t)

	fx.storage.EXPECT().
		Save(mock.Anything, "a.jpg", mock.Anything).
		Return(&entity.ProductImage{Key: "products/a.jpg"}, nil)
	fx.storage.EXPECT().Delete(mock.Anything, "products/a.jpg").Return(nil)

	uploads := []usecase.ImageUpload{
		jpegUpload("a.jpg"),
		{Filename: "menu.pdf", ContentType: "application/pdf", Data: []byte("%PDF")},
	}
	_, err := fx.service.CreateProduct(context.Background(), saladInput(), uploads)
	require.ErrorIs(t, err, domainerrors.ErrInvalidImage)
}

func TestCatalogService_CreateProduct_StorageErrors(t *testing.T) {
	t.Run("too large is invalid input", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.storage.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything).Return(nil, service.ErrImageTooLarge)

		_, err := fx.service.CreateProduct(context.Background(), saladInput(), []usecase.ImageUpload{jpegUpload("big.jpg")})
		require.ErrorIs(t, err, domainerrors.ErrInvalidImage)
	})

	t.Run("backend failure", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.storage.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("bucket unreachable"))

		_, err := fx.service.CreateProduct(context.Background(), saladInput(), []usecase.ImageUpload{jpegUpload("a.jpg")})
		require.ErrorIs(t, err, domainerrors.ErrImageUploadFailed)
	})

	t.Run("repository failure discards stored images", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.storage.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything).Return(&entity.ProductImage{Key: "products/a.jpg"}, nil)
		fx.productRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("unique violation"))
		fx.storage.EXPECT().Delete(mock.Anything, "products/a.jpg").Return(nil)

		_, err := fx.service.CreateProduct(context.Background(), saladInput(), []usecase.ImageUpload{jpegUpload("a.jpg")})
		require.Error(t, err)
	})
}

func TestCatalogService_UpdateProduct_ReplacesImages(t *testing.T) {
	fx := createTestCatalogService(t)
	id := uuid.New()
	existing := &entity.Product{
		ID:       id,
		Name:     "Caesar",
		Category: entity.CategorySalads,
		Price:    8.99,
		Stock:    40,
		Images: []entity.ProductImage{
			{Key: "products/keep.jpg"},
			{Key: "products/drop.jpg"},
		},
	}

	fx.productRepo.EXPECT().FindByID(mock.Anything, id).Return(existing, nil)
	fx.storage.EXPECT().Save(mock.Anything, "new.jpg", mock.Anything).Return(&entity.ProductImage{Key: "products/new.jpg"}, nil)
	fx.productRepo.EXPECT().Update(mock.Anything, existing).Return(nil)
	fx.storage.EXPECT().Delete(mock.Anything, "products/drop.jpg").Return(errors.New("already gone"))

	input := saladInput()
	input.KeepImages = []string{"products/keep.jpg"}
	stock := 5
	input.Stock = &stock

	product, err := fx.service.UpdateProduct(context.Background(), id, input, []usecase.ImageUpload{jpegUpload("new.jpg")})
	require.NoError(t, err)
	assert.Equal(t, 9.99, product.Price)
	assert.Equal(t, 5, product.Stock)
	assert.True(t, product.IsLowStock())
	require.Len(t, product.Images, 2)
	assert.Equal(t, "products/keep.jpg", product.Images[0].Key)
	assert.Equal(t, "products/new.jpg", product.Images[1].Key)
}

func TestCatalogService_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	id := uuid.New()
	fx.productRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(context.Background(), id)
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	err = fx.service.DeleteProduct(context.Background(), id)
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_DeleteProduct_RemovesImages(t *testing.T) {
	fx := createTestCatalogService(t)
	id := uuid.New()
	fx.productRepo.EXPECT().
		FindByID(mock.Anything, id).
		Return(&entity.Product{ID: id, Images: []entity.ProductImage{{Key: "products/a.jpg"}, {URL: "https://legacy.example.com/b.jpg"}}}, nil)
	fx.productRepo.EXPECT().Delete(mock.Anything, id).Return(nil)
	fx.storage.EXPECT().Delete(mock.Anything, "products/a.jpg").Return(nil).Once()

	require.NoError(t, fx.service.DeleteProduct(context.Background(), id))
}
