package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"orderbot/config"
	"orderbot/internal/domain/entity"
	"orderbot/internal/domain/repository"
	mockUsecase "orderbot/internal/mocks/usecase"
	"orderbot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productHandlerFixtures struct {
	echo      *echo.Echo
	catalogUC *mockUsecase.MockCatalogUsecase
}

func createTestProductHandler(t *testing.T) productHandlerFixtures {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	h := NewProductHandler(ProductHandlerParams{
		CatalogUC: catalogUC,
		Config:    &config.Config{Storage: &config.StorageConfig{MaxImages: 2, MaxImageBytes: 1 << 10}},
	})

	e := newTestEcho()
	products := e.Group("/api/admin/products")
	products.GET("", h.ListProducts)
	products.POST("", h.CreateProduct)
	products.PUT("/:id", h.UpdateProduct)
	products.DELETE("/:id", h.DeleteProduct)

	return productHandlerFixtures{echo: e, catalogUC: catalogUC}
}

type formFile struct {
	name        string
	contentType string
	data        []byte
}

func multipartBody(t *testing.T, fields map[string]string, files ...formFile) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="images"; filename="`+f.name+`"`)
		header.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func (f productHandlerFixtures) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestProductHandler_CreateProduct_JSON(t *testing.T) {
	fx := createTestProductHandler(t)

	fx.catalogUC.EXPECT().
		CreateProduct(mock.Anything, mock.MatchedBy(func(in *usecase.ProductInput) bool {
			return in.Name == "Margherita" && in.Category == entity.CategoryPizzas && in.Price == 12.99
		}), []usecase.ImageUpload(nil)).
		Return(&entity.Product{ID: uuid.New(), Name: "Margherita"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/products",
		strings.NewReader(`{"name":"Margherita","category":"pizzas","description":"Tomato, mozzarella, basil","price":12.99}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := fx.serve(req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestProductHandler_CreateProduct_ValidationFails(t *testing.T) {
	fx := createTestProductHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/products",
		strings.NewReader(`{"category":"pizzas","description":"no name","price":0}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := fx.serve(req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	errInfo := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", errInfo.Code)
	assert.Contains(t, errInfo.Details, "name")
	assert.Contains(t, errInfo.Details, "price")
}

func TestProductHandler_CreateProduct_Multipart(t *testing.T) {
	fx := createTestProductHandler(t)

	var got *usecase.ProductInput
	var uploads []usecase.ImageUpload
	fx.catalogUC.EXPECT().
		CreateProduct(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, in *usecase.ProductInput, images []usecase.ImageUpload) {
			got, uploads = in, images
		}).
		Return(&entity.Product{ID: uuid.New()}, nil)

	body, contentType := multipartBody(t, map[string]string{
		"name":           "Penne Arrabbiata",
		"category":       "pasta",
		"description":    "Spicy tomato sauce",
		"price":          "12.99",
		"stock":          "7",
		"availability":   "false",
		"featured":       "true",
		"tags":           "spicy, vegetarian ,",
		"specifications": `{"spiceLevel":"hot","servings":"1"}`,
	}, formFile{name: "penne.jpg", contentType: "image/jpeg", data: []byte{0xff, 0xd8, 0xff}})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", body)
	req.Header.Set(echo.HeaderContentType, contentType)

	rec := fx.serve(req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	require.NotNil(t, got)
	assert.Equal(t, entity.CategoryPasta, got.Category)
	assert.Equal(t, 12.99, got.Price)
	require.NotNil(t, got.Stock)
	assert.Equal(t, 7, *got.Stock)
	require.NotNil(t, got.Availability)
	assert.False(t, *got.Availability)
	assert.True(t, got.Featured)
	assert.Equal(t, []string{"spicy", "vegetarian"}, got.Tags)
	assert.Equal(t, "hot", got.Specifications.SpiceLevel)
	assert.Nil(t, got.KeepImages)

	require.Len(t, uploads, 1)
	assert.Equal(t, "penne.jpg", uploads[0].Filename)
	assert.Equal(t, "image/jpeg", uploads[0].ContentType)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff}, uploads[0].Data)
}

func TestProductHandler_UpdateProduct_ExistingImages(t *testing.T) {
	fx := createTestProductHandler(t)
	id := uuid.New()

	fx.catalogUC.EXPECT().
		UpdateProduct(mock.Anything, id, mock.MatchedBy(func(in *usecase.ProductInput) bool {
			return len(in.KeepImages) == 1 && in.KeepImages[0] == "products/a.jpg"
		}), mock.Anything).
		Return(&entity.Product{ID: id}, nil)

	body, contentType := multipartBody(t, map[string]string{
		"name":           "Penne",
		"category":       "pasta",
		"description":    "Spicy",
		"price":          "11.50",
		"existingImages": `["products/a.jpg"]`,
	})
	req := httptest.NewRequest(http.MethodPut, "/api/admin/products/"+id.String(), body)
	req.Header.Set(echo.HeaderContentType, contentType)

	rec := fx.serve(req)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestProductHandler_Multipart_Rejections(t *testing.T) {
	fields := map[string]string{"name": "Penne", "category": "pasta", "description": "Spicy", "price": "11.50"}
	jpeg := formFile{name: "a.jpg", contentType: "image/jpeg", data: []byte{0xff}}

	tests := []struct {
		name     string
		fields   map[string]string
		files    []formFile
		wantCode string
	}{
		{"too many images", fields, []formFile{jpeg, jpeg, jpeg}, "TOO_MANY_IMAGES"},
		{"image too large", fields, []formFile{{name: "big.jpg", contentType: "image/jpeg", data: bytes.Repeat([]byte{1}, 2<<10)}}, "INVALID_IMAGE"},
		{"bad price", map[string]string{"name": "Penne", "category": "pasta", "description": "Spicy", "price": "cheap"}, nil, "VALIDATION_FAILED"},
		{"bad specifications", map[string]string{"name": "Penne", "category": "pasta", "description": "Spicy", "price": "1", "specifications": "hot"}, nil, "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductHandler(t)
			body, contentType := multipartBody(t, tt.fields, tt.files...)
			req := httptest.NewRequest(http.MethodPost, "/api/admin/products", body)
			req.Header.Set(echo.HeaderContentType, contentType)

			rec := fx.serve(req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestProductHandler_ListProducts_Filters(t *testing.T) {
	fx := createTestProductHandler(t)

	fx.catalogUC.EXPECT().
		ListProducts(mock.Anything, mock.MatchedBy(func(f repository.ProductFilter) bool {
			return f.Category == entity.CategorySalads && f.Availability != nil && *f.Availability && f.Featured == nil
		})).
		Return(&usecase.ProductPage{Page: 1, Limit: 50}, nil)

	rec := fx.serve(httptest.NewRequest(http.MethodGet, "/api/admin/products?category=salads&availability=true", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = fx.serve(httptest.NewRequest(http.MethodGet, "/api/admin/products?featured=maybe", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"spicy", "vegan"}, parseTags(`["spicy","vegan"]`))
	assert.Equal(t, []string{"spicy", "vegan"}, parseTags("spicy, vegan"))
	assert.Equal(t, []string{"[broken"}, parseTags("[broken"))
	assert.Nil(t, parseTags(" , "))
}
