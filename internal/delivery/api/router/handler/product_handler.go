package handler

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"orderbot/config"
	"orderbot/internal/delivery/api/response"
	"orderbot/internal/domain/entity"
	domainerrors "orderbot/internal/domain/errors"
	"orderbot/internal/domain/repository"
	"orderbot/internal/errors"
	"orderbot/internal/usecase"
	"orderbot/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const imagesField = "images"

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Config    *config.Config
}

// ProductHandler serves the admin catalog endpoints.
type ProductHandler struct {
	catalogUC     usecase.CatalogUsecase
	maxImages     int
	maxImageBytes int64
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		catalogUC:     params.CatalogUC,
		maxImages:     params.Config.Storage.MaxImages,
		maxImageBytes: params.Config.Storage.MaxImageBytes,
	}
}

// ListProducts handles GET /products.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return queryError(err)
	}
	availability, err := optionalBool(c, "availability")
	if err != nil {
		return queryError(err)
	}
	featured, err := optionalBool(c, "featured")
	if err != nil {
		return queryError(err)
	}

	result, err := h.catalogUC.ListProducts(c.Request().Context(), repository.ProductFilter{
		Page:         page,
		Category:     entity.Category(c.QueryParam("category")),
		Availability: availability,
		Featured:     featured,
		Search:       c.QueryParam("search"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, result.Products, response.NewPagination(result.Page, result.Limit, result.Total))
}

// GetProduct handles GET /products/:id.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// CreateProduct handles POST /products with a JSON or multipart body.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	input, uploads, err := h.bindProduct(c)
	if err != nil {
		return err
	}
	if err := c.Validate(input); err != nil {
		return response.ValidationError(c, err)
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), input, uploads)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// UpdateProduct handles PUT /products/:id. New uploads are appended to the
// images listed in existingImages.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	input, uploads, err := h.bindProduct(c)
	if err != nil {
		return err
	}
	if err := c.Validate(input); err != nil {
		return response.ValidationError(c, err)
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), id, input, uploads)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/:id.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

func (h *ProductHandler) bindProduct(c echo.Context) (*usecase.ProductInput, []usecase.ImageUpload, error) {
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		input := new(usecase.ProductInput)
		if err := c.Bind(input); err != nil {
			return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid product input")
		}

		return input, nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid multipart form")
	}

	input, err := productFromForm(form.Value)
	if err != nil {
		return nil, nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	uploads, err := h.readUploads(form.File[imagesField])
	if err != nil {
		return nil, nil, err
	}

	return input, uploads, nil
}

func (h *ProductHandler) readUploads(files []*multipart.FileHeader) ([]usecase.ImageUpload, error) {
	if h.maxImages > 0 && len(files) > h.maxImages {
		return nil, domainerrors.ErrTooManyImages
	}

	uploads := make([]usecase.ImageUpload, 0, len(files))
	for _, fh := range files {
		if h.maxImageBytes > 0 && fh.Size > h.maxImageBytes {
			return nil, domainerrors.ErrInvalidImage.WithDetails(fh.Filename + " is larger than " + util.FormatBytes(h.maxImageBytes))
		}

		data, err := readFile(fh)
		if err != nil {
			return nil, err
		}

		uploads = append(uploads, usecase.ImageUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(echo.HeaderContentType),
			Data:        data,
		})
	}

	return uploads, nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open upload %s", fh.Filename)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read upload %s", fh.Filename)
	}

	return data, nil
}

// productFromForm maps multipart fields onto a ProductInput. specifications,
// tags and existingImages arrive as JSON strings; tags may also be a
// comma-separated list.
func productFromForm(values map[string][]string) (*usecase.ProductInput, error) {
	get := func(key string) string {
		if v := values[key]; len(v) > 0 {
			return strings.TrimSpace(v[0])
		}

		return ""
	}

	input := &usecase.ProductInput{
		Name:        get("name"),
		Category:    entity.Category(get("category")),
		Subcategory: get("subcategory"),
		Description: get("description"),
		MenuSection: entity.MenuSection(get("menuSection")),
	}

	var err error
	if input.Price, err = parseFloatField("price", get("price")); err != nil {
		return nil, err
	}
	if input.OriginalPrice, err = parseFloatField("originalPrice", get("originalPrice")); err != nil {
		return nil, err
	}
	if raw := get("availability"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.Errorf("availability must be true or false")
		}
		input.Availability = &v
	}
	if raw := get("stock"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.Errorf("stock must be an integer")
		}
		input.Stock = &v
	}
	input.Customizable, _ = strconv.ParseBool(get("customizable"))
	input.Featured, _ = strconv.ParseBool(get("featured"))

	if raw := get("specifications"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.Specifications); err != nil {
			return nil, errors.Errorf("specifications must be a JSON object")
		}
	}
	if raw := get("tags"); raw != "" {
		input.Tags = parseTags(raw)
	}
	if _, ok := values["existingImages"]; ok {
		input.KeepImages = []string{}
		if raw := get("existingImages"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &input.KeepImages); err != nil {
				return nil, errors.Errorf("existingImages must be a JSON array of keys")
			}
		}
	}

	return input, nil
}

func parseFloatField(name, raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Errorf("%s must be a number", name)
	}

	return v, nil
}

func parseTags(raw string) []string {
	var tags []string
	if strings.HasPrefix(raw, "[") && json.Unmarshal([]byte(raw), &tags) == nil {
		return tags
	}

	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}
