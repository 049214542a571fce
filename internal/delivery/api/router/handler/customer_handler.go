package handler

import (
	"net/http"

	"orderbot/internal/delivery/api/response"
	"orderbot/internal/domain/repository"
	"orderbot/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
}

// CustomerHandler serves the admin customer endpoints.
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{customerUC: params.CustomerUC}
}

// ListCustomers handles GET /customers.
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return queryError(err)
	}

	result, err := h.customerUC.ListCustomers(c.Request().Context(), repository.CustomerFilter{
		Page:      page,
		Search:    c.QueryParam("search"),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: repository.SortOrder(c.QueryParam("sortOrder")),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, result.Customers, response.NewPagination(result.Page, result.Limit, result.Total))
}

// GetCustomer handles GET /customers/:id.
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	detail, err := h.customerUC.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// UpdateCustomer handles PUT /customers/:id.
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input usecase.CustomerUpdateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid customer input")
	}
	if err := c.Validate(&input); err != nil {
		return response.ValidationError(c, err)
	}

	view, err := h.customerUC.UpdateCustomer(c.Request().Context(), id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}
