package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"orderbot/internal/domain/entity"
	domainerrors "orderbot/internal/domain/errors"
	"orderbot/internal/domain/repository"
	"orderbot/internal/errors"
	"orderbot/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultCustomerPageLimit = 20

// customerSortColumns whitelists sortable fields.
var customerSortColumns = map[string]struct{}{
	"createdAt":         {},
	"lastInteractionAt": {},
	"name":              {},
	"phoneNumber":       {},
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	OrderRepo    repository.OrderRepository
	Logger       *slog.Logger
}

type customerService struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	logger       *slog.Logger
}

// NewCustomerService creates the admin customer service.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
		orderRepo:    params.OrderRepo,
		logger:       params.Logger,
	}
}

func newCustomerView(customer *entity.Customer) *usecase.CustomerView {
	return &usecase.CustomerView{
		Customer:      customer,
		TotalOrders:   len(customer.OrderHistory),
		TotalSpent:    customer.TotalSpent(),
		LastOrderDate: customer.LastOrderDate(),
		CartValue:     customer.Cart.TotalAmount,
		CartItems:     customer.Cart.ItemCount(),
	}
}

func (srv *customerService) ListCustomers(ctx context.Context, filter repository.CustomerFilter) (*usecase.CustomerPage, error) {
	filter.Page = normalizePage(filter.Page, defaultCustomerPageLimit)
	if _, ok := customerSortColumns[filter.SortBy]; !ok {
		filter.SortBy = "createdAt"
	}
	if filter.SortOrder != repository.SortAsc {
		filter.SortOrder = repository.SortDesc
	}
	filter.Search = strings.TrimSpace(filter.Search)

	customers, total, err := srv.customerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	views := make([]*usecase.CustomerView, 0, len(customers))
	for _, customer := range customers {
		views = append(views, newCustomerView(customer))
	}

	return &usecase.CustomerPage{
		Customers: views,
		Total:     total,
		Page:      filter.Page.Page,
		Limit:     filter.Page.Limit,
	}, nil
}

func (srv *customerService) findCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return customer, nil
}

func (srv *customerService) GetCustomer(ctx context.Context, id uuid.UUID) (*usecase.CustomerDetail, error) {
	customer, err := srv.findCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.FindByCustomer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer orders: %w", err)
	}

	return &usecase.CustomerDetail{
		CustomerView: newCustomerView(customer),
		Orders:       orders,
	}, nil
}

func (srv *customerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *usecase.CustomerUpdateInput) (*usecase.CustomerView, error) {
	customer, err := srv.findCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		customer.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		customer.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Notes != nil {
		customer.Notes = *input.Notes
	}
	customer.UpdatedAt = time.Now()

	if err := srv.customerRepo.Save(ctx, customer); err != nil {
		return nil, domainerrors.ErrCustomerUpdateFailed.WithDetails(err.Error())
	}

	return newCustomerView(customer), nil
}
