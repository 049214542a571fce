package impl

import (
	"context"
	"testing"
	"time"

	"orderbot/internal/domain/entity"
	domainerrors "orderbot/internal/domain/errors"
	"orderbot/internal/domain/repository"
	mockRepo "orderbot/internal/mocks/repository"
	"orderbot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type customerServiceFixtures struct {
	service      usecase.CustomerUsecase
	customerRepo *mockRepo.MockCustomerRepository
	orderRepo    *mockRepo.MockOrderRepository
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	return customerServiceFixtures{
		service: NewCustomerService(CustomerServiceParams{
			CustomerRepo: customerRepo,
			OrderRepo:    orderRepo,
			Logger:       newDiscardLogger(),
		}),
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
	}
}

func customerWithHistory() *entity.Customer {
	customer := entity.NewCustomer(testSender, time.Now())
	customer.Cart.Add(entity.LineItem{ProductName: "Coke", Price: 299, Quantity: 2})
	customer.OrderHistory = []entity.OrderSummary{
		{OrderID: "TP1", Date: time.Now().Add(-48 * time.Hour), Amount: 2500, Status: entity.OrderStatusDelivered},
		{OrderID: "TP2", Date: time.Now().Add(-time.Hour), Amount: 1000, Status: entity.OrderStatusCancelled},
	}

	return customer
}

func TestCustomerService_ListCustomers_NormalizesFilter(t *testing.T) {
	fx := createTestCustomerService(t)

	fx.customerRepo.EXPECT().
		List(mock.Anything, repository.CustomerFilter{
			Page:      repository.Page{Page: 2, Limit: defaultCustomerPageLimit},
			Search:    "marge",
			SortBy:    "createdAt",
			SortOrder: repository.SortDesc,
		}).
		Return([]*entity.Customer{customerWithHistory()}, int64(21), nil)

	page, err := fx.service.ListCustomers(context.Background(), repository.CustomerFilter{
		Page:      repository.Page{Page: 2},
		Search:    "  marge ",
		SortBy:    "password",
		SortOrder: "sideways",
	})
	require.NoError(t, err)
	require.Len(t, page.Customers, 1)

	view := page.Customers[0]
	assert.Equal(t, 2, view.TotalOrders)
	assert.Equal(t, entity.Money(2500), view.TotalSpent)
	assert.Equal(t, entity.Money(598), view.CartValue)
	assert.Equal(t, 2, view.CartItems)
	require.NotNil(t, view.LastOrderDate)
}

func TestCustomerService_GetCustomer(t *testing.T) {
	fx := createTestCustomerService(t)
	customer := customerWithHistory()

	fx.customerRepo.EXPECT().FindByID(mock.Anything, customer.ID).Return(customer, nil)
	fx.orderRepo.EXPECT().FindByCustomer(mock.Anything, customer.ID).Return([]*entity.Order{{OrderID: "TP2"}, {OrderID: "TP1"}}, nil)

	detail, err := fx.service.GetCustomer(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Same(t, customer, detail.Customer)
	assert.Len(t, detail.Orders, 2)
}

func TestCustomerService_UpdateCustomer(t *testing.T) {
	fx := createTestCustomerService(t)
	customer := customerWithHistory()

	fx.customerRepo.EXPECT().FindByID(mock.Anything, customer.ID).Return(customer, nil)
	fx.customerRepo.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(c *entity.Customer) bool {
			return c.Name == "Marge Simpson" && c.Email == "marge@example.com"
		})).
		Return(nil)

	name, email := " Marge Simpson ", " Marge@Example.com"
	view, err := fx.service.UpdateCustomer(context.Background(), customer.ID, &usecase.CustomerUpdateInput{Name: &name, Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "Marge Simpson", view.Name)
	assert.Empty(t, view.Notes)
}

func TestCustomerService_Errors(t *testing.T) {
	fx := createTestCustomerService(t)
	missing, existing := uuid.New(), customerWithHistory()

	fx.customerRepo.EXPECT().FindByID(mock.Anything, missing).Return(nil, repository.ErrCustomerNotFound)
	fx.customerRepo.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)
	fx.customerRepo.EXPECT().Save(mock.Anything, existing).Return(errors.New("disk full"))

	_, err := fx.service.GetCustomer(context.Background(), missing)
	require.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)

	notes := "prefers extra napkins"
	_, err = fx.service.UpdateCustomer(context.Background(), existing.ID, &usecase.CustomerUpdateInput{Notes: &notes})
	require.ErrorIs(t, err, domainerrors.ErrCustomerUpdateFailed)
}
