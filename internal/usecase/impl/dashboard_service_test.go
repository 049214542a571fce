package impl

import (
	"context"
	"testing"
	"time"

	"orderbot/internal/domain/entity"
	"orderbot/internal/domain/repository"
	mockRepo "orderbot/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWindowsAt(t *testing.T) {
	// Wednesday afternoon.
	windows := windowsAt(time.Date(2026, 5, 6, 15, 4, 5, 0, time.UTC))

	assert.Equal(t, time.Date(2026, 5, 6, 0, 0, 0, 0, time.UTC), windows.today)
	assert.Equal(t, time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC), windows.week)
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), windows.month)
}

func TestDashboardService_GetDashboard(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	now := time.Date(2026, 5, 6, 15, 4, 5, 0, time.UTC)
	srv := &dashboardService{productRepo: productRepo, customerRepo: customerRepo, orderRepo: orderRepo, now: func() time.Time { return now }}

	productRepo.EXPECT().Stats(mock.Anything).Return(&repository.ProductStats{Total: 40, Available: 35, LowStock: 3}, nil)
	customerRepo.EXPECT().
		Stats(mock.Anything, now.AddDate(0, 0, -7), time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), recentCustomerCount).
		Return(&repository.CustomerStats{Total: 120, ActiveSince: 30, CreatedSince: 12}, nil)
	orderRepo.EXPECT().CountByStatus(mock.Anything).Return(map[entity.OrderStatus]int64{entity.OrderStatusPending: 4, entity.OrderStatusDelivered: 90}, nil)
	orderRepo.EXPECT().Summarize(mock.Anything, time.Time{}).Return(&repository.SalesSummary{Orders: 100, Revenue: 250000}, nil)
	orderRepo.EXPECT().Summarize(mock.Anything, time.Date(2026, 5, 6, 0, 0, 0, 0, time.UTC)).Return(&repository.SalesSummary{Orders: 5, Revenue: 9000}, nil)
	orderRepo.EXPECT().Summarize(mock.Anything, time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC)).Return(&repository.SalesSummary{Orders: 20, Revenue: 40000}, nil)
	orderRepo.EXPECT().Summarize(mock.Anything, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)).Return(&repository.SalesSummary{Orders: 25, Revenue: 52000}, nil)
	orderRepo.EXPECT().
		List(mock.Anything, repository.OrderFilter{Page: repository.Page{Page: 1, Limit: recentOrderCount}}).
		Return([]*entity.Order{{OrderID: "TP9"}}, int64(100), nil)
	orderRepo.EXPECT().
		DailySales(mock.Anything, time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)).
		Return([]repository.DailySales{{Date: "2026-05-06", Orders: 5, Revenue: 9000}}, nil)
	orderRepo.EXPECT().TopProducts(mock.Anything, topProductCount).Return([]repository.ProductSales{{ProductName: "Pepperoni", Quantity: 42}}, nil)

	dashboard, err := srv.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), dashboard.Products.LowStock)
	assert.Equal(t, int64(30), dashboard.Customers.ActiveThisWeek)
	assert.Equal(t, int64(4), dashboard.Orders.Pending)
	assert.Equal(t, int64(5), dashboard.Orders.Today)
	assert.Equal(t, int64(25), dashboard.Orders.ThisMonth)
	assert.Equal(t, entity.Money(40000), dashboard.Revenue.ThisWeek)
	assert.Equal(t, entity.Money(250000), dashboard.Revenue.Total)
	assert.Len(t, dashboard.RecentOrders, 1)
	assert.Len(t, dashboard.SalesLast7Days, 1)
	assert.Equal(t, "Pepperoni", dashboard.TopProducts[0].ProductName)
}

func TestDashboardService_GetDashboard_Error(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	productRepo.EXPECT().Stats(mock.Anything).Return(nil, errors.New("timeout"))

	srv := NewDashboardService(DashboardServiceParams{ProductRepo: productRepo})
	_, err := srv.GetDashboard(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product stats")
}
