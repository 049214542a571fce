package impl

import (
	"context"
	"fmt"
	"time"

	"orderbot/internal/domain/entity"
	"orderbot/internal/domain/repository"
	"orderbot/internal/usecase"

	"go.uber.org/fx"
)

const (
	recentOrderCount    = 10
	recentCustomerCount = 5
	topProductCount     = 5
	salesChartDays      = 7
)

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CustomerRepo repository.CustomerRepository
	OrderRepo    repository.OrderRepository
}

type dashboardService struct {
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	now          func() time.Time
}

// NewDashboardService creates the admin dashboard aggregator.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		productRepo:  params.ProductRepo,
		customerRepo: params.CustomerRepo,
		orderRepo:    params.OrderRepo,
		now:          time.Now,
	}
}

// dashboardWindows are the period starts, in the server's local time.
type dashboardWindows struct {
	today, week, month time.Time
}

func windowsAt(now time.Time) dashboardWindows {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	return dashboardWindows{
		today: today,
		week:  today.AddDate(0, 0, -int(today.Weekday())),
		month: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
	}
}

func (srv *dashboardService) GetDashboard(ctx context.Context) (*usecase.Dashboard, error) {
	now := srv.now()
	windows := windowsAt(now)
	dashboard := &usecase.Dashboard{}

	productStats, err := srv.productRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load product stats: %w", err)
	}
	dashboard.Products = usecase.ProductOverview{
		Total:     productStats.Total,
		Available: productStats.Available,
		LowStock:  productStats.LowStock,
	}

	customerStats, err := srv.customerRepo.Stats(ctx, now.AddDate(0, 0, -7), windows.month, recentCustomerCount)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer stats: %w", err)
	}
	dashboard.Customers = usecase.CustomerOverview{
		Total:          customerStats.Total,
		ActiveThisWeek: customerStats.ActiveSince,
		NewThisMonth:   customerStats.CreatedSince,
	}
	dashboard.RecentCustomers = customerStats.NewestCustomer

	if err := srv.fillOrderStats(ctx, dashboard, windows); err != nil {
		return nil, err
	}

	recent, _, err := srv.orderRepo.List(ctx, repository.OrderFilter{Page: repository.Page{Page: 1, Limit: recentOrderCount}})
	if err != nil {
		return nil, fmt.Errorf("failed to load recent orders: %w", err)
	}
	dashboard.RecentOrders = recent

	dashboard.SalesLast7Days, err = srv.orderRepo.DailySales(ctx, windows.today.AddDate(0, 0, -(salesChartDays-1)))
	if err != nil {
		return nil, fmt.Errorf("failed to load daily sales: %w", err)
	}

	dashboard.TopProducts, err = srv.orderRepo.TopProducts(ctx, topProductCount)
	if err != nil {
		return nil, fmt.Errorf("failed to load top products: %w", err)
	}

	return dashboard, nil
}

func (srv *dashboardService) fillOrderStats(ctx context.Context, dashboard *usecase.Dashboard, windows dashboardWindows) error {
	byStatus, err := srv.orderRepo.CountByStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to count orders by status: %w", err)
	}
	dashboard.OrdersByStatus = byStatus
	dashboard.Orders.Pending = byStatus[entity.OrderStatusPending]

	periods := []struct {
		since   time.Time
		orders  *int64
		revenue *entity.Money
	}{
		{time.Time{}, &dashboard.Orders.Total, &dashboard.Revenue.Total},
		{windows.today, &dashboard.Orders.Today, &dashboard.Revenue.Today},
		{windows.week, &dashboard.Orders.ThisWeek, &dashboard.Revenue.ThisWeek},
		{windows.month, &dashboard.Orders.ThisMonth, &dashboard.Revenue.ThisMonth},
	}
	for _, period := range periods {
		summary, err := srv.orderRepo.Summarize(ctx, period.since)
		if err != nil {
			return fmt.Errorf("failed to summarize orders: %w", err)
		}
		*period.orders = summary.Orders
		*period.revenue = summary.Revenue
	}

	return nil
}
