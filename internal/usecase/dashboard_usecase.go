package usecase

import (
	"context"

	"orderbot/internal/domain/entity"
	"orderbot/internal/domain/repository"
)

// ProductOverview summarizes the catalog.
type ProductOverview struct {
	Total     int64 `json:"total"`
	Available int64 `json:"available"`
	LowStock  int64 `json:"lowStock"`
}

// CustomerOverview summarizes the customer base.
type CustomerOverview struct {
	Total          int64 `json:"total"`
	ActiveThisWeek int64 `json:"activeThisWeek"`
	NewThisMonth   int64 `json:"newThisMonth"`
}

// OrderOverview summarizes order volume.
type OrderOverview struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Today     int64 `json:"today"`
	ThisWeek  int64 `json:"thisWeek"`
	ThisMonth int64 `json:"thisMonth"`
}

// RevenueOverview sums revenue, excluding cancelled orders.
type RevenueOverview struct {
	Today     entity.Money `json:"today"`
	ThisWeek  entity.Money `json:"thisWeek"`
	ThisMonth entity.Money `json:"thisMonth"`
	Total     entity.Money `json:"total"`
}

// Dashboard is the admin landing page.
type Dashboard struct {
	Products        ProductOverview              `json:"products"`
	Customers       CustomerOverview             `json:"customers"`
	Orders          OrderOverview                `json:"orders"`
	Revenue         RevenueOverview              `json:"revenue"`
	RecentOrders    []*entity.Order              `json:"recentOrders"`
	SalesLast7Days  []repository.DailySales      `json:"salesLast7Days"`
	TopProducts     []repository.ProductSales    `json:"topProducts"`
	OrdersByStatus  map[entity.OrderStatus]int64 `json:"ordersByStatus"`
	RecentCustomers []*entity.Customer           `json:"recentCustomers"`
}

// DashboardUsecase aggregates shop statistics.
type DashboardUsecase interface {
	GetDashboard(ctx context.Context) (*Dashboard, error)
}
