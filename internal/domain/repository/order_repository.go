package repository

import (
	"context"
	"time"

	"orderbot/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrderID is returned when the human-readable order id is taken.
	ErrDuplicateOrderID = errors.New("order id already exists")
)

// OrderFilter narrows an admin order listing.
type OrderFilter struct {
	Page
	Status    entity.OrderStatus
	City      string
	StartDate *time.Time
	EndDate   *time.Time
	// Search matches order id, customer phone and recipient name.
	Search string
}

// SalesSummary counts orders placed since an instant. Revenue excludes
// cancelled orders.
type SalesSummary struct {
	Orders  int64
	Revenue entity.Money
}

// DailySales is one day of the sales chart.
type DailySales struct {
	Date    string
	Orders  int64
	Revenue entity.Money
}

// ProductSales aggregates ordered quantities by line item name.
type ProductSales struct {
	ProductName string
	Quantity    int64
	Revenue     entity.Money
}

// OrderRepository is the order sink plus the admin queries over it.
type OrderRepository interface {
	// Create persists a new order, returning ErrDuplicateOrderID on an order id clash.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by primary key.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByCustomer lists a customer's orders, newest first.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// List returns one page of orders, newest first, and the total match count.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, int64, error)

	// Update overwrites status, timeline, delivery, payment and notes.
	Update(ctx context.Context, order *entity.Order) error

	// Summarize counts orders and revenue since the given instant. A zero
	// instant covers all orders.
	Summarize(ctx context.Context, since time.Time) (*SalesSummary, error)

	// CountByStatus groups order counts by status.
	CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error)

	// DailySales returns one row per day since the given instant, oldest first.
	DailySales(ctx context.Context, since time.Time) ([]DailySales, error)

	// TopProducts ranks line items by ordered quantity.
	TopProducts(ctx context.Context, limit int) ([]ProductSales, error)
}
