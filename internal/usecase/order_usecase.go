package usecase

import (
	"context"
	"time"

	"orderbot/internal/domain/entity"
	"orderbot/internal/domain/repository"

	"github.com/google/uuid"
)

// OrderPage is one page of an admin order listing.
type OrderPage struct {
	Orders []*entity.Order `json:"orders"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

// OrderUpdateInput edits delivery, payment and notes. Nil fields are left alone.
type OrderUpdateInput struct {
	RecipientName       *string               `json:"recipientName"`
	RecipientPhone      *string               `json:"recipientPhone"`
	Address             *string               `json:"address"`
	City                *string               `json:"city"`
	Area                *string               `json:"area"`
	DeliveryDate        *time.Time            `json:"deliveryDate"`
	DeliveryTime        *string               `json:"deliveryTime"`
	SpecialInstructions *string               `json:"specialInstructions"`
	PaymentMethod       *entity.PaymentMethod `json:"paymentMethod"`
	PaymentStatus       *entity.PaymentStatus `json:"paymentStatus"`
	TransactionID       *string               `json:"transactionId"`
	Notes               *string               `json:"notes"`
}

// OrderUsecase manages orders for the admin API.
type OrderUsecase interface {
	ListOrders(ctx context.Context, filter repository.OrderFilter) (*OrderPage, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// UpdateOrderStatus applies a lifecycle transition and publishes an
	// order.status_changed event.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, notes string) (*entity.Order, error)

	UpdateOrder(ctx context.Context, id uuid.UUID, input *OrderUpdateInput) (*entity.Order, error)

	// RenderReceipt returns the order and its PDF receipt.
	RenderReceipt(ctx context.Context, id uuid.UUID) (*entity.Order, []byte, error)
}
