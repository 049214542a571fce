package usecase

import (
	"context"
	"time"

	"orderbot/internal/domain/entity"
	"orderbot/internal/domain/repository"

	"github.com/google/uuid"
)

// CustomerView is a customer with the aggregates shown in admin listings.
type CustomerView struct {
	*entity.Customer
	TotalOrders   int          `json:"totalOrders"`
	TotalSpent    entity.Money `json:"totalSpent"`
	LastOrderDate *time.Time   `json:"lastOrderDate,omitempty"`
	CartValue     entity.Money `json:"cartValue"`
	CartItems     int          `json:"cartItems"`
}

// CustomerPage is one page of an admin customer listing.
type CustomerPage struct {
	Customers []*CustomerView `json:"customers"`
	Total     int64           `json:"total"`
	Page      int             `json:"page"`
	Limit     int             `json:"limit"`
}

// CustomerDetail is a customer with their orders.
type CustomerDetail struct {
	*CustomerView
	Orders []*entity.Order `json:"orders"`
}

// CustomerUpdateInput carries admin-editable profile fields.
type CustomerUpdateInput struct {
	Name  *string `json:"name" validate:"omitempty,max=100"`
	Email *string `json:"email" validate:"omitempty,email"`
	Notes *string `json:"notes" validate:"omitempty,max=1000"`
}

// CustomerUsecase manages customers for the admin API.
type CustomerUsecase interface {
	ListCustomers(ctx context.Context, filter repository.CustomerFilter) (*CustomerPage, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*CustomerDetail, error)
	UpdateCustomer(ctx context.Context, id uuid.UUID, input *CustomerUpdateInput) (*CustomerView, error)
}
