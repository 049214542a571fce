package usecase

import (
	"context"

	"orderbot/internal/domain/entity"
)

// CheckoutUsecase turns a customer's cart into an order.
type CheckoutUsecase interface {
	// FinalizeOrder creates the order, appends it to the customer's history and
	// clears the cart in one transaction. The customer is updated in place only
	// when the transaction commits.
	FinalizeOrder(ctx context.Context, customer *entity.Customer, address string) (*entity.Order, error)
}
