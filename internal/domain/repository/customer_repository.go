// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"orderbot/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for customer persistence.
var (
	// ErrCustomerNotFound is returned when no customer matches the lookup.
	ErrCustomerNotFound = errors.New("customer not found")
)

// SortOrder is the direction of a list sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Page is a 1-based page request.
type Page struct {
	Page  int
	Limit int
}

// Offset is the number of rows skipped before the page.
func (p Page) Offset() int {
	if p.Page < 1 {
		return 0
	}

	return (p.Page - 1) * p.Limit
}

// CustomerFilter narrows an admin customer listing.
type CustomerFilter struct {
	Page
	// Search matches name, phone number or email, case-insensitively.
	Search    string
	SortBy    string
	SortOrder SortOrder
}

// CustomerStats is the dashboard view of the customer base.
type CustomerStats struct {
	Total          int64
	ActiveSince    int64
	CreatedSince   int64
	NewestCustomer []*entity.Customer
}

// CustomerRepository stores per-customer conversation state, cart and history.
type CustomerRepository interface {
	// FindByPhone returns ErrCustomerNotFound for a sender never seen before.
	FindByPhone(ctx context.Context, phoneNumber string) (*entity.Customer, error)

	// FindByID retrieves a customer by primary key.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// Save inserts or fully overwrites the customer, keyed by phone number.
	Save(ctx context.Context, customer *entity.Customer) error

	// List returns one page of customers and the total match count.
	List(ctx context.Context, filter CustomerFilter) ([]*entity.Customer, int64, error)

	// Stats counts customers active and created since the given instants and
	// returns the newest few.
	Stats(ctx context.Context, activeSince, createdSince time.Time, newest int) (*CustomerStats, error)
}
