// Package entity holds the domain objects of the ordering bot: customers, carts, orders and the catalog.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a WhatsApp user, identified by phone number.
type Customer struct {
	ID                uuid.UUID           `json:"id"`
	PhoneNumber       string              `json:"phoneNumber"`
	Name              string              `json:"name,omitempty"`
	Email             string              `json:"email,omitempty"`
	Notes             string              `json:"notes,omitempty"`
	ConversationState ConversationState   `json:"conversationState"`
	CurrentContext    ConversationContext `json:"-"`
	Cart              Cart                `json:"cart"`
	OrderHistory      []OrderSummary      `json:"orderHistory"`
	Preferences       map[string]string   `json:"preferences,omitempty"`
	LastInteractionAt time.Time           `json:"lastInteractionAt"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

// OrderSummary is an append-only record of a finalized order on the customer.
type OrderSummary struct {
	OrderID string      `json:"orderId"`
	Date    time.Time   `json:"date"`
	Amount  Money       `json:"amount"`
	Status  OrderStatus `json:"status"`
}

// NewCustomer builds the first-contact record: main menu, empty context and cart.
func NewCustomer(phoneNumber string, now time.Time) *Customer {
	return &Customer{
		ID:                uuid.New(),
		PhoneNumber:       phoneNumber,
		ConversationState: StateMainMenu,
		CurrentContext:    EmptyContext{},
		Cart:              Cart{Items: []LineItem{}},
		OrderHistory:      []OrderSummary{},
		LastInteractionAt: now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// MoveTo sets state and replaces the whole context.
func (c *Customer) MoveTo(state ConversationState, ctx ConversationContext) {
	if ctx == nil {
		ctx = EmptyContext{}
	}
	c.ConversationState = state
	c.CurrentContext = ctx
}

// Clone returns a deep copy of the mutable parts of the customer.
func (c *Customer) Clone() *Customer {
	cloned := *c
	cloned.Cart = c.Cart.Clone()
	cloned.OrderHistory = make([]OrderSummary, len(c.OrderHistory))
	copy(cloned.OrderHistory, c.OrderHistory)
	if c.Preferences != nil {
		cloned.Preferences = make(map[string]string, len(c.Preferences))
		for k, v := range c.Preferences {
			cloned.Preferences[k] = v
		}
	}

	return &cloned
}

// TotalSpent sums order history amounts, excluding cancelled orders.
func (c *Customer) TotalSpent() Money {
	var total Money
	for _, summary := range c.OrderHistory {
		if summary.Status == OrderStatusCancelled {
			continue
		}
		total += summary.Amount
	}

	return total
}

// LastOrderDate returns the most recent order date, or nil without orders.
func (c *Customer) LastOrderDate() *time.Time {
	if len(c.OrderHistory) == 0 {
		return nil
	}
	last := c.OrderHistory[0].Date
	for _, summary := range c.OrderHistory[1:] {
		if summary.Date.After(last) {
			last = summary.Date
		}
	}

	return &last
}
