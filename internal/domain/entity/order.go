package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfilment stage of an order.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// AllOrderStatuses lists statuses in lifecycle order, cancelled last.
func AllOrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusPreparing,
		OrderStatusOutForDelivery,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

var nextOrderStatus = map[OrderStatus]OrderStatus{
	OrderStatusPending:        OrderStatusConfirmed,
	OrderStatusConfirmed:      OrderStatusPreparing,
	OrderStatusPreparing:      OrderStatusOutForDelivery,
	OrderStatusOutForDelivery: OrderStatusDelivered,
}

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the known values.
func (s OrderStatus) IsValid() bool {
	for _, status := range AllOrderStatuses() {
		if s == status {
			return true
		}
	}

	return false
}

// IsTerminal reports whether no further transition is allowed.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo allows the next forward step, or cancellation from any
// non-terminal status.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() || !next.IsValid() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}

	return nextOrderStatus[s] == next
}

// PaymentMethod is how the customer pays.
type PaymentMethod string

const (
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentMethodCard           PaymentMethod = "card"
	PaymentMethodBankTransfer   PaymentMethod = "bank_transfer"
)

// IsValid checks if the payment method is one of the known values.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCashOnDelivery, PaymentMethodCard, PaymentMethodBankTransfer:
		return true
	default:
		return false
	}
}

// PaymentStatus tracks settlement of an order.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// IsValid checks if the payment status is one of the known values.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	default:
		return false
	}
}

// PaymentInfo describes payment for an order.
type PaymentInfo struct {
	Method        PaymentMethod `json:"method"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transactionId,omitempty"`
}

// DeliveryInfo is where and when an order goes. Only Address comes from the
// customer; the rest are shop defaults until an admin edits them.
type DeliveryInfo struct {
	RecipientName       string    `json:"recipientName"`
	RecipientPhone      string    `json:"recipientPhone"`
	Address             string    `json:"address"`
	City                string    `json:"city"`
	Area                string    `json:"area,omitempty"`
	DeliveryDate        time.Time `json:"deliveryDate"`
	DeliveryTime        string    `json:"deliveryTime"`
	DeliveryFee         Money     `json:"deliveryFee"`
	SpecialInstructions string    `json:"specialInstructions,omitempty"`
}

// TimelineEntry records one status change.
type TimelineEntry struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	Notes     string      `json:"notes,omitempty"`
}

// Order is a finalized checkout.
type Order struct {
	ID            uuid.UUID       `json:"id"`
	OrderID       string          `json:"orderId"`
	CustomerID    uuid.UUID       `json:"customerId"`
	CustomerPhone string          `json:"customerPhone"`
	Items         []LineItem      `json:"items"`
	TotalAmount   Money           `json:"totalAmount"`
	DeliveryInfo  DeliveryInfo    `json:"deliveryInfo"`
	Status        OrderStatus     `json:"status"`
	PaymentInfo   PaymentInfo     `json:"paymentInfo"`
	Timeline      []TimelineEntry `json:"timeline"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Subtotal is the order total without the delivery fee.
func (o *Order) Subtotal() Money {
	return o.TotalAmount - o.DeliveryInfo.DeliveryFee
}

// ItemCount is the number of units ordered.
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}

	return count
}

// UpdateStatus moves the order along its lifecycle and appends a timeline entry.
func (o *Order) UpdateStatus(next OrderStatus, notes string, now time.Time) error {
	if !o.Status.CanTransitionTo(next) {
		return fmt.Errorf("order %s cannot move from %s to %s", o.OrderID, o.Status, next)
	}
	o.Status = next
	o.Timeline = append(o.Timeline, TimelineEntry{Status: next, Timestamp: now, Notes: notes})
	o.UpdatedAt = now

	return nil
}
