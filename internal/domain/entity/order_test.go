package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusConfirmed))
	assert.True(t, OrderStatusOutForDelivery.CanTransitionTo(OrderStatusDelivered))
	assert.True(t, OrderStatusPreparing.CanTransitionTo(OrderStatusCancelled))

	assert.False(t, OrderStatusPending.CanTransitionTo(OrderStatusDelivered), "no skipping steps")
	assert.False(t, OrderStatusConfirmed.CanTransitionTo(OrderStatusPending), "no going back")
	assert.False(t, OrderStatusDelivered.CanTransitionTo(OrderStatusCancelled), "terminal")
	assert.False(t, OrderStatusCancelled.CanTransitionTo(OrderStatusConfirmed), "terminal")
	assert.False(t, OrderStatusPending.CanTransitionTo("shipped"))
}

func TestOrder_UpdateStatusAppendsTimeline(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	order := &Order{OrderID: "TP1", Status: OrderStatusPending}

	require.NoError(t, order.UpdateStatus(OrderStatusConfirmed, "kitchen accepted", now))
	assert.Equal(t, OrderStatusConfirmed, order.Status)
	require.Len(t, order.Timeline, 1)
	assert.Equal(t, "kitchen accepted", order.Timeline[0].Notes)
	assert.Equal(t, now, order.UpdatedAt)

	require.Error(t, order.UpdateStatus(OrderStatusDelivered, "", now))
	assert.Equal(t, OrderStatusConfirmed, order.Status)
	assert.Len(t, order.Timeline, 1)
}

func TestOrder_SubtotalAndItemCount(t *testing.T) {
	order := &Order{
		Items:        []LineItem{{Price: 1299, Quantity: 2}, {Price: 299, Quantity: 1}},
		TotalAmount:  3196,
		DeliveryInfo: DeliveryInfo{DeliveryFee: 299},
	}

	assert.Equal(t, Money(2897), order.Subtotal())
	assert.Equal(t, 3, order.ItemCount())
}

func TestCustomer_HistoryAggregates(t *testing.T) {
	now := time.Now()
	customer := NewCustomer("15551234567", now)
	assert.Nil(t, customer.LastOrderDate())

	customer.OrderHistory = []OrderSummary{
		{OrderID: "a", Date: now.Add(-time.Hour), Amount: 1000, Status: OrderStatusDelivered},
		{OrderID: "b", Date: now, Amount: 500, Status: OrderStatusCancelled},
	}

	assert.Equal(t, Money(1000), customer.TotalSpent())
	require.NotNil(t, customer.LastOrderDate())
	assert.Equal(t, now, *customer.LastOrderDate())
}
