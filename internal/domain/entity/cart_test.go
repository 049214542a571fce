package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeDeliveryFee(t *testing.T) {
	tests := []struct {
		name  string
		total Money
		want  Money
	}{
		{"empty cart", 0, StandardDeliveryFee},
		{"just under threshold", 2499, 299},
		{"at threshold", 2500, 0},
		{"above threshold", 4000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeDeliveryFee(tt.total))
		})
	}
}

func TestCart_TotalTracksItemSubtotals(t *testing.T) {
	var cart Cart
	cart.Add(LineItem{ProductName: "Margherita - Small (10\")", Price: 1299, Quantity: 1})
	cart.Add(LineItem{ProductName: "Coke", Price: 299, Quantity: 2})
	cart.Add(LineItem{ProductName: "Coke", Price: 299})

	assert.Len(t, cart.Items, 3, "repeated products stay separate lines")
	assert.Equal(t, 1, cart.Items[2].Quantity)
	assert.Equal(t, cart.Subtotal(), cart.TotalAmount)
	assert.Equal(t, Money(2196), cart.TotalAmount)
	assert.Equal(t, 4, cart.ItemCount())

	totals := cart.Totals()
	assert.Equal(t, Money(2196), totals.Subtotal)
	assert.Equal(t, StandardDeliveryFee, totals.DeliveryFee)
	assert.Equal(t, Money(2495), totals.Total)

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Zero(t, cart.TotalAmount)
	assert.NotNil(t, cart.Items)
}

func TestCart_CloneSharesNoItems(t *testing.T) {
	var cart Cart
	cart.Add(LineItem{ProductName: "Garlic Bread", Price: 599, Quantity: 1})

	cloned := cart.Clone()
	cloned.Items[0].ProductName = "changed"
	cloned.Add(LineItem{ProductName: "Wings", Price: 999, Quantity: 1})

	assert.Equal(t, "Garlic Bread", cart.Items[0].ProductName)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, Money(599), cart.TotalAmount)
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "12.99", Money(1299).String())
	assert.Equal(t, "0.05", Money(5).String())
	assert.Equal(t, "25.00", Money(2500).String())
	assert.Equal(t, "-2.99", Money(-299).String())
	assert.Equal(t, Money(1299), MoneyFromFloat(12.99))
	assert.Equal(t, Money(1000), MoneyFromFloat(9.999))
}
