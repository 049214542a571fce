package postgres

import (
	"testing"
	"time"

	"orderbot/internal/domain/entity"
	"orderbot/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFillSalesDays_IncludesEmptyDays(t *testing.T) {
	since := time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC)
	until := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	byDay := map[string]repository.DailySales{
		"2024-03-02": {Date: "2024-03-02", Orders: 2, Revenue: 3100},
	}

	sales := fillSalesDays(byDay, since, until)

	require.Len(t, sales, 4)
	assert.Equal(t, "2024-03-01", sales[0].Date)
	assert.Zero(t, sales[0].Orders)
	assert.Equal(t, int64(2), sales[1].Orders)
	assert.Equal(t, entity.Money(3100), sales[1].Revenue)
	assert.Equal(t, "2024-03-04", sales[3].Date)
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_orders_order_id" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
}

func TestOrderMapping_KeepsItemOrderAndMoney(t *testing.T) {
	order := &entity.Order{
		OrderID: "TP1700000000000",
		Items: []entity.LineItem{
			{ProductName: "Margherita - Large (14\")", Price: 1799, Quantity: 1},
			{ProductName: "Garlic Bread", Price: 599, Quantity: 2},
		},
		TotalAmount: 2997,
		DeliveryInfo: entity.DeliveryInfo{
			Address:     "12 Main St",
			DeliveryFee: 0,
		},
		Status:   entity.OrderStatusPending,
		Timeline: []entity.TimelineEntry{{Status: entity.OrderStatusPending, Notes: "Order placed via WhatsApp"}},
	}

	orderM, err := fromOrderDomain(order)
	require.NoError(t, err)
	require.Len(t, orderM.Items, 2)
	assert.Equal(t, 1, orderM.Items[1].Position)
	assert.Equal(t, int64(599), orderM.Items[1].Price)

	back, err := toOrderDomain(orderM)
	require.NoError(t, err)
	assert.Equal(t, order.Items, back.Items)
	assert.Equal(t, order.TotalAmount, back.TotalAmount)
	assert.Equal(t, order.Timeline[0].Notes, back.Timeline[0].Notes)
}
