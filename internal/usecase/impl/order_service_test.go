package impl

import (
	"context"
	"testing"
	"time"

	"orderbot/internal/domain/constants"
	"orderbot/internal/domain/entity"
	domainerrors "orderbot/internal/domain/errors"
	"orderbot/internal/domain/repository"
	"orderbot/internal/domain/service"
	mockRepo "orderbot/internal/mocks/repository"
	mockService "orderbot/internal/mocks/service"
	"orderbot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var orderClock = time.Date(2026, 5, 6, 15, 0, 0, 0, time.UTC)

type orderServiceFixtures struct {
	service   *orderService
	orderRepo *mockRepo.MockOrderRepository
	publisher *mockService.MockEventPublisher
	receipts  *mockService.MockReceiptRenderer
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	receipts := mockService.NewMockReceiptRenderer(t)

	srv := NewOrderService(OrderServiceParams{
		OrderRepo: orderRepo,
		Publisher: publisher,
		Receipts:  receipts,
		Logger:    newDiscardLogger(),
	}).(*orderService)
	srv.now = func() time.Time { return orderClock }

	return orderServiceFixtures{
		service:   srv,
		orderRepo: orderRepo,
		publisher: publisher,
		receipts:  receipts,
	}
}

func pendingOrder() *entity.Order {
	return &entity.Order{
		ID:            uuid.New(),
		OrderID:       "TP1746540000000",
		CustomerPhone: testSender,
		Items:         []entity.LineItem{{ProductName: "Garlic Bread", Price: 599, Quantity: 2}},
		TotalAmount:   1497,
		Status:        entity.OrderStatusPending,
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)

	fx.orderRepo.EXPECT().
		List(mock.Anything, repository.OrderFilter{Page: repository.Page{Page: 1, Limit: defaultOrderPageLimit}, Status: entity.OrderStatusPreparing}).
		Return([]*entity.Order{pendingOrder()}, int64(31), nil)

	page, err := fx.service.ListOrders(context.Background(), repository.OrderFilter{Status: entity.OrderStatusPreparing})
	require.NoError(t, err)
	assert.Equal(t, int64(31), page.Total)
	assert.Equal(t, defaultOrderPageLimit, page.Limit)

	_, err = fx.service.ListOrders(context.Background(), repository.OrderFilter{Status: "lost"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	fx := createTestOrderService(t)
	order := pendingOrder()

	fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().Update(mock.Anything, order).Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, &service.OrderEvent{
			Type:           constants.EventOrderStatusChanged,
			OrderID:        order.OrderID,
			CustomerPhone:  testSender,
			Status:         entity.OrderStatusConfirmed,
			PreviousStatus: entity.OrderStatusPending,
			TotalAmount:    1497,
			ItemCount:      2,
			OccurredAt:     orderClock,
		}).
		Return(errors.New("publish timeout"))

	updated, err := fx.service.UpdateOrderStatus(context.Background(), order.ID, entity.OrderStatusConfirmed, " called customer ")
	require.NoError(t, err, "publish failures do not fail the update")
	assert.Equal(t, entity.OrderStatusConfirmed, updated.Status)
	require.Len(t, updated.Timeline, 1)
	assert.Equal(t, entity.TimelineEntry{Status: entity.OrderStatusConfirmed, Timestamp: orderClock, Notes: "called customer"}, updated.Timeline[0])
}

func TestOrderService_UpdateOrderStatus_Errors(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.UpdateOrderStatus(context.Background(), uuid.New(), "shipped", "")
		require.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.orderRepo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, repository.ErrOrderNotFound)

		_, err := fx.service.UpdateOrderStatus(context.Background(), uuid.New(), entity.OrderStatusConfirmed, "")
		require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})

	t.Run("skipping a step conflicts", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := pendingOrder()
		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)

		_, err := fx.service.UpdateOrderStatus(context.Background(), order.ID, entity.OrderStatusDelivered, "")
		require.ErrorIs(t, err, domainerrors.ErrOrderStatusTransition)
		fx.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestOrderService_UpdateOrder(t *testing.T) {
	fx := createTestOrderService(t)
	order := pendingOrder()
	order.DeliveryInfo = entity.DeliveryInfo{Address: "old", City: "Springfield", DeliveryTime: "ASAP"}

	fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().Update(mock.Anything, order).Return(nil)

	address := "742 Evergreen Terrace"
	paid := entity.PaymentStatusPaid
	updated, err := fx.service.UpdateOrder(context.Background(), order.ID, &usecase.OrderUpdateInput{
		Address:       &address,
		PaymentStatus: &paid,
	})
	require.NoError(t, err)
	assert.Equal(t, address, updated.DeliveryInfo.Address)
	assert.Equal(t, "Springfield", updated.DeliveryInfo.City)
	assert.Equal(t, entity.PaymentStatusPaid, updated.PaymentInfo.Status)
	assert.Equal(t, orderClock, updated.UpdatedAt)
}

func TestOrderService_UpdateOrder_InvalidPayment(t *testing.T) {
	fx := createTestOrderService(t)
	order := pendingOrder()
	fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)

	method := entity.PaymentMethod("barter")
	_, err := fx.service.UpdateOrder(context.Background(), order.ID, &usecase.OrderUpdateInput{PaymentMethod: &method})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_RenderReceipt(t *testing.T) {
	fx := createTestOrderService(t)
	order := pendingOrder()
	fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil).Twice()
	fx.receipts.EXPECT().RenderReceipt(order).Return([]byte("%PDF-1.3"), nil).Once()

	got, pdf, err := fx.service.RenderReceipt(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Same(t, order, got)
	assert.Equal(t, []byte("%PDF-1.3"), pdf)

	fx.receipts.EXPECT().RenderReceipt(order).Return(nil, errors.New("font missing")).Once()
	_, _, err = fx.service.RenderReceipt(context.Background(), order.ID)
	require.ErrorIs(t, err, domainerrors.ErrReceiptFailed)
}
