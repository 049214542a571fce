package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "orderbot/internal/delivery/context"
	"orderbot/internal/domain/constants"
	"orderbot/internal/domain/entity"
	domainerrors "orderbot/internal/domain/errors"
	"orderbot/internal/domain/repository"
	"orderbot/internal/domain/service"
	"orderbot/internal/errors"
	"orderbot/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultOrderPageLimit = 20

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Receipts  service.ReceiptRenderer
	Logger    *slog.Logger
}

type orderService struct {
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	receipts  service.ReceiptRenderer
	logger    *slog.Logger
	now       func() time.Time
}

// NewOrderService creates the admin order service.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		receipts:  params.Receipts,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderService) ListOrders(ctx context.Context, filter repository.OrderFilter) (*usecase.OrderPage, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails(filter.Status.String())
	}
	filter.Page = normalizePage(filter.Page, defaultOrderPageLimit)

	orders, total, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return &usecase.OrderPage{
		Orders: orders,
		Total:  total,
		Page:   filter.Page.Page,
		Limit:  filter.Page.Limit,
	}, nil
}

func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return order, nil
}

// UpdateOrderStatus moves an order one lifecycle step and tells the worker.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, notes string) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails(status.String())
	}

	order, err := srv.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := order.Status
	if err := order.UpdateStatus(status, strings.TrimSpace(notes), srv.now()); err != nil {
		return nil, domainerrors.ErrOrderStatusTransition.WithDetails(err.Error())
	}

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	event := &service.OrderEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		Type:           constants.EventOrderStatusChanged,
		OrderID:        order.OrderID,
		CustomerPhone:  order.CustomerPhone,
		Status:         order.Status,
		PreviousStatus: previous,
		TotalAmount:    order.TotalAmount,
		ItemCount:      order.ItemCount(),
		OccurredAt:     order.UpdatedAt,
	}
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish status change",
			slog.String("order_id", order.OrderID),
			slog.Any("error", err),
		)
	}

	return order, nil
}

func (srv *orderService) UpdateOrder(ctx context.Context, id uuid.UUID, input *usecase.OrderUpdateInput) (*entity.Order, error) {
	order, err := srv.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.PaymentMethod != nil && !input.PaymentMethod.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid payment method")
	}
	if input.PaymentStatus != nil && !input.PaymentStatus.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid payment status")
	}

	applyOrderUpdate(order, input)
	order.UpdatedAt = srv.now()

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return order, nil
}

func applyOrderUpdate(order *entity.Order, input *usecase.OrderUpdateInput) {
	delivery := &order.DeliveryInfo
	setIfPresent(&delivery.RecipientName, input.RecipientName)
	setIfPresent(&delivery.RecipientPhone, input.RecipientPhone)
	setIfPresent(&delivery.Address, input.Address)
	setIfPresent(&delivery.City, input.City)
	setIfPresent(&delivery.Area, input.Area)
	setIfPresent(&delivery.DeliveryDate, input.DeliveryDate)
	setIfPresent(&delivery.DeliveryTime, input.DeliveryTime)
	setIfPresent(&delivery.SpecialInstructions, input.SpecialInstructions)
	setIfPresent(&order.PaymentInfo.Method, input.PaymentMethod)
	setIfPresent(&order.PaymentInfo.Status, input.PaymentStatus)
	setIfPresent(&order.PaymentInfo.TransactionID, input.TransactionID)
	setIfPresent(&order.Notes, input.Notes)
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func (srv *orderService) RenderReceipt(ctx context.Context, id uuid.UUID) (*entity.Order, []byte, error) {
	order, err := srv.GetOrder(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	pdf, err := srv.receipts.RenderReceipt(order)
	if err != nil {
		return nil, nil, domainerrors.ErrReceiptFailed.WithDetails(err.Error())
	}

	return order, pdf, nil
}
