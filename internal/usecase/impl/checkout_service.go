package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"orderbot/config"
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

// maxOrderIDAttempts bounds retries after an order id collision.
const maxOrderIDAttempts = 3

// orderIDGenerator hands out "<prefix><epochMillis>" ids, never repeating a
// millisecond within the process.
type orderIDGenerator struct {
	mu     sync.Mutex
	prefix string
	last   int64
	now    func() time.Time
}

func newOrderIDGenerator(prefix string, now func() time.Time) *orderIDGenerator {
	return &orderIDGenerator{prefix: prefix, now: now}
}

func (g *orderIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	millis := g.now().UnixMilli()
	if millis <= g.last {
		millis = g.last + 1
	}
	g.last = millis

	return g.prefix + strconv.FormatInt(millis, 10)
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

type checkoutService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	shop      *config.ShopConfig
	orderIDs  *orderIDGenerator
	logger    *slog.Logger
	now       func() time.Time
}

// NewCheckoutService creates the cart checkout engine.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return newCheckoutService(params, time.Now)
}

func newCheckoutService(params CheckoutServiceParams, now func() time.Time) *checkoutService {
	shop := &config.ShopConfig{}
	if params.Config != nil && params.Config.Shop != nil {
		shop = params.Config.Shop
	}

	return &checkoutService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		shop:      shop,
		orderIDs:  newOrderIDGenerator(shop.OrderIDPrefix, now),
		logger:    params.Logger,
		now:       now,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FinalizeOrder persists the order and the emptied cart together.
func (srv *checkoutService) FinalizeOrder(ctx context.Context, customer *entity.Customer, address string) (*entity.Order, error) {
	if customer.Cart.IsEmpty() {
		return nil, domainerrors.ErrEmptyCart
	}
	address = strings.TrimSpace(address)
	now := srv.now()

	for attempt := 1; attempt <= maxOrderIDAttempts; attempt++ {
		working := customer.Clone()
		order := srv.buildOrder(working, address, now)

		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			if err := repoFactory.NewOrderRepository().Create(ctx, order); err != nil {
				return err
			}

			working.OrderHistory = append(working.OrderHistory, entity.OrderSummary{
				OrderID: order.OrderID,
				Date:    order.CreatedAt,
				Amount:  order.TotalAmount,
				Status:  order.Status,
			})
			working.Cart.Clear()

			return repoFactory.NewCustomerRepository().Save(ctx, working)
		})
		if errors.Is(err, repository.ErrDuplicateOrderID) {
			srv.log(ctx).Warn("Order id collision, retrying",
				slog.String("order_id", order.OrderID),
				slog.Int("attempt", attempt),
			)

			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to finalize order: %w", err)
		}

		*customer = *working
		srv.log(ctx).Info("Order placed",
			slog.String("order_id", order.OrderID),
			slog.String("customer_id", customer.ID.String()),
			slog.String("total", order.TotalAmount.String()),
		)
		srv.publishCreated(ctx, order)

		return order, nil
	}

	return nil, fmt.Errorf("failed to allocate order id after %d attempts: %w", maxOrderIDAttempts, repository.ErrDuplicateOrderID)
}

func (srv *checkoutService) buildOrder(customer *entity.Customer, address string, now time.Time) *entity.Order {
	totals := customer.Cart.Totals()
	items := make([]entity.LineItem, len(customer.Cart.Items))
	copy(items, customer.Cart.Items)

	recipient := customer.Name
	if recipient == "" {
		recipient = srv.shop.DefaultRecipientName
	}

	return &entity.Order{
		ID:            uuid.New(),
		OrderID:       srv.orderIDs.Next(),
		CustomerID:    customer.ID,
		CustomerPhone: customer.PhoneNumber,
		Items:         items,
		TotalAmount:   totals.Total,
		DeliveryInfo: entity.DeliveryInfo{
			RecipientName:  recipient,
			RecipientPhone: customer.PhoneNumber,
			Address:        address,
			City:           srv.shop.DefaultCity,
			DeliveryDate:   now,
			DeliveryTime:   srv.shop.DefaultDeliveryTime,
			DeliveryFee:    totals.DeliveryFee,
		},
		Status: entity.OrderStatusPending,
		PaymentInfo: entity.PaymentInfo{
			Method: entity.PaymentMethodCashOnDelivery,
			Status: entity.PaymentStatusPending,
		},
		Timeline: []entity.TimelineEntry{
			{Status: entity.OrderStatusPending, Timestamp: now, Notes: "Order placed via WhatsApp"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// publishCreated announces the order to the worker. The order stands even if
// publishing fails.
func (srv *checkoutService) publishCreated(ctx context.Context, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Type:          constants.EventOrderCreated,
		OrderID:       order.OrderID,
		CustomerPhone: order.CustomerPhone,
		Status:        order.Status,
		TotalAmount:   order.TotalAmount,
		ItemCount:     order.ItemCount(),
		Address:       order.DeliveryInfo.Address,
		OccurredAt:    order.CreatedAt,
	}
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.String("order_id", order.OrderID),
			slog.Any("error", err),
		)
	}
}
