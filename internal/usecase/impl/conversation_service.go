package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "orderbot/internal/delivery/context"
	"orderbot/internal/domain/entity"
	"orderbot/internal/domain/repository"
	"orderbot/internal/domain/service"
	"orderbot/internal/errors"
	"orderbot/internal/usecase"

	"go.uber.org/fx"
)

// resetToken returns any customer to the main menu.
const resetToken = "0"

// greetingTokens open a conversation for an unknown sender.
var greetingTokens = map[string]struct{}{
	"menu":  {},
	"hi":    {},
	"hello": {},
	"start": {},
}

// menuTokens act like the reset token for a known sender. "hi" and "hello"
// fall through to the current state's handler.
var menuTokens = map[string]struct{}{
	"menu":  {},
	"start": {},
}

// ConversationServiceParams holds dependencies for ConversationService, injected by Fx.
type ConversationServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	ProductRepo  repository.ProductRepository
	Checkout     usecase.CheckoutUsecase
	Presenter    service.OutboundPresenter
	Deduplicator service.MessageDeduplicator `optional:"true"`
	Metrics      service.MetricsRecorder
	Logger       *slog.Logger
}

type conversationService struct {
	customerRepo repository.CustomerRepository
	menu         *menuBuilder
	checkout     usecase.CheckoutUsecase
	presenter    service.OutboundPresenter
	deduplicator service.MessageDeduplicator
	metrics      service.MetricsRecorder
	logger       *slog.Logger
	handlers     map[entity.ConversationState]stateHandler
	now          func() time.Time
}

// NewConversationService creates the conversation state machine.
func NewConversationService(params ConversationServiceParams) usecase.ConversationUsecase {
	srv := &conversationService{
		customerRepo: params.CustomerRepo,
		menu:         newMenuBuilder(params.ProductRepo),
		checkout:     params.Checkout,
		presenter:    params.Presenter,
		deduplicator: params.Deduplicator,
		metrics:      params.Metrics,
		logger:       params.Logger,
		now:          time.Now,
	}
	srv.handlers = srv.transitionTable()

	return srv
}

func (srv *conversationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ReceiveMessage is the webhook entry point for one inbound text.
func (srv *conversationService) ReceiveMessage(ctx context.Context, msg *usecase.InboundMessage) error {
	if srv.deduplicator != nil && msg.MessageID != "" {
		first, err := srv.deduplicator.FirstSeen(ctx, msg.MessageID)
		switch {
		case err != nil:
			srv.log(ctx).Warn("Message deduplication unavailable, processing anyway",
				slog.String("message_id", msg.MessageID),
				slog.Any("error", err),
			)
		case !first:
			srv.metrics.MessageDropped("duplicate")

			return nil
		}
	}

	reply, err := srv.HandleMessage(ctx, msg)
	if err != nil {
		srv.presenter.Present(ctx, msg.From, entity.NewReply(entity.ReplyError))

		return err
	}
	if reply == nil {
		srv.metrics.MessageDropped("unknown_sender")

		return nil
	}

	srv.presenter.Present(ctx, msg.From, reply)

	return nil
}

// HandleMessage runs one turn of the state machine for the sender.
func (srv *conversationService) HandleMessage(ctx context.Context, msg *usecase.InboundMessage) (*entity.Reply, error) {
	raw := strings.TrimSpace(msg.Text)
	input := strings.ToLower(raw)

	customer, err := srv.customerRepo.FindByPhone(ctx, msg.From)
	if errors.Is(err, repository.ErrCustomerNotFound) {
		return srv.greet(ctx, msg, input)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}

	startState := customer.ConversationState
	t := &turn{customer: customer.Clone(), input: input, raw: raw}

	tr, err := srv.dispatch(ctx, t)
	if err != nil {
		return nil, err
	}

	reply, err := srv.apply(ctx, t.customer, tr)
	if err != nil {
		return nil, err
	}
	srv.metrics.MessageHandled(startState, reply.Kind)

	return reply, nil
}

// greet creates a customer on a greeting token and ignores anything else.
func (srv *conversationService) greet(ctx context.Context, msg *usecase.InboundMessage, input string) (*entity.Reply, error) {
	if _, ok := greetingTokens[input]; !ok {
		srv.log(ctx).Debug("Ignoring message from unknown sender", slog.String("from", msg.From))

		return nil, nil
	}

	customer := entity.NewCustomer(msg.From, srv.now())
	customer.Name = msg.ProfileName
	if err := srv.customerRepo.Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	srv.log(ctx).Info("New customer", slog.String("customer_id", customer.ID.String()))
	srv.metrics.MessageHandled(entity.StateMainMenu, entity.ReplyWelcome)

	return entity.NewReply(entity.ReplyWelcome), nil
}

// dispatch applies the global rules, then the handler for the current state.
func (srv *conversationService) dispatch(ctx context.Context, t *turn) (*transition, error) {
	if t.input == resetToken {
		return toMainMenu(), nil
	}
	if _, ok := menuTokens[t.input]; ok {
		return toMainMenu(), nil
	}

	handler, ok := srv.handlers[t.customer.ConversationState]
	if !ok {
		srv.log(ctx).Warn("Unknown conversation state, returning to main menu",
			slog.String("customer_id", t.customer.ID.String()),
			slog.String("state", t.customer.ConversationState.String()),
		)

		return toMainMenu(), nil
	}

	return handler(ctx, t)
}

// apply runs the transition's side effects and persists the customer. A failed
// checkout leaves the stored customer untouched.
func (srv *conversationService) apply(ctx context.Context, customer *entity.Customer, tr *transition) (*entity.Reply, error) {
	now := srv.now()
	var placeOrder *effect

	for i := range tr.effects {
		eff := &tr.effects[i]
		switch eff.kind {
		case effectAddToCart:
			customer.Cart.Add(eff.item)
		case effectClearCart:
			customer.Cart.Clear()
		case effectPlaceOrder:
			placeOrder = eff
		}
	}

	if tr.reply.Kind == entity.ReplyItemAdded {
		tr.reply.Totals = customer.Cart.Totals()
	}

	customer.MoveTo(tr.state, tr.context)
	customer.LastInteractionAt = now
	customer.UpdatedAt = now

	if placeOrder != nil {
		order, err := srv.checkout.FinalizeOrder(ctx, customer, placeOrder.address)
		if err != nil {
			srv.log(ctx).Error("Failed to finalize order",
				slog.String("customer_id", customer.ID.String()),
				slog.Any("error", err),
			)
			srv.metrics.OrderFailed()

			return entity.NewReply(entity.ReplyOrderFailed), nil
		}
		srv.metrics.OrderPlaced(order.TotalAmount)
		tr.reply.Order = order

		return tr.reply, nil
	}

	if err := srv.customerRepo.Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	return tr.reply, nil
}
