package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"orderbot/config"
	deliverycontext "orderbot/internal/delivery/context"
	"orderbot/internal/domain/constants"
	"orderbot/internal/domain/entity"
	"orderbot/internal/domain/repository"
	"orderbot/internal/domain/service"
	"orderbot/internal/errors"
	"orderbot/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// fcmBatchSize is the FCM multicast limit.
const fcmBatchSize = 500

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenVerifier checks the OIDC token Pub/Sub attaches to push requests.
type tokenVerifier func(req *http.Request) error

// PushHandler consumes order events pushed by Pub/Sub.
type PushHandler struct {
	verify          tokenVerifier
	logger          *slog.Logger
	shopName        string
	notificationSvc service.NotificationService
	channel         service.MessagingChannel
	staffDeviceRepo repository.StaffDeviceRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
	Channel         service.MessagingChannel
	StaffDeviceRepo repository.StaffDeviceRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	var verify tokenVerifier
	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		verify = verifyPubSubToken
	}

	var shopName string
	if params.Config.Shop != nil {
		shopName = params.Config.Shop.Name
	}

	return &PushHandler{
		verify:          verify,
		logger:          params.Logger,
		shopName:        shopName,
		notificationSvc: params.NotificationSvc,
		channel:         params.Channel,
		staffDeviceRepo: params.StaffDeviceRepo,
	}
}

// HandlePush handles POST /push. Retryable failures answer 503 so Pub/Sub
// redelivers; everything else answers 200 to stop redelivery.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.Event()
	if err != nil {
		h.logger.Error("[Worker] Undecodable push message",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing order event",
		slog.String("event_type", event.Type),
		slog.String("order_id", event.OrderID),
	)

	if err := h.processEvent(ctx, event); err != nil {
		retryable := isRetryableError(err)
		reqLogger.Error("[Worker] Failed to process order event",
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the
// X-Request-Id already on the context, and finally mints one.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.OrderEvent) string {
	if requestID := pushMsg.RequestID(); requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) processEvent(ctx context.Context, event *service.OrderEvent) error {
	switch event.Type {
	case constants.EventOrderCreated:
		return h.alertStaff(ctx, event)
	case constants.EventOrderStatusChanged:
		return h.notifyCustomer(ctx, event)
	default:
		return errors.Errorf("unknown event type %q", event.Type)
	}
}

// alertStaff multicasts a new-order alert to every active staff device and
// deactivates tokens FCM reports as unregistered.
func (h *PushHandler) alertStaff(ctx context.Context, event *service.OrderEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	devices, err := h.staffDeviceRepo.FindActive(ctx)
	if err != nil {
		return newRetryableError(errors.Wrap(err, "failed to load staff devices"))
	}
	if len(devices) == 0 {
		logger.Info("[Worker] No active staff devices", slog.String("order_id", event.OrderID))

		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	alert := newOrderAlert(event)

	var sent, failed int
	var invalidTokens []string
	for start := 0; start < len(tokens); start += fcmBatchSize {
		batch := tokens[start:min(start+fcmBatchSize, len(tokens))]

		report, sendErr := h.notificationSvc.Multicast(ctx, batch, alert)
		if sendErr != nil {
			logger.Error("[Worker] Failed to send staff alert batch",
				slog.Int("batch_start", start),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)
			failed += len(batch)

			continue
		}

		sent += report.Sent
		failed += report.Failed
		invalidTokens = append(invalidTokens, report.InvalidTokens...)
	}

	if len(invalidTokens) > 0 {
		if err := h.staffDeviceRepo.DeactivateTokens(ctx, invalidTokens); err != nil {
			logger.Warn("[Worker] Failed to deactivate invalid tokens", slog.Any("error", err))
		}
	}

	logger.Info("[Worker] Staff alert completed",
		slog.String("order_id", event.OrderID),
		slog.Int("total_sent", sent),
		slog.Int("total_failed", failed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	if sent == 0 && failed > 0 && len(invalidTokens) < failed {
		return newRetryableError(errors.Errorf("no staff device received order %s", event.OrderID))
	}

	return nil
}

// notifyCustomer tells the customer on WhatsApp that their order moved on.
func (h *PushHandler) notifyCustomer(ctx context.Context, event *service.OrderEvent) error {
	if event.CustomerPhone == "" {
		return errors.Errorf("order %s has no customer phone", event.OrderID)
	}

	text := statusMessage(h.shopName, event)
	if text == "" {
		return nil
	}

	if err := h.channel.SendText(ctx, event.CustomerPhone, text); err != nil {
		return newRetryableError(errors.Wrap(err, "failed to send status update"))
	}

	return nil
}

func newOrderAlert(event *service.OrderEvent) *service.StaffAlert {
	body := fmt.Sprintf("%d item(s), $%s", event.ItemCount, event.TotalAmount)
	if event.Address != "" {
		body += " to " + event.Address
	}

	return &service.StaffAlert{
		Title: "New order " + event.OrderID,
		Body:  body,
		Data: map[string]string{
			"event_type":     event.Type,
			"order_id":       event.OrderID,
			"customer_phone": event.CustomerPhone,
			"total_amount":   event.TotalAmount.String(),
		},
	}
}

// statusMessage is the customer-facing text for a status change. Pending
// has no message.
func statusMessage(shopName string, event *service.OrderEvent) string {
	var b strings.Builder
	switch event.Status {
	case entity.OrderStatusConfirmed:
		fmt.Fprintf(&b, "✅ Your order %s has been confirmed!", event.OrderID)
	case entity.OrderStatusPreparing:
		fmt.Fprintf(&b, "👨‍🍳 Your order %s is being prepared.", event.OrderID)
	case entity.OrderStatusOutForDelivery:
		fmt.Fprintf(&b, "🛵 Your order %s is on its way!", event.OrderID)
	case entity.OrderStatusDelivered:
		fmt.Fprintf(&b, "🎉 Your order %s has been delivered. Enjoy your meal!", event.OrderID)
	case entity.OrderStatusCancelled:
		fmt.Fprintf(&b, "❌ Your order %s has been cancelled. Reply MENU to start a new order.", event.OrderID)
	default:
		return ""
	}

	if shopName != "" {
		b.WriteString("\n\n")
		b.WriteString(shopName)
	}

	return b.String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is this endpoint's own URL.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
