package handler

import (
	"io"
	"log/slog"
	"net/http"

	"orderbot/config"
	deliverycontext "orderbot/internal/delivery/context"
	domainerrors "orderbot/internal/domain/errors"
	"orderbot/internal/domain/service"
	"orderbot/internal/infra/whatsapp"
	"orderbot/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	hubModeSubscribe = "subscribe"

	dropReasonRateLimited = "rate_limited"
)

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	ConversationUC usecase.ConversationUsecase
	Metrics        service.MetricsRecorder
	Config         *config.Config
	Logger         *slog.Logger
}

// WebhookHandler receives WhatsApp Cloud API callbacks.
type WebhookHandler struct {
	conversationUC usecase.ConversationUsecase
	metrics        service.MetricsRecorder
	verifyToken    string
	appSecret      string
	limiter        *senderLimiter
	logger         *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	rl := params.Config.RateLimit

	return &WebhookHandler{
		conversationUC: params.ConversationUC,
		metrics:        params.Metrics,
		verifyToken:    params.Config.WhatsApp.VerifyToken,
		appSecret:      params.Config.WhatsApp.AppSecret,
		limiter:        newSenderLimiter(rl.PerSecond, rl.Burst, rl.IdleTTL),
		logger:         params.Logger,
	}
}

// Verify answers the subscription handshake by echoing hub.challenge.
func (h *WebhookHandler) Verify(c echo.Context) error {
	mode := c.QueryParam("hub.mode")
	token := c.QueryParam("hub.verify_token")

	if mode != hubModeSubscribe || h.verifyToken == "" || token != h.verifyToken {
		h.log(c).Warn("Webhook verification rejected", slog.String("mode", mode))

		return domainerrors.ErrWebhookVerification
	}

	h.log(c).Info("Webhook verified")

	return c.String(http.StatusOK, c.QueryParam("hub.challenge"))
}

// Receive processes every text message in the payload. It answers 200 for
// anything it could parse so Meta does not redeliver; per-message failures
// are handled and logged by the conversation usecase.
func (h *WebhookHandler) Receive(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Unreadable body")
	}

	if h.appSecret != "" && !whatsapp.VerifySignature(h.appSecret, body, c.Request().Header.Get(whatsapp.SignatureHeader)) {
		h.log(c).Warn("Webhook signature mismatch")

		return domainerrors.ErrInvalidSignature
	}

	messages, skipped, err := whatsapp.ParseWebhook(body)
	if err != nil {
		h.log(c).Warn("Malformed webhook payload", slog.Any("error", err))

		return echo.NewHTTPError(http.StatusBadRequest, "Malformed payload")
	}
	for reason, count := range skipped {
		for range count {
			h.metrics.MessageDropped(reason)
		}
	}

	ctx := c.Request().Context()
	for _, msg := range messages {
		if !h.limiter.Allow(msg.From) {
			h.metrics.MessageDropped(dropReasonRateLimited)
			h.log(c).Warn("Sender rate limited", slog.String("from", msg.From))

			continue
		}

		msgCtx := deliverycontext.WithMessage(ctx, h.logger, msg.From, msg.MessageID)
		err := h.conversationUC.ReceiveMessage(msgCtx, &usecase.InboundMessage{
			MessageID:   msg.MessageID,
			From:        msg.From,
			ProfileName: msg.ProfileName,
			Text:        msg.Text,
			ReceivedAt:  msg.SentAt,
		})
		if err != nil {
			deliverycontext.GetLoggerOrDefault(msgCtx, h.logger).Error("Failed to process message", slog.Any("error", err))
		}
	}

	return c.NoContent(http.StatusOK)
}

func (h *WebhookHandler) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
}
