package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"orderbot/config"
	"orderbot/internal/infra/whatsapp"
	mockService "orderbot/internal/mocks/service"
	mockUsecase "orderbot/internal/mocks/usecase"
	"orderbot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testVerifyToken = "verify-me"
	testAppSecret   = "app-secret"
)

const twoMessagePayload = `{
  "object": "whatsapp_business_account",
  "entry": [{"id": "WABA", "changes": [{"field": "messages", "value": {
    "messaging_product": "whatsapp",
    "contacts": [{"wa_id": "15550001111", "profile": {"name": "Ana"}}],
    "messages": [
      {"id": "wamid.1", "from": "15550001111", "timestamp": "1700000000", "type": "text", "text": {"body": "hi"}},
      {"id": "wamid.2", "from": "15550001111", "timestamp": "1700000001", "type": "text", "text": {"body": "1"}},
      {"id": "wamid.3", "from": "15550001111", "timestamp": "1700000002", "type": "image"}
    ]
  }}]}]
}`

type webhookFixtures struct {
	echo           *echo.Echo
	conversationUC *mockUsecase.MockConversationUsecase
	metrics        *mockService.MockMetricsRecorder
}

func createTestWebhookHandler(t *testing.T, burst int) webhookFixtures {
	conversationUC := mockUsecase.NewMockConversationUsecase(t)
	metrics := mockService.NewMockMetricsRecorder(t)

	h := NewWebhookHandler(WebhookHandlerParams{
		ConversationUC: conversationUC,
		Metrics:        metrics,
		Config: &config.Config{
			WhatsApp:  &config.WhatsAppConfig{VerifyToken: testVerifyToken, AppSecret: testAppSecret},
			RateLimit: &config.RateLimitConfig{PerSecond: 1, Burst: burst},
		},
		Logger: newDiscardLogger(),
	})

	e := newTestEcho()
	e.GET("/webhook", h.Verify)
	e.POST("/webhook", h.Receive)

	return webhookFixtures{echo: e, conversationUC: conversationUC, metrics: metrics}
}

func (f webhookFixtures) post(body, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if signature != "" {
		req.Header.Set(whatsapp.SignatureHeader, signature)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestWebhookHandler_Verify(t *testing.T) {
	fx := createTestWebhookHandler(t, 5)

	tests := []struct {
		name     string
		query    string
		wantCode int
		wantBody string
	}{
		{"valid handshake", "hub.mode=subscribe&hub.verify_token=verify-me&hub.challenge=1158201444", http.StatusOK, "1158201444"},
		{"wrong token", "hub.mode=subscribe&hub.verify_token=guess&hub.challenge=1", http.StatusForbidden, "WEBHOOK_VERIFICATION_FAILED"},
		{"wrong mode", "hub.mode=unsubscribe&hub.verify_token=verify-me&hub.challenge=1", http.StatusForbidden, "WEBHOOK_VERIFICATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			fx.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/webhook?"+tt.query, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestWebhookHandler_Receive_DispatchesTextMessages(t *testing.T) {
	fx := createTestWebhookHandler(t, 5)

	var received []*usecase.InboundMessage
	fx.conversationUC.EXPECT().
		ReceiveMessage(mock.Anything, mock.AnythingOfType("*usecase.InboundMessage")).
		Run(func(_ context.Context, msg *usecase.InboundMessage) { received = append(received, msg) }).
		Return(nil)
	fx.metrics.EXPECT().MessageDropped("non_text").Return().Once()

	rec := fx.post(twoMessagePayload, whatsapp.Sign(testAppSecret, []byte(twoMessagePayload)))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, received, 2)
	assert.Equal(t, "wamid.1", received[0].MessageID)
	assert.Equal(t, "15550001111", received[0].From)
	assert.Equal(t, "Ana", received[0].ProfileName)
	assert.Equal(t, "hi", received[0].Text)
	assert.Equal(t, int64(1700000000), received[0].ReceivedAt.Unix())
	assert.Equal(t, "1", received[1].Text)
}

func TestWebhookHandler_Receive_RateLimitsPerSender(t *testing.T) {
	fx := createTestWebhookHandler(t, 1)

	fx.conversationUC.EXPECT().ReceiveMessage(mock.Anything, mock.Anything).Return(nil).Once()
	fx.metrics.EXPECT().MessageDropped("non_text").Return().Once()
	fx.metrics.EXPECT().MessageDropped("rate_limited").Return().Once()

	rec := fx.post(twoMessagePayload, whatsapp.Sign(testAppSecret, []byte(twoMessagePayload)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookHandler_Receive_ProcessingErrorStillAcknowledged(t *testing.T) {
	fx := createTestWebhookHandler(t, 5)

	fx.conversationUC.EXPECT().ReceiveMessage(mock.Anything, mock.Anything).Return(errors.New("db down")).Twice()
	fx.metrics.EXPECT().MessageDropped(mock.Anything).Return().Maybe()

	rec := fx.post(twoMessagePayload, whatsapp.Sign(testAppSecret, []byte(twoMessagePayload)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookHandler_Receive_Rejections(t *testing.T) {
	t.Run("bad signature", func(t *testing.T) {
		fx := createTestWebhookHandler(t, 5)

		rec := fx.post(twoMessagePayload, whatsapp.Sign("other-secret", []byte(twoMessagePayload)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_SIGNATURE", decodeError(t, rec).Code)
	})

	t.Run("missing signature", func(t *testing.T) {
		fx := createTestWebhookHandler(t, 5)

		rec := fx.post(twoMessagePayload, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed payload", func(t *testing.T) {
		fx := createTestWebhookHandler(t, 5)
		body := `{"entry": [`

		rec := fx.post(body, whatsapp.Sign(testAppSecret, []byte(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
