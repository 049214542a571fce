package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"orderbot/config"
	"orderbot/internal/domain/constants"
	"orderbot/internal/domain/entity"
	"orderbot/internal/domain/service"
	"orderbot/internal/infra/pubsub"
	mockRepo "orderbot/internal/mocks/repository"
	mockService "orderbot/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushHandlerFixtures struct {
	handler         *PushHandler
	notificationSvc *mockService.MockNotificationService
	channel         *mockService.MockMessagingChannel
	staffDeviceRepo *mockRepo.MockStaffDeviceRepository
}

func createTestPushHandler(t *testing.T) pushHandlerFixtures {
	notificationSvc := mockService.NewMockNotificationService(t)
	channel := mockService.NewMockMessagingChannel(t)
	staffDeviceRepo := mockRepo.NewMockStaffDeviceRepository(t)

	cfg := &config.Config{Shop: &config.ShopConfig{Name: "Tony's Pizza Palace"}}
	cfg.Env.Env = constants.EnvDevelop

	h := NewPushHandler(PushHandlerParams{
		Config:          cfg,
		Logger:          slog.New(slog.DiscardHandler),
		NotificationSvc: notificationSvc,
		Channel:         channel,
		StaffDeviceRepo: staffDeviceRepo,
	})

	return pushHandlerFixtures{
		handler:         h,
		notificationSvc: notificationSvc,
		channel:         channel,
		staffDeviceRepo: staffDeviceRepo,
	}
}

func pushBody(t *testing.T, event *service.OrderEvent) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = map[string]string{"request_id": "req-42"}
	msg.Message.MessageID = "m-1"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func (f pushHandlerFixtures) push(body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = f.handler.HandlePush(echo.New().NewContext(req, rec))

	return rec
}

func createdEvent() *service.OrderEvent {
	return &service.OrderEvent{
		Type:          constants.EventOrderCreated,
		OrderID:       "TP1746540000000",
		CustomerPhone: "15551234567",
		Status:        entity.OrderStatusPending,
		TotalAmount:   1598,
		ItemCount:     1,
		Address:       "742 Evergreen Terrace",
	}
}

func staffDevices(n int) []*entity.StaffDevice {
	devices := make([]*entity.StaffDevice, n)
	for i := range devices {
		devices[i] = &entity.StaffDevice{FCMToken: fmt.Sprintf("token-%d", i), IsActive: true}
	}

	return devices
}

func TestPushHandler_OrderCreated_AlertsStaff(t *testing.T) {
	fx := createTestPushHandler(t)

	fx.staffDeviceRepo.EXPECT().FindActive(mock.Anything).Return(staffDevices(2), nil)
	fx.notificationSvc.EXPECT().
		Multicast(mock.Anything, []string{"token-0", "token-1"},
			mock.MatchedBy(func(alert *service.StaffAlert) bool {
				return alert.Title == "New order TP1746540000000" &&
					alert.Body == "1 item(s), $15.98 to 742 Evergreen Terrace" &&
					alert.Data["order_id"] == "TP1746540000000" &&
					alert.Data["total_amount"] == "15.98"
			})).
		Return(&service.AlertReport{Sent: 1, Failed: 1, InvalidTokens: []string{"token-1"}}, nil)
	fx.staffDeviceRepo.EXPECT().DeactivateTokens(mock.Anything, []string{"token-1"}).Return(nil)

	rec := fx.push(pushBody(t, createdEvent()))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_OrderCreated_Batches(t *testing.T) {
	fx := createTestPushHandler(t)

	var sizes []int
	fx.staffDeviceRepo.EXPECT().FindActive(mock.Anything).Return(staffDevices(fcmBatchSize+1), nil)
	fx.notificationSvc.EXPECT().
		Multicast(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, tokens []string, _ *service.StaffAlert) (*service.AlertReport, error) {
			sizes = append(sizes, len(tokens))

			return &service.AlertReport{Sent: len(tokens)}, nil
		}).
		Twice()

	rec := fx.push(pushBody(t, createdEvent()))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{fcmBatchSize, 1}, sizes)
}

func TestPushHandler_OrderCreated_NoDevices(t *testing.T) {
	fx := createTestPushHandler(t)

	fx.staffDeviceRepo.EXPECT().FindActive(mock.Anything).Return(nil, nil)

	rec := fx.push(pushBody(t, createdEvent()))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RetryableFailures(t *testing.T) {
	t.Run("device lookup fails", func(t *testing.T) {
		fx := createTestPushHandler(t)
		fx.staffDeviceRepo.EXPECT().FindActive(mock.Anything).Return(nil, errors.New("connection refused"))

		rec := fx.push(pushBody(t, createdEvent()))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("every batch fails", func(t *testing.T) {
		fx := createTestPushHandler(t)
		fx.staffDeviceRepo.EXPECT().FindActive(mock.Anything).Return(staffDevices(1), nil)
		fx.notificationSvc.EXPECT().
			Multicast(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("fcm unavailable"))

		rec := fx.push(pushBody(t, createdEvent()))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("whatsapp send fails", func(t *testing.T) {
		fx := createTestPushHandler(t)
		fx.channel.EXPECT().SendText(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("graph api 500"))

		event := createdEvent()
		event.Type = constants.EventOrderStatusChanged
		event.Status = entity.OrderStatusConfirmed

		rec := fx.push(pushBody(t, event))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestPushHandler_StatusChanged_NotifiesCustomer(t *testing.T) {
	fx := createTestPushHandler(t)

	fx.channel.EXPECT().
		SendText(mock.Anything, "15551234567", "🛵 Your order TP1746540000000 is on its way!\n\nTony's Pizza Palace").
		Return(nil)

	event := createdEvent()
	event.Type = constants.EventOrderStatusChanged
	event.PreviousStatus = entity.OrderStatusPreparing
	event.Status = entity.OrderStatusOutForDelivery

	rec := fx.push(pushBody(t, event))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_PermanentFailuresAreAcknowledged(t *testing.T) {
	fx := createTestPushHandler(t)

	unknown := createdEvent()
	unknown.Type = "order.refunded"
	assert.Equal(t, http.StatusOK, fx.push(pushBody(t, unknown)).Code)

	noPhone := createdEvent()
	noPhone.Type = constants.EventOrderStatusChanged
	noPhone.Status = entity.OrderStatusDelivered
	noPhone.CustomerPhone = ""
	assert.Equal(t, http.StatusOK, fx.push(pushBody(t, noPhone)).Code)

	pending := createdEvent()
	pending.Type = constants.EventOrderStatusChanged
	assert.Equal(t, http.StatusOK, fx.push(pushBody(t, pending)).Code)
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	fx := createTestPushHandler(t)

	assert.Equal(t, http.StatusBadRequest, fx.push([]byte(`{"message":`)).Code)
	assert.Equal(t, http.StatusBadRequest, fx.push([]byte(`{"message":{"data":"%%%"}}`)).Code)

	notJSON := base64.StdEncoding.EncodeToString([]byte("not json"))
	assert.Equal(t, http.StatusBadRequest, fx.push([]byte(`{"message":{"data":"`+notJSON+`"}}`)).Code)
}

func TestPushHandler_RejectsUnverifiedPush(t *testing.T) {
	fx := createTestPushHandler(t)
	fx.handler.verify = func(*http.Request) error { return errors.New("missing authorization header") }

	rec := fx.push(pushBody(t, createdEvent()))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStatusMessage(t *testing.T) {
	event := &service.OrderEvent{OrderID: "TP1"}

	for _, status := range entity.AllOrderStatuses() {
		event.Status = status
		msg := statusMessage("", event)
		if status == entity.OrderStatusPending {
			assert.Empty(t, msg)

			continue
		}
		assert.Contains(t, msg, "TP1", status)
	}
}
