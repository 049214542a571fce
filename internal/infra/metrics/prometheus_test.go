package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orderbot/config"
	"orderbot/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counters(t *testing.T) {
	r := NewRecorder()

	r.MessageHandled(entity.StateMainMenu, entity.ReplyCategoryMenu)
	r.MessageHandled(entity.StateMainMenu, entity.ReplyCategoryMenu)
	r.MessageDropped("duplicate")
	r.OrderPlaced(2499)
	r.OrderFailed()

	assert.InDelta(t, 2, testutil.ToFloat64(r.messagesHandled.WithLabelValues("main_menu", "category_menu")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.messagesDropped.WithLabelValues("duplicate")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.ordersPlaced), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.ordersFailed), 0)
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.OrderPlaced(1000)
	r.ObserveHTTP(http.MethodPost, "/webhook", http.StatusOK, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "orderbot_orders_placed_total 1")
	assert.Contains(t, string(body), `orderbot_http_request_duration_seconds_count{method="POST",route="/webhook",status="200"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNewMetricsRecorder_Disabled(t *testing.T) {
	recorder, concrete := NewMetricsRecorder(&config.Config{})

	assert.Nil(t, concrete)
	assert.NotPanics(t, func() {
		recorder.MessageHandled(entity.StateCartView, entity.ReplyCart)
		recorder.OrderPlaced(100)
	})

	recorder, concrete = NewMetricsRecorder(&config.Config{Metrics: &config.MetricsConfig{Enabled: true}})
	assert.NotNil(t, concrete)
	assert.Same(t, concrete, recorder)
}
