// Package metrics exposes conversation, order and HTTP counters to Prometheus.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"orderbot/config"
	"orderbot/internal/domain/entity"
	"orderbot/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "orderbot"

// Recorder owns a private registry so tests and multiple fx apps never collide
// on the global one.
type Recorder struct {
	registry *prometheus.Registry

	messagesHandled *prometheus.CounterVec
	messagesDropped *prometheus.CounterVec
	ordersPlaced    prometheus.Counter
	ordersFailed    prometheus.Counter
	orderValue      prometheus.Histogram
	httpDuration    *prometheus.HistogramVec
}

// NewRecorder registers the bot's collectors along with the Go runtime and process collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		messagesHandled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_handled_total",
			Help:      "Inbound messages processed, by starting conversation state and reply kind.",
		}, []string{"state", "reply"}),
		messagesDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_dropped_total",
			Help:      "Inbound messages ignored before reaching the state machine.",
		}, []string{"reason"}),
		ordersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Orders finalized through the chat.",
		}),
		ordersFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_failed_total",
			Help:      "Checkouts that could not be persisted.",
		}),
		orderValue: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_value_dollars",
			Help:      "Order totals including delivery.",
			Buckets:   []float64{10, 20, 30, 50, 75, 100, 150, 250},
		}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.messagesHandled,
		r.messagesDropped,
		r.ordersPlaced,
		r.ordersFailed,
		r.orderValue,
		r.httpDuration,
	)

	return r
}

func (r *Recorder) MessageHandled(state entity.ConversationState, reply entity.ReplyKind) {
	r.messagesHandled.WithLabelValues(state.String(), string(reply)).Inc()
}

func (r *Recorder) MessageDropped(reason string) {
	r.messagesDropped.WithLabelValues(reason).Inc()
}

func (r *Recorder) OrderPlaced(total entity.Money) {
	r.ordersPlaced.Inc()
	r.orderValue.Observe(total.Float64())
}

func (r *Recorder) OrderFailed() {
	r.ordersFailed.Inc()
}

// ObserveHTTP records one served request. route is the registered path pattern.
func (r *Recorder) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	r.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// RegisterDB exports connection pool stats for db.
func (r *Recorder) RegisterDB(db *sql.DB) {
	r.registry.MustRegister(collectors.NewDBStatsCollector(db, namespace))
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	})
}

// nopRecorder is used when metrics are disabled.
type nopRecorder struct{}

func (nopRecorder) MessageHandled(entity.ConversationState, entity.ReplyKind) {}
func (nopRecorder) MessageDropped(string)                                     {}
func (nopRecorder) OrderPlaced(entity.Money)                                  {}
func (nopRecorder) OrderFailed()                                              {}

// NewMetricsRecorder returns the Prometheus recorder, or a no-op one when
// metrics are disabled. The concrete recorder is also returned so the router
// can mount its handler; it is nil when disabled.
func NewMetricsRecorder(cfg *config.Config) (service.MetricsRecorder, *Recorder) {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return nopRecorder{}, nil
	}
	recorder := NewRecorder()

	return recorder, recorder
}
