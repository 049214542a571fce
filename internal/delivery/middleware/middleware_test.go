package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"orderbot/config"
	deliverycontext "orderbot/internal/delivery/context"
	domainerrors "orderbot/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_ReusesHeader(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "abc-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	err := mw.Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesOversizedHeader(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", maxRequestIDLength+1))
	rec := httptest.NewRecorder()

	require.NoError(t, mw.Process(func(echo.Context) error { return nil })(e.NewContext(req, rec)))

	got := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.Len(t, got, 36)
}

func TestRequestIDFrom(t *testing.T) {
	assert.Equal(t, "req-42", requestIDFrom("req-42"))

	for _, bad := range []string{"", "two words", "line\nbreak", "caf\u00e9"} {
		got := requestIDFrom(bad)
		assert.NotEqual(t, bad, got)
		assert.Len(t, got, 36)
	}
}

func TestLoggerMiddleware_LogsFailuresOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	mw := NewLoggerMiddleware(logger, &config.Config{})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/admin/orders/x", nil), httptest.NewRecorder())

	err := mw.Handle(func(echo.Context) error { return domainerrors.ErrOrderNotFound })(c)

	require.Error(t, err)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"status":404`)

	buf.Reset()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())
	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
	assert.Empty(t, buf.String())
}

type observation struct {
	method, route string
	status        int
}

type recordingObserver struct {
	got []observation
}

func (r *recordingObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	r.got = append(r.got, observation{method, route, status})
}

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	observer := &recordingObserver{}
	e := echo.New()
	e.Use(NewMetricsMiddleware(observer).Handle)
	e.GET("/api/admin/orders/:id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/orders/42", nil))

	require.Len(t, observer.got, 1)
	assert.Equal(t, observation{http.MethodGet, "/api/admin/orders/:id", http.StatusTeapot}, observer.got[0])
}
