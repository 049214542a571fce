package worker

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"orderbot/config"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestEcho(ping func(context.Context) error) *echo.Echo {
	cfg := &config.Config{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	push := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	return newEcho(cfg, logger, push, ping)
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestWorkerServer_Ready(t *testing.T) {
	up := newTestEcho(func(context.Context) error { return nil })
	assert.Equal(t, http.StatusOK, serve(up, http.MethodGet, "/ready", "").Code)

	down := newTestEcho(func(context.Context) error { return errors.New("connection refused") })
	rec := serve(down, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "database unavailable")
	assert.Equal(t, http.StatusOK, serve(down, http.MethodGet, "/health", "").Code)
}

func TestWorkerServer_Push(t *testing.T) {
	e := newTestEcho(func(context.Context) error { return nil })

	rec := serve(e, http.MethodPost, "/push", `{"message":{}}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	big := `{"message":{"data":"` + strings.Repeat("a", 300<<10) + `"}}`
	assert.Equal(t, http.StatusRequestEntityTooLarge, serve(e, http.MethodPost, "/push", big).Code)
}
