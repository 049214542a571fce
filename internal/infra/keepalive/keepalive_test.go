package keepalive

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPinger_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	logger := slog.New(slog.DiscardHandler)

	require.NoError(t, NewPinger(server.URL+"/health", time.Minute, logger).Ping(t.Context()))
	require.Error(t, NewPinger(server.URL+"/missing", time.Minute, logger).Ping(t.Context()))
}

func TestPinger_StartStop(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	p := NewPinger(server.URL, 10*time.Millisecond, slog.New(slog.DiscardHandler))
	p.Start(t.Context())

	assert.Eventually(t, func() bool { return hits.Load() >= 2 }, time.Second, 5*time.Millisecond)

	p.Stop()
	stopped := hits.Load()
	time.Sleep(50 * time.Millisecond)
	// A request cancelled mid-flight may still reach the server once.
	assert.LessOrEqual(t, hits.Load(), stopped+1)
}
