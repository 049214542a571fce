// Package keepalive pings the service's own health URL so idle hosting plans
// do not put it to sleep.
package keepalive

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"orderbot/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const pingTimeout = 10 * time.Second

// Pinger issues a GET against url every interval until stopped.
type Pinger struct {
	url        string
	interval   time.Duration
	httpClient *http.Client
	logger     *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPinger creates a stopped pinger.
func NewPinger(url string, interval time.Duration, logger *slog.Logger) *Pinger {
	return &Pinger{
		url:        url,
		interval:   interval,
		httpClient: &http.Client{Timeout: pingTimeout},
		logger:     logger,
	}
}

// Start launches the ping loop.
func (p *Pinger) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := p.Ping(ctx); err != nil {
					p.logger.Warn("Keep-alive ping failed", slog.String("url", p.url), slog.Any("error", err))
				}
			}
		}
	}()
}

// Stop ends the loop and waits for an in-flight ping.
func (p *Pinger) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
}

// Ping performs a single request. Any non-2xx status is an error.
func (p *Pinger) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return errors.WithStack(err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("health check returned status %d", resp.StatusCode)
	}
	p.logger.Debug("Keep-alive ping ok", slog.String("url", p.url))

	return nil
}

// Register hooks the pinger into the fx lifecycle when enabled.
func Register(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) {
	ka := cfg.KeepAlive
	if ka == nil || !ka.Enabled || ka.URL == "" || ka.Interval <= 0 {
		return
	}

	pinger := NewPinger(ka.URL, ka.Interval, logger)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("Keep-alive enabled",
				slog.String("url", ka.URL),
				slog.Duration("interval", ka.Interval),
			)
			pinger.Start(context.Background())

			return nil
		},
		OnStop: func(_ context.Context) error {
			pinger.Stop()

			return nil
		},
	})
}
