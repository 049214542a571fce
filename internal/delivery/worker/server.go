package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"orderbot/config"
	"orderbot/internal/delivery"
	"orderbot/internal/delivery/middleware"
	"orderbot/internal/delivery/worker/handler"
	"orderbot/internal/domain/lifecycle"
	"orderbot/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// pushBodyLimit is comfortably above the Pub/Sub push envelope for an order event.
const pushBodyLimit = "256K"

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	DB          *gorm.DB
	PushHandler *handler.PushHandler
}

type workerServer struct {
	port   int
	logger *slog.Logger
	echo   *echo.Echo
}

// NewServer creates the order worker HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	sqlDB, err := params.DB.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB for readiness")
	}

	srv := &workerServer{
		port:   params.Cfg.HTTP.Port,
		logger: params.Logger,
		echo:   newEcho(params.Cfg, params.Logger, params.PushHandler.HandlePush, sqlDB.PingContext),
	}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

// newEcho routes /push to push. /ready answers 503 while ping fails so the
// platform stops routing pushes to an instance without a database.
func newEcho(cfg *config.Config, logger *slog.Logger, push echo.HandlerFunc, ping func(context.Context) error) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/ready", func(c echo.Context) error {
		if err := ping(c.Request().Context()); err != nil {
			logger.Warn("[Worker] Database not ready", slog.Any("error", err))

			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "database unavailable"})
		}

		return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
	})

	e.POST("/push", push, echomiddleware.BodyLimit(pushBodyLimit))

	return e
}

// Serve blocks until the server is shut down.
func (s *workerServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Worker listening", slog.String("host_port", hostPort))

	if err := s.echo.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	return errors.WithStack(s.echo.Shutdown(ctx))
}
