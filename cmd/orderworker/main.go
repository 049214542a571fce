// Command orderworker consumes order events pushed by Pub/Sub: new orders
// alert staff devices, status changes are relayed to the customer on WhatsApp.
package main

import (
	"context"
	"log/slog"

	"orderbot/config"
	"orderbot/internal/delivery"
	"orderbot/internal/delivery/worker"
	"orderbot/internal/delivery/worker/handler"
	"orderbot/internal/infra/keepalive"
	logs "orderbot/internal/infra/log"
	"orderbot/internal/infra/notification"
	"orderbot/internal/infra/persistence/postgres"
	"orderbot/internal/infra/whatsapp"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewStaffDeviceRepository,
			notification.NewNotificationService,
			whatsapp.NewMessagingChannel,
			handler.NewPushHandler,
			worker.NewServer,
		),
		fx.Invoke(
			keepalive.Register,
			serve,
		),
	).Run()
}

// serve runs the push endpoint until it fails, then shuts the app down so
// OnStop hooks close the database and the HTTP server.
func serve(ctx context.Context, srv delivery.Delivery, logger *slog.Logger, shutdowner fx.Shutdowner) {
	go func() {
		err := srv.Serve(ctx)
		if err == nil {
			return
		}

		logger.Error("Worker server stopped", slog.Any("error", err))
		if err := shutdowner.Shutdown(fx.ExitCode(1)); err != nil {
			logger.Error("Failed to request shutdown", slog.Any("error", err))
		}
	}()
}
