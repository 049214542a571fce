package main

import (
	"context"
	"log/slog"
	"os"

	"orderbot/config"
	"orderbot/internal/delivery"
	"orderbot/internal/delivery/api"
	"orderbot/internal/delivery/api/router/handler"
	"orderbot/internal/domain/service"
	"orderbot/internal/infra/cache"
	"orderbot/internal/infra/keepalive"
	logs "orderbot/internal/infra/log"
	"orderbot/internal/infra/metrics"
	"orderbot/internal/infra/notification"
	"orderbot/internal/infra/persistence/postgres"
	"orderbot/internal/infra/pubsub"
	"orderbot/internal/infra/qrcode"
	"orderbot/internal/infra/receipt"
	"orderbot/internal/infra/storage"
	"orderbot/internal/infra/whatsapp"
	"orderbot/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			keepalive.Register,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		cache.Module,
		pubsub.Module,
		storage.Module,
		whatsapp.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCustomerRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewStaffDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			metrics.NewMetricsRecorder,
			notification.NewNotificationService,
			newQRCodeService,
			receipt.NewPDFReceiptRenderer,
		),
	)
}

// newQRCodeService applies defaults when the qrcode section is absent
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCheckoutService,
			impl.NewConversationService,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewCustomerService,
			impl.NewDashboardService,
			impl.NewStaffDeviceService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewWebhookHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
			handler.NewCustomerHandler,
			handler.NewDashboardHandler,
			handler.NewStaffDeviceHandler,
			handler.NewAssetHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
