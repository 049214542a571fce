package whatsapp

import (
	"log/slog"

	"orderbot/config"
	"orderbot/internal/domain/constants"
	"orderbot/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ChannelParams holds dependencies for MessagingChannel, injected by Fx
type ChannelParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMessagingChannel creates a MessagingChannel based on configuration
func NewMessagingChannel(params ChannelParams) (service.MessagingChannel, error) {
	cfg := params.Config.WhatsApp
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.MessagingProviderLog {
		logger.Info("WhatsApp Cloud API not configured, logging outbound messages")

		return &logChannel{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.MessagingProviderCloud:
		logger.Info("Using WhatsApp Cloud API channel",
			slog.String("phone_number_id", cfg.PhoneNumberID),
			slog.String("api_version", cfg.APIVersion),
		)

		return NewCloudChannel(cfg, logger)
	default:
		return nil, errors.Errorf("unknown whatsapp provider: %s", cfg.Provider)
	}
}

// Module provides the WhatsApp FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewMessagingChannel,
		NewTextRenderer,
		NewPresenter,
	),
)
