package whatsapp

import (
	"context"
	"log/slog"

	deliverycontext "orderbot/internal/delivery/context"
	"orderbot/internal/domain/entity"
	"orderbot/internal/domain/service"
)

type presenter struct {
	channel  service.MessagingChannel
	renderer service.ReplyRenderer
	logger   *slog.Logger
}

// NewPresenter sends the reply image first, when there is one, then the text.
func NewPresenter(channel service.MessagingChannel, renderer service.ReplyRenderer, logger *slog.Logger) service.OutboundPresenter {
	return &presenter{channel: channel, renderer: renderer, logger: logger}
}

func (p *presenter) Present(ctx context.Context, to string, reply *entity.Reply) {
	if reply == nil {
		return
	}
	log := deliverycontext.GetLoggerOrDefault(ctx, p.logger)

	if reply.Image != nil && reply.Image.URL != "" {
		if err := p.channel.SendImage(ctx, to, reply.Image.URL, reply.Image.Caption); err != nil {
			log.Warn("Failed to send reply image",
				slog.String("to", to),
				slog.String("kind", string(reply.Kind)),
				slog.Any("error", err),
			)
		}
	}

	text := p.renderer.Render(reply)
	if text == "" {
		return
	}
	if err := p.channel.SendText(ctx, to, text); err != nil {
		log.Error("Failed to send reply",
			slog.String("to", to),
			slog.String("kind", string(reply.Kind)),
			slog.Any("error", err),
		)
	}
}
