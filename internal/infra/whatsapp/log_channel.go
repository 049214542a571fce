package whatsapp

import (
	"context"
	"log/slog"
)

// logChannel only logs outbound messages, for development without Cloud API credentials
type logChannel struct {
	logger *slog.Logger
}

func (c *logChannel) SendText(_ context.Context, to, body string) error {
	c.logger.Info("[WhatsApp] Outbound text",
		slog.String("to", to),
		slog.String("body", body),
	)

	return nil
}

func (c *logChannel) SendImage(_ context.Context, to, imageURL, caption string) error {
	c.logger.Info("[WhatsApp] Outbound image",
		slog.String("to", to),
		slog.String("url", imageURL),
		slog.String("caption", caption),
	)

	return nil
}
