package service

import (
	"context"

	"orderbot/internal/domain/entity"
)

// MessagingChannel delivers raw messages to a WhatsApp recipient.
type MessagingChannel interface {
	SendText(ctx context.Context, to, body string) error
	SendImage(ctx context.Context, to, imageURL, caption string) error
}

// OutboundPresenter renders a reply and delivers it. Delivery failures are
// logged by the presenter and never returned.
type OutboundPresenter interface {
	Present(ctx context.Context, to string, reply *entity.Reply)
}

// ReplyRenderer turns a reply payload into message text.
type ReplyRenderer interface {
	Render(reply *entity.Reply) string
}
