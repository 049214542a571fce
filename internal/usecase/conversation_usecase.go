// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"orderbot/internal/domain/entity"
)

// InboundMessage is one text message from an individual WhatsApp sender.
type InboundMessage struct {
	MessageID   string
	From        string
	ProfileName string
	Text        string
	ReceivedAt  time.Time
}

// ConversationUsecase drives the WhatsApp ordering dialogue.
type ConversationUsecase interface {
	// HandleMessage advances the sender's conversation by one turn. A nil reply
	// means the message was ignored.
	HandleMessage(ctx context.Context, msg *InboundMessage) (*entity.Reply, error)

	// ReceiveMessage drops redelivered messages, handles the rest and presents
	// the reply to the sender. Processing failures become a generic error reply.
	ReceiveMessage(ctx context.Context, msg *InboundMessage) error
}
