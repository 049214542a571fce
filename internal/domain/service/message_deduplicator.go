package service

import "context"

// MessageDeduplicator suppresses redelivered inbound messages.
type MessageDeduplicator interface {
	// FirstSeen reports true the first time a message id is offered.
	FirstSeen(ctx context.Context, messageID string) (bool, error)
}
