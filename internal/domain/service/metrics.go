package service

import "orderbot/internal/domain/entity"

// MetricsRecorder counts conversation and order outcomes.
type MetricsRecorder interface {
	// MessageHandled counts one processed inbound message by the state it
	// started in and the reply it produced.
	MessageHandled(state entity.ConversationState, reply entity.ReplyKind)

	// MessageDropped counts inbound messages ignored before the state machine.
	MessageDropped(reason string)

	// OrderPlaced counts a finalized order and its total.
	OrderPlaced(total entity.Money)

	// OrderFailed counts a checkout that could not be persisted.
	OrderFailed()
}
