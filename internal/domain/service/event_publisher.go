package service

import (
	"context"
	"time"

	"orderbot/internal/domain/entity"
)

// OrderEvent is published when an order is placed or changes status and is
// consumed by the order worker.
type OrderEvent struct {
	RequestID      string             `json:"request_id,omitempty"` // For distributed tracing
	Type           string             `json:"type"`                 // constants.EventOrderCreated or EventOrderStatusChanged
	OrderID        string             `json:"order_id"`             // Human-readable order id
	CustomerPhone  string             `json:"customer_phone"`
	Status         entity.OrderStatus `json:"status"`
	PreviousStatus entity.OrderStatus `json:"previous_status,omitempty"`
	TotalAmount    entity.Money       `json:"total_amount"`
	ItemCount      int                `json:"item_count"`
	Address        string             `json:"address,omitempty"`
	OccurredAt     time.Time          `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
