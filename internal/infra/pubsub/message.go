package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"orderbot/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Attribute keys set on every published message.
const (
	AttrEventType = "event_type"
	AttrOrderID   = "order_id"
	AttrRequestID = "request_id"
)

// PushMessage is the envelope a Pub/Sub push subscription POSTs to the worker.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// Event decodes the order event carried in the envelope.
func (m *PushMessage) Event() (*service.OrderEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "message data is not base64")
	}

	var event service.OrderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "message data is not an order event")
	}

	return &event, nil
}

// RequestID is the request_id attribute, or empty.
func (m *PushMessage) RequestID() string {
	return m.Message.Attributes[AttrRequestID]
}

func encodeEvent(event *service.OrderEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to encode %s event for order %s", event.Type, event.OrderID)
	}

	attrs := map[string]string{
		AttrEventType: event.Type,
		AttrOrderID:   event.OrderID,
	}
	if event.RequestID != "" {
		attrs[AttrRequestID] = event.RequestID
	}

	return data, attrs, nil
}

func newPushMessage(subscription string, event *service.OrderEvent, now time.Time) (*PushMessage, error) {
	data, attrs, err := encodeEvent(event)
	if err != nil {
		return nil, err
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attrs
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = now.UTC().Format(time.RFC3339Nano)

	return msg, nil
}
