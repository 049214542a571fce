package whatsapp

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// WebhookPayload is the notification body Meta posts for a WhatsApp Business account.
type WebhookPayload struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

type WebhookEntry struct {
	ID      string          `json:"id"`
	Changes []WebhookChange `json:"changes"`
}

type WebhookChange struct {
	Field string       `json:"field"`
	Value WebhookValue `json:"value"`
}

type WebhookValue struct {
	MessagingProduct string           `json:"messaging_product"`
	Contacts         []WebhookContact `json:"contacts"`
	Messages         []WebhookMessage `json:"messages"`
}

type WebhookContact struct {
	WaID    string `json:"wa_id"`
	Profile struct {
		Name string `json:"name"`
	} `json:"profile"`
}

type WebhookMessage struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
	Text      *struct {
		Body string `json:"body"`
	} `json:"text,omitempty"`
	// GroupID is set for messages posted in a group chat.
	GroupID string `json:"group_id,omitempty"`
}

// InboundText is a text message from one customer, ready for the state machine.
type InboundText struct {
	MessageID   string
	From        string
	ProfileName string
	Text        string
	SentAt      time.Time
}

// Skipped counts messages the parser filtered out, by reason.
type Skipped map[string]int

// ParseWebhook decodes a notification body and keeps one-to-one text messages.
// Status updates, media, and group messages are counted in Skipped.
func ParseWebhook(body []byte) ([]InboundText, Skipped, error) {
	var payload WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, nil, errors.Wrap(err, "invalid webhook payload")
	}

	var texts []InboundText
	skipped := Skipped{}
	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			names := make(map[string]string, len(change.Value.Contacts))
			for _, contact := range change.Value.Contacts {
				names[contact.WaID] = contact.Profile.Name
			}

			for _, msg := range change.Value.Messages {
				switch {
				case msg.GroupID != "":
					skipped["group"]++
				case msg.Type != "text" || msg.Text == nil:
					skipped["non_text"]++
				case strings.TrimSpace(msg.From) == "":
					skipped["no_sender"]++
				default:
					texts = append(texts, InboundText{
						MessageID:   msg.ID,
						From:        msg.From,
						ProfileName: names[msg.From],
						Text:        msg.Text.Body,
						SentAt:      parseUnixSeconds(msg.Timestamp),
					})
				}
			}
		}
	}

	return texts, skipped, nil
}

func parseUnixSeconds(raw string) time.Time {
	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || seconds <= 0 {
		return time.Time{}
	}

	return time.Unix(seconds, 0).UTC()
}
