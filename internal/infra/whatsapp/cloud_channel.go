package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"orderbot/config"
	"orderbot/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultAPIBaseURL = "https://graph.facebook.com"
	defaultAPIVersion = "v21.0"
	defaultTimeout    = 10 * time.Second

	// maxErrorBody bounds how much of a failed response is kept in the error.
	maxErrorBody = 1024
)

// cloudChannel sends messages through the WhatsApp Cloud API
type cloudChannel struct {
	endpoint    string
	accessToken string
	httpClient  *http.Client
	logger      *slog.Logger
}

type textPayload struct {
	Body       string `json:"body"`
	PreviewURL bool   `json:"preview_url"`
}

type imagePayload struct {
	Link    string `json:"link"`
	Caption string `json:"caption,omitempty"`
}

type outboundMessage struct {
	MessagingProduct string        `json:"messaging_product"`
	RecipientType    string        `json:"recipient_type"`
	To               string        `json:"to"`
	Type             string        `json:"type"`
	Text             *textPayload  `json:"text,omitempty"`
	Image            *imagePayload `json:"image,omitempty"`
}

// NewCloudChannel creates a channel posting to {base}/{version}/{phoneNumberID}/messages
func NewCloudChannel(cfg *config.WhatsAppConfig, logger *slog.Logger) (service.MessagingChannel, error) {
	if cfg.PhoneNumberID == "" {
		return nil, errors.New("phone number id is required for cloud provider")
	}
	if cfg.AccessToken == "" {
		return nil, errors.New("access token is required for cloud provider")
	}

	baseURL := cfg.APIBaseURL
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}
	version := cfg.APIVersion
	if version == "" {
		version = defaultAPIVersion
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &cloudChannel{
		endpoint:    fmt.Sprintf("%s/%s/%s/messages", strings.TrimRight(baseURL, "/"), version, cfg.PhoneNumberID),
		accessToken: cfg.AccessToken,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      logger,
	}, nil
}

func (c *cloudChannel) SendText(ctx context.Context, to, body string) error {
	return c.send(ctx, &outboundMessage{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
		Text:             &textPayload{Body: body},
	})
}

func (c *cloudChannel) SendImage(ctx context.Context, to, imageURL, caption string) error {
	return c.send(ctx, &outboundMessage{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "image",
		Image:            &imagePayload{Link: imageURL, Caption: caption},
	})
}

func (c *cloudChannel) send(ctx context.Context, msg *outboundMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to send %s message", msg.Type)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return errors.Errorf("whatsapp api returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	c.logger.Debug("[WhatsApp] Message sent",
		slog.String("type", msg.Type),
		slog.String("to", msg.To),
	)

	return nil
}
