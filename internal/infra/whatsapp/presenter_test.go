package whatsapp

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"orderbot/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

type sentMessage struct {
	kind    string
	to      string
	body    string
	caption string
}

type recordingChannel struct {
	sent     []sentMessage
	imageErr error
	textErr  error
}

func (c *recordingChannel) SendText(_ context.Context, to, body string) error {
	c.sent = append(c.sent, sentMessage{kind: "text", to: to, body: body})

	return c.textErr
}

func (c *recordingChannel) SendImage(_ context.Context, to, imageURL, caption string) error {
	c.sent = append(c.sent, sentMessage{kind: "image", to: to, body: imageURL, caption: caption})

	return c.imageErr
}

func TestPresenter_SendsImageBeforeText(t *testing.T) {
	channel := &recordingChannel{}
	p := NewPresenter(channel, newTestRenderer(), slog.New(slog.DiscardHandler))

	item := entity.ItemSnapshot{Name: "Caesar", Category: entity.CategorySalads}
	p.Present(t.Context(), "155500", &entity.Reply{
		Kind:  entity.ReplyProductDetails,
		Item:  &item,
		Image: &entity.ImageAttachment{URL: "https://img.example/c.jpg", Caption: "Caesar"},
	})

	if assert.Len(t, channel.sent, 2) {
		assert.Equal(t, "image", channel.sent[0].kind)
		assert.Equal(t, "https://img.example/c.jpg", channel.sent[0].body)
		assert.Equal(t, "text", channel.sent[1].kind)
		assert.Contains(t, channel.sent[1].body, "*Caesar*")
	}
}

func TestPresenter_ImageFailureStillSendsText(t *testing.T) {
	channel := &recordingChannel{imageErr: errors.New("media rejected")}
	p := NewPresenter(channel, newTestRenderer(), slog.New(slog.DiscardHandler))

	p.Present(t.Context(), "155500", &entity.Reply{
		Kind:  entity.ReplyMainMenu,
		Image: &entity.ImageAttachment{URL: "https://img.example/x.jpg"},
	})

	assert.Len(t, channel.sent, 2)
}

func TestPresenter_TextFailureIsSwallowed(t *testing.T) {
	channel := &recordingChannel{textErr: errors.New("down")}
	p := NewPresenter(channel, newTestRenderer(), slog.New(slog.DiscardHandler))

	assert.NotPanics(t, func() {
		p.Present(t.Context(), "155500", entity.NewReply(entity.ReplyMainMenu))
	})
	assert.Len(t, channel.sent, 1)
}

func TestPresenter_NilReply(t *testing.T) {
	channel := &recordingChannel{}
	p := NewPresenter(channel, newTestRenderer(), slog.New(slog.DiscardHandler))

	p.Present(t.Context(), "155500", nil)

	assert.Empty(t, channel.sent)
}
