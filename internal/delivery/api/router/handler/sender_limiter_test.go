package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSenderLimiter_PerSenderBuckets(t *testing.T) {
	now := time.Date(2026, 5, 6, 12, 0, 0, 0, time.UTC)
	l := newSenderLimiter(1, 2, time.Hour)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("15550001111"))
	assert.True(t, l.Allow("15550001111"))
	assert.False(t, l.Allow("15550001111"), "burst exhausted")
	assert.True(t, l.Allow("15550002222"), "other senders are unaffected")

	now = now.Add(time.Second)
	assert.True(t, l.Allow("15550001111"), "refilled after one second")
}

func TestSenderLimiter_EvictsIdleSenders(t *testing.T) {
	now := time.Date(2026, 5, 6, 12, 0, 0, 0, time.UTC)
	l := newSenderLimiter(1, 1, time.Minute)
	l.now = func() time.Time { return now }

	l.Allow("a")
	now = now.Add(30 * time.Second)
	l.Allow("b")
	assert.Equal(t, 2, l.size())

	now = now.Add(2 * time.Minute)
	l.Allow("c")
	assert.Equal(t, 1, l.size())
}
