package handler

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type senderEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// senderLimiter keeps one token bucket per WhatsApp sender. Buckets idle for
// longer than idleTTL are evicted on the next sweep.
type senderLimiter struct {
	mu        sync.Mutex
	senders   map[string]*senderEntry
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newSenderLimiter(perSecond float64, burst int, idleTTL time.Duration) *senderLimiter {
	return &senderLimiter{
		senders: make(map[string]*senderEntry),
		limit:   rate.Limit(perSecond),
		burst:   burst,
		idleTTL: idleTTL,
		now:     time.Now,
	}
}

// Allow consumes one token from the sender's bucket.
func (l *senderLimiter) Allow(sender string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	entry, ok := l.senders[sender]
	if !ok {
		entry = &senderEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.senders[sender] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

func (l *senderLimiter) sweep(now time.Time) {
	if l.idleTTL <= 0 || now.Sub(l.lastSweep) < l.idleTTL {
		return
	}
	l.lastSweep = now

	for sender, entry := range l.senders {
		if now.Sub(entry.lastSeen) > l.idleTTL {
			delete(l.senders, sender)
		}
	}
}

func (l *senderLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.senders)
}
