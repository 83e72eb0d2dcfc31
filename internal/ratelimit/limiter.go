package ratelimit

import (
	"sync"
	"time"
)

const (
	// DefaultLimit is the request budget per identity per window.
	DefaultLimit = 20
	// DefaultWindow is the fixed-window length.
	DefaultWindow = 60 * time.Second

	// pruneThreshold bounds memory: once the bucket table grows past this
	// size, expired buckets are dropped before the next lookup.
	pruneThreshold = 10_000
)

type bucket struct {
	count   int
	resetAt time.Time
}

// Limiter is a fixed-window rate limiter keyed by client identity.
// The first request in a window starts the window; when it expires the
// bucket is replaced rather than decayed.
type Limiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	buckets map[string]*bucket
	now     func() time.Time
}

func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		limit:   limit,
		window:  window,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Allow reports whether the identity still has budget in the current
// window, consuming one unit when it does.
func (l *Limiter) Allow(identity string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	if len(l.buckets) > pruneThreshold {
		for k, b := range l.buckets {
			if now.After(b.resetAt) {
				delete(l.buckets, k)
			}
		}
	}

	b, ok := l.buckets[identity]
	if !ok || now.After(b.resetAt) {
		l.buckets[identity] = &bucket{count: 1, resetAt: now.Add(l.window)}
		return true
	}

	if b.count >= l.limit {
		return false
	}
	b.count++
	return true
}
