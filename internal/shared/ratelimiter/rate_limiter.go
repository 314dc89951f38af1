// Package ratelimiter provides a fixed-window attempt limiter keyed by an
// arbitrary string, used to throttle repeated login attempts per client.
package ratelimiter

import (
	"sync"
	"time"
)

// LimiterInterface is the interface for per-key attempt limiting.
type LimiterInterface interface {
	Allow(key string) bool
}

// Limiter counts attempts per key within a fixed window. Once the limit is
// reached, further attempts are rejected until the window rolls over.
type Limiter struct {
	limit    int           // attempts allowed per window
	interval time.Duration // window length

	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count   int
	started time.Time
}

// NewLimiter creates a new Limiter allowing limit attempts per interval.
func NewLimiter(limit int, interval time.Duration) *Limiter {
	return &Limiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
	}
}

// Allow reports whether another attempt for key fits in the current window,
// counting it if so.
func (l *Limiter) Allow(key string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.prune(now)

	w, ok := l.windows[key]
	if !ok || now.Sub(w.started) >= l.interval {
		l.windows[key] = &window{count: 1, started: now}
		return true
	}

	if w.count >= l.limit {
		return false
	}
	w.count++
	return true
}

// prune drops windows that have rolled over so the map does not grow with
// every client ever seen. Caller holds the lock.
func (l *Limiter) prune(now time.Time) {
	for key, w := range l.windows {
		if now.Sub(w.started) >= l.interval {
			delete(l.windows, key)
		}
	}
}
