// Package ratelimit implements a per-user sliding window rate limiter.
// Each user gets an independent quota of requests within a rolling time
// window; requests over the quota are rejected without being recorded.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter tracks request timestamps per user and enforces a sliding
// window quota. Safe for concurrent use.
type Limiter struct {
	mu          sync.Mutex
	maxRequests int
	window      time.Duration
	requests    map[int64][]time.Time
	now         func() time.Time
}

// New creates a limiter allowing maxRequests per user within window.
func New(maxRequests int, window time.Duration) *Limiter {
	return &Limiter{
		maxRequests: maxRequests,
		window:      window,
		requests:    make(map[int64][]time.Time),
		now:         time.Now,
	}
}

// CheckAndRecord reports whether the user is within quota and, if so,
// records the request. The check and the record happen atomically, so
// concurrent callers cannot overshoot the quota. A rejected request
// leaves the user's history untouched.
func (l *Limiter) CheckAndRecord(userID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	live := l.prune(userID, now)
	if len(live) >= l.maxRequests {
		l.requests[userID] = live
		return false
	}
	l.requests[userID] = append(live, now)
	return true
}

// WaitTime returns the number of whole seconds until the user's oldest
// recorded request leaves the window, rounded up, and whether the user
// has any recorded requests at all. It does not modify the history, so
// a stale history reports zero wait rather than losing entries.
func (l *Limiter) WaitTime(userID int64) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	history := l.requests[userID]
	if len(history) == 0 {
		return 0, false
	}
	remaining := l.window - l.now().Sub(history[0])
	if remaining <= 0 {
		return 0, true
	}
	secs := int((remaining + time.Second - 1) / time.Second)
	return secs, true
}

// prune drops timestamps that have left the window. A timestamp exactly
// window old is expired. Caller must hold mu.
func (l *Limiter) prune(userID int64, now time.Time) []time.Time {
	history := l.requests[userID]
	live := history[:0]
	for _, ts := range history {
		if now.Sub(ts) < l.window {
			live = append(live, ts)
		}
	}
	return live
}
