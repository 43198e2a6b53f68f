package security

import (
	"sync"
	"time"
)

// Defaults used when a limiter is built with non-positive settings.
const (
	DefaultMaxRequests = 10
	DefaultWindow      = 60 * time.Second
)

// RateLimiter is a sliding-log limiter keyed by operation name.
//
// It only throttles this client. The store must enforce its own limits.
type RateLimiter struct {
	maxRequests int
	window      time.Duration
	now         func() time.Time

	mu       sync.Mutex
	requests map[string][]time.Time
}

// RateLimiterOption configures a RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.now = now
	}
}

// NewRateLimiter allows at most maxRequests calls per key within any trailing
// window.
func NewRateLimiter(maxRequests int, window time.Duration, opts ...RateLimiterOption) *RateLimiter {
	if maxRequests <= 0 {
		maxRequests = DefaultMaxRequests
	}
	if window <= 0 {
		window = DefaultWindow
	}
	r := &RateLimiter{
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
		requests:    make(map[string][]time.Time),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Allow evicts timestamps older than the window for key and records a new one
// if fewer than maxRequests remain.
func (r *RateLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	kept := r.requests[key][:0]
	for _, t := range r.requests[key] {
		if now.Sub(t) < r.window {
			kept = append(kept, t)
		}
	}

	if len(kept) >= r.maxRequests {
		r.requests[key] = kept
		return false
	}

	kept = append(kept, now)
	r.requests[key] = kept
	return true
}

// Pending returns how many calls for key are still inside the window.
func (r *RateLimiter) Pending(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	n := 0
	for _, t := range r.requests[key] {
		if now.Sub(t) < r.window {
			n++
		}
	}
	return n
}
