package security

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestRateLimiter_Window(t *testing.T) {
	clock := newFakeClock()
	limiter := NewRateLimiter(3, time.Second, WithClock(clock.Now))

	assert.True(t, limiter.Allow("k"))
	assert.True(t, limiter.Allow("k"))
	assert.True(t, limiter.Allow("k"))
	assert.False(t, limiter.Allow("k"), "fourth call inside the window must be rejected")

	clock.Advance(1001 * time.Millisecond)
	assert.True(t, limiter.Allow("k"), "calls are allowed again once the window has passed")
}

func TestRateLimiter_SlidingNotFixed(t *testing.T) {
	clock := newFakeClock()
	limiter := NewRateLimiter(2, time.Second, WithClock(clock.Now))

	assert.True(t, limiter.Allow("k")) // t=0
	clock.Advance(600 * time.Millisecond)
	assert.True(t, limiter.Allow("k")) // t=600ms
	clock.Advance(500 * time.Millisecond)
	// t=1100ms: the first call left the window, the second has not
	assert.True(t, limiter.Allow("k"))
	assert.False(t, limiter.Allow("k"))
	assert.Equal(t, 2, limiter.Pending("k"))
}

func TestRateLimiter_BoundaryIsExclusive(t *testing.T) {
	clock := newFakeClock()
	limiter := NewRateLimiter(1, time.Second, WithClock(clock.Now))

	assert.True(t, limiter.Allow("k"))
	clock.Advance(time.Second)
	// now - t == window is outside the window
	assert.True(t, limiter.Allow("k"))
}

func TestRateLimiter_RejectedCallsAreNotRecorded(t *testing.T) {
	clock := newFakeClock()
	limiter := NewRateLimiter(1, time.Second, WithClock(clock.Now))

	assert.True(t, limiter.Allow("k"))
	for i := 0; i < 5; i++ {
		clock.Advance(100 * time.Millisecond)
		assert.False(t, limiter.Allow("k"))
	}
	clock.Advance(500 * time.Millisecond)
	assert.True(t, limiter.Allow("k"))
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	clock := newFakeClock()
	limiter := NewRateLimiter(1, time.Minute, WithClock(clock.Now))

	assert.True(t, limiter.Allow("company:add"))
	assert.False(t, limiter.Allow("company:add"))
	assert.True(t, limiter.Allow("company:delete"))
}

func TestRateLimiter_Defaults(t *testing.T) {
	clock := newFakeClock()
	limiter := NewRateLimiter(0, 0, WithClock(clock.Now))

	for i := 0; i < DefaultMaxRequests; i++ {
		assert.True(t, limiter.Allow("k"))
	}
	assert.False(t, limiter.Allow("k"))

	clock.Advance(DefaultWindow)
	assert.True(t, limiter.Allow("k"))
}

func TestRateLimiter_ConcurrentNeverExceedsMax(t *testing.T) {
	clock := newFakeClock()
	limiter := NewRateLimiter(10, time.Minute, WithClock(clock.Now))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if limiter.Allow("k") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, allowed)
}
