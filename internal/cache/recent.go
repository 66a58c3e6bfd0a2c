package cache

import (
	"sync"
	"time"
)

// DefaultRecentTTL is the freshness window for dashboard values.
const DefaultRecentTTL = 5 * time.Minute

// RecentCache holds a single value that is fresh for a fixed window.
type RecentCache[T any] struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	value T
	at    time.Time
	set   bool
}

// NewRecent creates a RecentCache. A non-positive ttl uses
// DefaultRecentTTL; a nil now uses time.Now.
func NewRecent[T any](ttl time.Duration, now func() time.Time) *RecentCache[T] {
	if ttl <= 0 {
		ttl = DefaultRecentTTL
	}
	if now == nil {
		now = time.Now
	}
	return &RecentCache[T]{ttl: ttl, now: now}
}

// Get returns the value if it was set within the window.
func (r *RecentCache[T]) Get() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.set || r.now().Sub(r.at) >= r.ttl {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Set stores v and restarts the window.
func (r *RecentCache[T]) Set(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = v
	r.at = r.now()
	r.set = true
}

// Invalidate forgets the stored value.
func (r *RecentCache[T]) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero T
	r.value = zero
	r.set = false
}
