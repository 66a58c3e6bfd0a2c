// Package cache memoizes normalized query results until explicitly
// invalidated.
package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/yairfalse/onevision/internal/telemetry"
	"github.com/yairfalse/onevision/pkg/metric"
	"github.com/yairfalse/onevision/pkg/resource"
)

// Key names a query shape.
type Key string

// KeyAll and KeyMetrics are the two fixed keys.
const (
	KeyAll     Key = "all"
	KeyMetrics Key = "metrics"
)

// TypeKey keys resources of one kind.
func TypeKey(k resource.Kind) Key { return Key("type:" + string(k)) }

// RegionKey keys resources in one region.
func RegionKey(region string) Key { return Key("region:" + region) }

// AccountKey keys resources in one account.
func AccountKey(id string) Key { return Key("account:" + id) }

// Entry is an immutable query result. Callers must not modify the slices.
type Entry struct {
	Resources []resource.Resource
	Metrics   []metric.Metric
	FetchedAt time.Time
	Partial   bool
}

// Loader produces the entry for a key on a miss.
type Loader func(ctx context.Context) (Entry, error)

// Cache holds one Entry per key with no expiry. Concurrent loads of the
// same key share a single Loader call, and a load that started before
// InvalidateAll is never stored.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]Entry
	epoch   uint64
	group   singleflight.Group
	flights map[string]*flight

	log zerolog.Logger
	tel telemetry.Recorder
}

// New creates an empty cache.
func New(log zerolog.Logger, tel telemetry.Recorder) *Cache {
	if tel == nil {
		tel = telemetry.Nop{}
	}
	return &Cache{
		entries: make(map[Key]Entry),
		flights: make(map[string]*flight),
		log:     log,
		tel:     tel,
	}
}

// Get returns the entry for key.
func (c *Cache) Get(key Key) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	return e, ok
}

// Set stores e under key.
func (c *Cache) Set(key Key, e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = e
}

// InvalidateAll drops every entry and starts a new epoch.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	n := len(c.entries)
	c.entries = make(map[Key]Entry)
	c.epoch++
	epoch := c.epoch
	c.mu.Unlock()

	c.log.Debug().Int("entries", n).Uint64("epoch", epoch).Msg("cache invalidated")
}

// Len returns the number of cached keys.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Load returns the cached entry for key, calling load on a miss. Callers
// that miss concurrently wait for the same load, which runs at most once
// per key per epoch. A caller whose ctx ends stops waiting and gets the
// ctx error; the shared load is cancelled only once every waiter has left.
// A loader error is returned and nothing is cached.
func (c *Cache) Load(ctx context.Context, key Key, load Loader) (Entry, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	epoch := c.epoch
	c.mu.RUnlock()

	if ok {
		c.tel.RecordCacheHit(ctx, string(key))
		c.log.Debug().Str("key", string(key)).Msg("cache hit")
		return e, nil
	}
	c.tel.RecordCacheMiss(ctx, string(key))
	c.log.Debug().Str("key", string(key)).Msg("cache miss")
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}

	name := strconv.FormatUint(epoch, 10) + "/" + string(key)
	fl := c.join(ctx, name)

	ch := c.group.DoChan(name, func() (any, error) {
		defer c.finish(name, fl)
		return c.fill(key, epoch, fl, load)
	})

	select {
	case <-ctx.Done():
		c.leave(name, fl)
		return Entry{}, ctx.Err()
	case res := <-ch:
		c.leave(name, fl)
		if res.Shared {
			c.log.Debug().Str("key", string(key)).Msg("joined in-flight load")
		}
		if res.Err != nil {
			return Entry{}, res.Err
		}
		return res.Val.(Entry), nil
	}
}

// fill runs load for key unless a flight that finished after the caller's
// miss already stored an entry in the same epoch.
func (c *Cache) fill(key Key, epoch uint64, fl *flight, load Loader) (Entry, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	current := c.epoch == epoch
	c.mu.RUnlock()
	if ok && current {
		return e, nil
	}

	e, err := load(fl.ctx)
	if err != nil {
		return Entry{}, err
	}
	c.mu.Lock()
	if c.epoch == epoch {
		c.entries[key] = e
	}
	c.mu.Unlock()
	return e, nil
}

// flight is the shared context of one in-flight load and its waiters.
type flight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

func (c *Cache) join(ctx context.Context, name string) *flight {
	c.mu.Lock()
	defer c.mu.Unlock()
	fl, ok := c.flights[name]
	if !ok {
		lctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		fl = &flight{ctx: lctx, cancel: cancel}
		c.flights[name] = fl
	}
	fl.waiters++
	return fl
}

// leave drops one waiter. The last waiter to leave cancels the load and
// forgets it, so later callers start a fresh one.
func (c *Cache) leave(name string, fl *flight) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fl.waiters--
	if fl.waiters > 0 {
		return
	}
	fl.cancel()
	if c.flights[name] == fl {
		delete(c.flights, name)
		c.group.Forget(name)
	}
}

func (c *Cache) finish(name string, fl *flight) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.flights[name] == fl {
		delete(c.flights, name)
	}
}
