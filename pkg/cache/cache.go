package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value    V
	expireAt time.Time
}

// Cache is a key-value cache with a fixed TTL per instance. An expired
// entry behaves exactly like an absent one: Get and Has evict it and
// report a miss, regardless of whether the background sweep has run.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	ttl     time.Duration
	metrics *Metrics

	sweepEvery time.Duration
	stop       chan struct{}
	stopOnce   sync.Once

	// overridable in tests
	now func() time.Time
}

type Option[V any] func(*Cache[V])

// WithSweepInterval starts a background goroutine that evicts expired
// entries every d. The sweep only bounds memory for keys that are never
// read again; expiry itself is enforced on access.
func WithSweepInterval[V any](d time.Duration) Option[V] {
	return func(c *Cache[V]) { c.sweepEvery = d }
}

func WithMetrics[V any](m *Metrics) Option[V] {
	return func(c *Cache[V]) { c.metrics = m }
}

func New[V any](ttl time.Duration, opts ...Option[V]) *Cache[V] {
	c := &Cache[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		stop:    make(chan struct{}),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sweepEvery > 0 {
		go c.sweepLoop()
	}
	return c
}

func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, expireAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	c.metrics.sets()
}

// Get returns the cached value for key. The second return is false when
// the key is absent or its entry has expired; expired entries are evicted.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		c.metrics.miss()
		var zero V
		return zero, false
	}
	if c.now().After(e.expireAt) {
		c.evict(key, e.expireAt)
		c.metrics.miss()
		var zero V
		return zero, false
	}
	c.metrics.hit()
	return e.value, true
}

func (c *Cache[V]) Has(key string) bool {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return false
	}
	if c.now().After(e.expireAt) {
		c.evict(key, e.expireAt)
		return false
	}
	return true
}

func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Clear removes every entry, expired or not.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]entry[V])
	c.mu.Unlock()
}

// Len counts current entries. Entries that expired but were not yet
// swept are included, so the count is approximate.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Cleanup evicts every expired entry in one pass.
func (c *Cache[V]) Cleanup() {
	now := c.now()
	c.mu.Lock()
	for k, e := range c.entries {
		if now.After(e.expireAt) {
			delete(c.entries, k)
			c.metrics.evicted()
		}
	}
	c.mu.Unlock()
}

// Close stops the background sweeper, if any. Safe to call more than once.
func (c *Cache[V]) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// evict removes key only if its entry still carries the observed
// expiration, so a concurrent Set is never clobbered.
func (c *Cache[V]) evict(key string, observedExpiry time.Time) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && e.expireAt.Equal(observedExpiry) {
		delete(c.entries, key)
		c.metrics.evicted()
	}
	c.mu.Unlock()
}

func (c *Cache[V]) sweepLoop() {
	ticker := time.NewTicker(c.sweepEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.Cleanup()
		case <-c.stop:
			return
		}
	}
}
