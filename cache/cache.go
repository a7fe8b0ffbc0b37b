package cache

import (
	"container/list"
	"sort"
	"sync"
	"time"
)

// Defaults applied by New for zero Config fields.
const (
	// DefaultMaxEntries bounds the cache when Config.MaxEntries is zero.
	DefaultMaxEntries = 256

	// DefaultTTL is the entry lifetime when no override is given.
	DefaultTTL = 5 * time.Minute

	// DefaultMaxTTL caps per-entry TTL overrides.
	DefaultMaxTTL = 1 * time.Hour
)

// Config configures a ToolCache.
type Config struct {
	// MaxEntries bounds the number of resident entries.
	// Zero or negative means DefaultMaxEntries.
	MaxEntries int

	// Policy controls entry lifetimes. The zero value means DefaultPolicy().
	Policy Policy

	// Keyer derives cache keys. Nil means a DefaultKeyer.
	Keyer Keyer

	// Metrics receives cache events. Nil means NoopMetrics.
	Metrics Metrics
}

// entry is a single cached tool result.
type entry struct {
	key       string
	value     any
	createdAt time.Time
	ttl       time.Duration
	hits      uint64
}

// expiredAt reports whether the entry is past its lifetime at now.
func (e *entry) expiredAt(now time.Time) bool {
	return now.After(e.createdAt.Add(e.ttl))
}

// ToolCache is a bounded, TTL-limited LRU cache for tool results.
//
// A hit promotes the entry to most recently used. Inserting a new key
// at capacity first evicts the least recently used entry, so the cache
// never holds more than MaxEntries entries. Expired entries are treated
// as misses and removed on lookup; PruneExpired removes them eagerly.
//
// All methods are safe for concurrent use. A single mutex guards every
// operation so that size accounting, recency order, and hit/miss
// counters never drift apart. The cache never invokes tool code itself;
// computing a missing value belongs to callers (see Middleware).
type ToolCache struct {
	keyer      Keyer
	policy     Policy
	maxEntries int
	metrics    Metrics

	mu      sync.Mutex
	entries map[string]*list.Element // values are *entry
	order   *list.List               // front = most recent, back = least recent
	paths   map[string]struct{}      // paths reported to InvalidateByPath
	hits    uint64
	misses  uint64

	now func() time.Time // replaced in tests
}

// New creates a ToolCache, applying defaults for zero Config fields.
func New(cfg Config) *ToolCache {
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if cfg.Policy == (Policy{}) {
		cfg.Policy = DefaultPolicy()
	}
	if cfg.Keyer == nil {
		cfg.Keyer = NewDefaultKeyer()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = NoopMetrics{}
	}

	return &ToolCache{
		keyer:      cfg.Keyer,
		policy:     cfg.Policy,
		maxEntries: cfg.MaxEntries,
		metrics:    cfg.Metrics,
		entries:    make(map[string]*list.Element),
		order:      list.New(),
		paths:      make(map[string]struct{}),
		now:        time.Now,
	}
}

// Get returns the cached result for a tool call, deriving the key from
// the tool name and arguments. The boolean is false on miss. A hit
// promotes the entry to most recently used; an expired entry is removed
// and reported as a miss.
func (c *ToolCache) Get(toolName string, args map[string]any) (any, bool, error) {
	key, err := c.keyer.Key(toolName, args)
	if err != nil {
		return nil, false, err
	}
	v, ok := c.lookup(key, true)
	return v, ok, nil
}

// Set stores a tool result under the derived key with the policy's
// default TTL.
func (c *ToolCache) Set(toolName string, value any, args map[string]any) error {
	return c.SetWithTTL(toolName, value, 0, args)
}

// SetWithTTL stores a tool result with a per-entry TTL override.
// A zero or negative ttl falls back to the policy default; positive
// overrides are clamped to the policy maximum.
//
// Updating an existing key replaces the entry in place without touching
// its recency position. Inserting a new key at capacity evicts the
// least recently used entry first.
func (c *ToolCache) SetWithTTL(toolName string, value any, ttl time.Duration, args map[string]any) error {
	key, err := c.keyer.Key(toolName, args)
	if err != nil {
		return err
	}
	c.store(key, value, ttl)
	return nil
}

// Invalidate removes the entry for one exact tool call. It reports
// whether an entry was present.
func (c *ToolCache) Invalidate(toolName string, args map[string]any) (bool, error) {
	key, err := c.keyer.Key(toolName, args)
	if err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	c.removeLocked(el, EvictInvalidated)
	c.metrics.Size(len(c.entries))
	return true, nil
}

// InvalidateByPath records path as invalidated and drops every cached
// entry, returning the number removed. Entries do not track which paths
// produced them, so a path change clears the whole cache rather than
// guessing at a subset.
func (c *ToolCache) InvalidateByPath(path string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.paths[path] = struct{}{}

	removed := len(c.entries)
	var next *list.Element
	for el := c.order.Front(); el != nil; el = next {
		next = el.Next()
		c.removeLocked(el, EvictInvalidated)
	}
	c.metrics.Size(0)
	return removed
}

// InvalidatedPaths returns the paths passed to InvalidateByPath since
// construction or the last Clear, in sorted order.
func (c *ToolCache) InvalidatedPaths() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	paths := make([]string, 0, len(c.paths))
	for p := range c.paths {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Clear removes all entries and forgets recorded invalidation paths.
// Hit and miss counters are preserved; only a fresh instance starts
// counting from zero.
func (c *ToolCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*list.Element)
	c.order.Init()
	c.paths = make(map[string]struct{})
	c.metrics.Size(0)
}

// PruneExpired removes every expired entry and returns the count.
// Lookups already drop expired entries lazily; PruneExpired exists for
// housekeeping sweeps so dead entries stop occupying capacity between
// lookups.
func (c *ToolCache) PruneExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	var next *list.Element
	for el := c.order.Front(); el != nil; el = next {
		next = el.Next()
		if el.Value.(*entry).expiredAt(now) {
			c.removeLocked(el, EvictExpired)
			removed++
		}
	}
	if removed > 0 {
		c.metrics.Size(len(c.entries))
	}
	return removed
}

// Len returns the number of resident entries, including any that are
// expired but not yet removed.
func (c *ToolCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// lookup is the key-level read path shared by Get and Middleware.
// countMiss controls whether an absence increments the miss counter;
// the middleware's post-coalesce recheck passes false because the
// caller already counted its miss.
func (c *ToolCache) lookup(key string, countMiss bool) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		if countMiss {
			c.misses++
			c.metrics.Miss()
		}
		return nil, false
	}

	en := el.Value.(*entry)
	if en.expiredAt(c.now()) {
		// Expired - remove lazily and report a miss
		c.removeLocked(el, EvictExpired)
		c.metrics.Size(len(c.entries))
		if countMiss {
			c.misses++
			c.metrics.Miss()
		}
		return nil, false
	}

	c.order.MoveToFront(el)
	en.hits++
	c.hits++
	c.metrics.Hit()
	return en.value, true
}

// store is the key-level write path shared by SetWithTTL and Middleware.
func (c *ToolCache) store(key string, value any, ttl time.Duration) {
	effective := c.policy.EffectiveTTL(ttl)

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		// Existing key: replace in place, recency position unchanged
		en := el.Value.(*entry)
		en.value = value
		en.createdAt = c.now()
		en.ttl = effective
		en.hits = 0
		return
	}

	if len(c.entries) >= c.maxEntries {
		c.removeLocked(c.order.Back(), EvictCapacity)
	}

	c.entries[key] = c.order.PushFront(&entry{
		key:       key,
		value:     value,
		createdAt: c.now(),
		ttl:       effective,
	})
	c.metrics.Size(len(c.entries))
}

// removeLocked unlinks el from the map and recency list.
// Callers must hold c.mu.
func (c *ToolCache) removeLocked(el *list.Element, reason EvictReason) {
	if el == nil {
		return
	}
	en := el.Value.(*entry)
	delete(c.entries, en.key)
	c.order.Remove(el)
	c.metrics.Evict(reason)
}
