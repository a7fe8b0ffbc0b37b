package cache

import (
	"math"
	"time"
)

// Stats is a point-in-time snapshot of cache occupancy and
// effectiveness.
type Stats struct {
	// Entries is the number of resident entries, including any that
	// are expired but not yet removed.
	Entries int `json:"entries"`

	// MaxEntries is the configured capacity bound.
	MaxEntries int `json:"max_entries"`

	// Hits and Misses are cumulative lookup counters for the lifetime
	// of the instance. Clear does not reset them.
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`

	// HitRatePct is Hits as a percentage of all lookups, rounded to
	// one decimal place. Zero when no lookups have happened.
	HitRatePct float64 `json:"hit_rate_pct"`

	// DefaultTTL is the policy's default entry lifetime.
	DefaultTTL time.Duration `json:"default_ttl"`
}

// Stats returns a snapshot of the cache counters and occupancy.
func (c *ToolCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Entries:    len(c.entries),
		MaxEntries: c.maxEntries,
		Hits:       c.hits,
		Misses:     c.misses,
		DefaultTTL: c.policy.DefaultTTL,
	}
	if total := c.hits + c.misses; total > 0 {
		pct := float64(c.hits) / float64(total) * 100
		s.HitRatePct = math.Round(pct*10) / 10
	}
	return s
}
