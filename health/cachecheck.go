package health

import (
	"context"
	"fmt"

	"github.com/jonwraymond/swarmtools/cache"
)

// CacheCheckerConfig configures the tool-cache health checker.
type CacheCheckerConfig struct {
	// UtilizationWarnPct is the occupancy percentage (entries against
	// capacity) at or above which the cache is reported degraded. A
	// full cache is still correct, but every new result then evicts
	// another. Default: 90.
	UtilizationWarnPct float64

	// HitRateWarnPct is the hit-rate percentage below which the cache
	// is reported degraded, once MinLookups lookups have happened. A
	// persistently cold cache usually means the workspace is being
	// invalidated faster than agents can reuse results. Default: 10.
	HitRateWarnPct float64

	// MinLookups is the number of lookups required before the hit
	// rate is judged at all. Default: 100.
	MinLookups uint64
}

// CacheChecker reports the health of a tool cache from its stats
// snapshot. It only reads; checking never mutates the cache.
type CacheChecker struct {
	cache  *cache.ToolCache
	config CacheCheckerConfig
}

// NewCacheChecker creates a checker for the given cache, applying
// defaults for zero config fields.
func NewCacheChecker(c *cache.ToolCache, config CacheCheckerConfig) *CacheChecker {
	if config.UtilizationWarnPct <= 0 || config.UtilizationWarnPct > 100 {
		config.UtilizationWarnPct = 90
	}
	if config.HitRateWarnPct <= 0 || config.HitRateWarnPct > 100 {
		config.HitRateWarnPct = 10
	}
	if config.MinLookups == 0 {
		config.MinLookups = 100
	}

	return &CacheChecker{cache: c, config: config}
}

// Name returns "cache".
func (c *CacheChecker) Name() string {
	return "cache"
}

// Check snapshots the cache stats and grades occupancy and hit rate
// against the configured thresholds.
func (c *CacheChecker) Check(ctx context.Context) Result {
	select {
	case <-ctx.Done():
		return Unhealthy("context cancelled", ctx.Err())
	default:
	}

	if c.cache == nil {
		return Unhealthy("no cache configured", ErrCheckFailed)
	}

	stats := c.cache.Stats()

	var utilization float64
	if stats.MaxEntries > 0 {
		utilization = float64(stats.Entries) / float64(stats.MaxEntries) * 100
	}

	details := map[string]any{
		"entries":         stats.Entries,
		"max_entries":     stats.MaxEntries,
		"utilization_pct": utilization,
		"hits":            stats.Hits,
		"misses":          stats.Misses,
		"hit_rate_pct":    stats.HitRatePct,
		"default_ttl":     stats.DefaultTTL.String(),
	}

	if utilization >= c.config.UtilizationWarnPct {
		return Degraded(
			fmt.Sprintf("cache near capacity: %d/%d entries", stats.Entries, stats.MaxEntries),
		).WithDetails(details)
	}

	if lookups := stats.Hits + stats.Misses; lookups >= c.config.MinLookups &&
		stats.HitRatePct < c.config.HitRateWarnPct {
		return Degraded(
			fmt.Sprintf("cache hit rate low: %.1f%% over %d lookups", stats.HitRatePct, lookups),
		).WithDetails(details)
	}

	return Healthy(
		fmt.Sprintf("cache ok: %d/%d entries, %.1f%% hit rate", stats.Entries, stats.MaxEntries, stats.HitRatePct),
	).WithDetails(details)
}
