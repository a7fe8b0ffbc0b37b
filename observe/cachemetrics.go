package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jonwraymond/swarmtools/cache"
)

// CacheMetrics publishes tool cache events as OpenTelemetry instruments.
// It implements cache.Metrics; wire it in through cache.Config.Metrics.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Blocking: methods only touch in-process aggregation and never block.
// - Errors: methods must not panic; instrument errors surface from NewCacheMetrics.
type CacheMetrics struct {
	hits      metric.Int64Counter
	misses    metric.Int64Counter
	evictions metric.Int64Counter
	entries   metric.Int64Gauge
}

// NewCacheMetrics creates the cache instruments on the given meter.
func NewCacheMetrics(meter metric.Meter) (*CacheMetrics, error) {
	hits, err := meter.Int64Counter(
		"tool.cache.hits",
		metric.WithDescription("Tool results served from the cache"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	misses, err := meter.Int64Counter(
		"tool.cache.misses",
		metric.WithDescription("Tool cache lookups that found no usable entry"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	evictions, err := meter.Int64Counter(
		"tool.cache.evictions",
		metric.WithDescription("Entries removed from the tool cache, by reason"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, err
	}

	entries, err := meter.Int64Gauge(
		"tool.cache.entries",
		metric.WithDescription("Entries currently resident in the tool cache"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, err
	}

	return &CacheMetrics{
		hits:      hits,
		misses:    misses,
		evictions: evictions,
		entries:   entries,
	}, nil
}

// Hit records a cache hit.
func (m *CacheMetrics) Hit() {
	m.hits.Add(context.Background(), 1)
}

// Miss records a cache miss.
func (m *CacheMetrics) Miss() {
	m.misses.Add(context.Background(), 1)
}

// Evict records an entry removal with its reason.
func (m *CacheMetrics) Evict(reason cache.EvictReason) {
	m.evictions.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("reason", reason.String())))
}

// Size records the current entry count.
func (m *CacheMetrics) Size(entries int) {
	m.entries.Record(context.Background(), int64(entries))
}

// Ensure CacheMetrics implements cache.Metrics
var _ cache.Metrics = (*CacheMetrics)(nil)
