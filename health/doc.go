// Package health provides health-check primitives for swarm tool
// infrastructure.
//
// A Checker reports the condition of one component as a Status of
// healthy, degraded, or unhealthy, together with a message and
// arbitrary details. The package ships two concrete checkers: a
// CacheChecker that watches a tool cache's occupancy and hit rate
// through its stats snapshot, and a RuntimeChecker that watches the
// process's heap usage and goroutine count.
//
// # Basic Usage
//
//	checker := health.NewCacheChecker(cache.Default(), health.CacheCheckerConfig{})
//
//	result := checker.Check(ctx)
//	if result.Status != health.StatusHealthy {
//	    log.Printf("cache %s: %s", result.Status, result.Message)
//	}
//
// # Aggregating Checks
//
// An Aggregator fans out over registered checkers and folds their
// results into one overall status:
//
//	agg := health.NewAggregator(health.AggregatorConfig{})
//	agg.Register("cache", cacheChecker)
//	agg.Register("runtime", runtimeChecker)
//
//	results := agg.CheckAll(ctx)
//	overall := agg.OverallStatus(results)
//
// The package exposes no transport surface; hosts that serve health
// over HTTP or feed it to a dashboard do so on top of these
// primitives.
package health
