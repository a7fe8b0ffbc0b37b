package health

import (
	"context"
	"fmt"
	"runtime"
)

// RuntimeCheckerConfig configures the process runtime checker.
// Thresholds are absolute; a zero threshold disables that check.
type RuntimeCheckerConfig struct {
	// HeapWarnBytes is the heap allocation at or above which the
	// process is reported degraded.
	HeapWarnBytes uint64

	// HeapCriticalBytes is the heap allocation at or above which the
	// process is reported unhealthy. Adjusted upward if configured
	// below HeapWarnBytes.
	HeapCriticalBytes uint64

	// MaxGoroutines is the goroutine count above which the process is
	// reported degraded. A runaway count usually means agent workers
	// are leaking.
	MaxGoroutines int
}

// RuntimeChecker reports process-level health: heap usage and
// goroutine count. With a zero config it always reports healthy and
// serves as a plain runtime stats source.
type RuntimeChecker struct {
	config RuntimeCheckerConfig
}

// NewRuntimeChecker creates a runtime checker.
func NewRuntimeChecker(config RuntimeCheckerConfig) *RuntimeChecker {
	if config.HeapCriticalBytes > 0 && config.HeapCriticalBytes < config.HeapWarnBytes {
		config.HeapCriticalBytes = config.HeapWarnBytes
	}
	return &RuntimeChecker{config: config}
}

// Name returns "runtime".
func (r *RuntimeChecker) Name() string {
	return "runtime"
}

// Check reads runtime memory stats and the goroutine count and grades
// them against the configured thresholds.
func (r *RuntimeChecker) Check(ctx context.Context) Result {
	select {
	case <-ctx.Done():
		return Unhealthy("context cancelled", ctx.Err())
	default:
	}

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	goroutines := runtime.NumGoroutine()

	details := map[string]any{
		"heap_alloc_bytes": stats.HeapAlloc,
		"heap_alloc_mb":    float64(stats.HeapAlloc) / (1024 * 1024),
		"heap_sys":         stats.HeapSys,
		"heap_objects":     stats.HeapObjects,
		"gc_pause_total":   stats.PauseTotalNs,
		"num_gc":           stats.NumGC,
		"goroutines":       goroutines,
	}

	if r.config.HeapCriticalBytes > 0 && stats.HeapAlloc >= r.config.HeapCriticalBytes {
		return Unhealthy(
			fmt.Sprintf("heap critical: %.1f MB", float64(stats.HeapAlloc)/(1024*1024)),
			ErrCheckFailed,
		).WithDetails(details)
	}

	if r.config.HeapWarnBytes > 0 && stats.HeapAlloc >= r.config.HeapWarnBytes {
		return Degraded(
			fmt.Sprintf("heap high: %.1f MB", float64(stats.HeapAlloc)/(1024*1024)),
		).WithDetails(details)
	}

	if r.config.MaxGoroutines > 0 && goroutines > r.config.MaxGoroutines {
		return Degraded(
			fmt.Sprintf("goroutine count high: %d", goroutines),
		).WithDetails(details)
	}

	return Healthy(
		fmt.Sprintf("runtime ok: %.1f MB heap, %d goroutines", float64(stats.HeapAlloc)/(1024*1024), goroutines),
	).WithDetails(details)
}
