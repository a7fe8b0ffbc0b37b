package cache

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Environment variables read when constructing the process-wide cache.
const (
	// EnvMaxEntries overrides DefaultMaxEntries for the Default cache.
	EnvMaxEntries = "SWARMTOOLS_CACHE_MAX_ENTRIES"

	// EnvDefaultTTL overrides the default TTL for the Default cache.
	// Accepts a Go duration string such as "45s" or "10m".
	EnvDefaultTTL = "SWARMTOOLS_CACHE_TTL"
)

var (
	defaultMu    sync.Mutex
	defaultCache *ToolCache
)

// Default returns the process-wide cache, creating it on first use.
// Construction honors EnvMaxEntries and EnvDefaultTTL.
//
// The instance is replaceable: ResetDefault discards it so tests and
// fresh orchestrator runs start with empty state. Code that wants
// isolation should construct its own ToolCache with New instead.
func Default() *ToolCache {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultCache == nil {
		defaultCache = New(configFromEnv())
	}
	return defaultCache
}

// ResetDefault clears and discards the process-wide cache. The next
// Default call builds a fresh instance with zeroed counters.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultCache != nil {
		defaultCache.Clear()
		defaultCache = nil
	}
}

// InvalidatePath clears the process-wide cache in response to a change
// of path. Shorthand for Default().InvalidateByPath(path).
func InvalidatePath(path string) int {
	return Default().InvalidateByPath(path)
}

func configFromEnv() Config {
	var cfg Config
	if raw := os.Getenv(EnvMaxEntries); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.MaxEntries = n
		}
	}
	if raw := os.Getenv(EnvDefaultTTL); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.Policy = Policy{DefaultTTL: d, MaxTTL: DefaultMaxTTL}
		}
	}
	return cfg
}
