package cache

import (
	"context"
	"strings"

	"golang.org/x/sync/singleflight"
)

// ExecutorFunc is the function signature for tool execution.
type ExecutorFunc func(ctx context.Context, toolName string, args map[string]any) (any, error)

// SkipRule determines whether to bypass the cache for a given tool call.
// Returns true if caching should be skipped.
type SkipRule func(toolName string, args map[string]any) bool

// UnsafeNamePrefixes marks tools whose names begin with a mutating verb.
// Results from such tools must never be served from cache.
var UnsafeNamePrefixes = []string{"write", "edit", "create", "delete", "remove", "move", "apply", "run", "exec"}

// DefaultSkipRule skips caching for tools whose name starts with an
// unsafe prefix. Namespaced names are matched on their last segment, so
// "fs.write_file" is treated like "write_file". Matching is
// case-insensitive.
func DefaultSkipRule(toolName string, _ map[string]any) bool {
	name := strings.ToLower(toolName)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	for _, prefix := range UnsafeNamePrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// Middleware adds caching at the tool call boundary. Tools themselves
// stay cache-unaware; the orchestrator routes read-only calls through
// Execute.
type Middleware struct {
	cache    *ToolCache
	skipRule SkipRule
	group    singleflight.Group
}

// NewMiddleware creates a cache middleware over c.
// If skipRule is nil, DefaultSkipRule is used.
func NewMiddleware(c *ToolCache, skipRule SkipRule) *Middleware {
	if skipRule == nil {
		skipRule = DefaultSkipRule
	}
	return &Middleware{
		cache:    c,
		skipRule: skipRule,
	}
}

// Execute runs the tool call through the cache.
// On a hit, the cached result is returned without calling executor.
// On a miss, executor runs outside the cache lock and a successful
// result is stored. Errors are NOT cached. Concurrent misses for the
// same key are coalesced into a single execution; each waiter still
// honors its own context.
func (m *Middleware) Execute(ctx context.Context, toolName string, args map[string]any, executor ExecutorFunc) (any, error) {
	if m.skipRule(toolName, args) {
		// Skip caching - execute directly
		return executor(ctx, toolName, args)
	}

	key, err := m.cache.keyer.Key(toolName, args)
	if err != nil {
		// Key derivation failed - execute without caching
		return executor(ctx, toolName, args)
	}

	if v, ok := m.cache.lookup(key, true); ok {
		return v, nil
	}

	ch := m.group.DoChan(key, func() (any, error) {
		// An earlier flight may have stored the value while we queued
		if v, ok := m.cache.lookup(key, false); ok {
			return v, nil
		}

		result, err := executor(ctx, toolName, args)
		if err != nil {
			// Don't cache errors
			return nil, err
		}

		m.cache.store(key, result, 0)
		return result, nil
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
