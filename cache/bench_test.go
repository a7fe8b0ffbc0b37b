package cache

import (
	"context"
	"fmt"
	"testing"
	"time"
)

// BenchmarkToolCache_Get_Hit measures cache hit performance.
func BenchmarkToolCache_Get_Hit(b *testing.B) {
	c := New(Config{})
	args := map[string]any{"path": "main.go"}

	// Pre-populate
	_ = c.Set("read_file", "value", args)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = c.Get("read_file", args)
	}
}

// BenchmarkToolCache_Get_Miss measures cache miss performance.
func BenchmarkToolCache_Get_Miss(b *testing.B) {
	c := New(Config{})
	args := map[string]any{"path": "missing.go"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = c.Get("read_file", args)
	}
}

// BenchmarkToolCache_Set measures write performance with eviction churn.
func BenchmarkToolCache_Set(b *testing.B) {
	c := New(Config{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Set("read_file", "value", map[string]any{"path": fmt.Sprintf("file-%d.go", i)})
	}
}

// BenchmarkToolCache_Set_SameKey measures in-place update performance.
func BenchmarkToolCache_Set_SameKey(b *testing.B) {
	c := New(Config{})
	args := map[string]any{"path": "same.go"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Set("read_file", "value", args)
	}
}

// BenchmarkToolCache_SetWithTTL measures writes with TTL overrides.
func BenchmarkToolCache_SetWithTTL(b *testing.B) {
	c := New(Config{})
	args := map[string]any{"path": "same.go"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.SetWithTTL("read_file", "value", time.Minute, args)
	}
}

// BenchmarkToolCache_Stats measures snapshot performance.
func BenchmarkToolCache_Stats(b *testing.B) {
	c := New(Config{})
	for i := 0; i < 100; i++ {
		_ = c.Set("read_file", "value", map[string]any{"path": fmt.Sprintf("file-%d.go", i)})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Stats()
	}
}

// BenchmarkToolCache_Concurrent_ReadWrite measures mixed concurrent operations.
func BenchmarkToolCache_Concurrent_ReadWrite(b *testing.B) {
	c := New(Config{})

	// Pre-populate some entries
	for i := 0; i < 100; i++ {
		_ = c.Set("read_file", "value", map[string]any{"path": fmt.Sprintf("file-%d.go", i)})
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			args := map[string]any{"path": fmt.Sprintf("file-%d.go", i%100)}
			if i%4 == 0 {
				// 25% writes
				_ = c.Set("read_file", "new-value", args)
			} else {
				// 75% reads
				_, _, _ = c.Get("read_file", args)
			}
			i++
		}
	})
}

// BenchmarkDefaultKeyer_Key measures key generation.
func BenchmarkDefaultKeyer_Key(b *testing.B) {
	keyer := NewDefaultKeyer()
	args := map[string]any{
		"query": "EventLoop",
		"limit": 10,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = keyer.Key("indexed_search_code", args)
	}
}

// BenchmarkDefaultKeyer_Key_Nested measures key generation with nested arguments.
func BenchmarkDefaultKeyer_Key_Nested(b *testing.B) {
	keyer := NewDefaultKeyer()
	args := map[string]any{
		"query":  "test query string",
		"limit":  100,
		"offset": 0,
		"paths":  []any{"internal/", "cmd/", "core/"},
		"filters": map[string]any{
			"lang":     "go",
			"dir":      "internal",
			"modified": "7d",
		},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = keyer.Key("indexed_search_code", args)
	}
}

// BenchmarkMiddleware_Execute_Hit measures middleware with a warm cache.
func BenchmarkMiddleware_Execute_Hit(b *testing.B) {
	mw := NewMiddleware(New(Config{}), nil)
	ctx := context.Background()
	args := map[string]any{"path": "main.go"}

	executor := func(ctx context.Context, toolName string, args map[string]any) (any, error) {
		return "result", nil
	}

	// Pre-warm cache
	_, _ = mw.Execute(ctx, "read_file", args, executor)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mw.Execute(ctx, "read_file", args, executor)
	}
}

// BenchmarkMiddleware_Execute_Skip measures the uncached bypass path.
func BenchmarkMiddleware_Execute_Skip(b *testing.B) {
	mw := NewMiddleware(New(Config{}), nil)
	ctx := context.Background()
	args := map[string]any{"path": "main.go", "content": "x"}

	executor := func(ctx context.Context, toolName string, args map[string]any) (any, error) {
		return "done", nil
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mw.Execute(ctx, "write_file", args, executor)
	}
}

// BenchmarkMiddleware_Concurrent measures concurrent middleware usage.
func BenchmarkMiddleware_Concurrent(b *testing.B) {
	mw := NewMiddleware(New(Config{}), nil)
	ctx := context.Background()

	executor := func(ctx context.Context, toolName string, args map[string]any) (any, error) {
		return "result", nil
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			args := map[string]any{"path": fmt.Sprintf("file-%d.go", i%10)}
			_, _ = mw.Execute(ctx, "read_file", args, executor)
			i++
		}
	})
}
