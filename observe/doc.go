// Package observe provides observability primitives for tool execution.
//
// It is a pure instrumentation library: no execution, no transport, no I/O
// beyond exporter setup. Consumers wrap tool executors with Middleware and
// wire CacheMetrics into the cache package's Metrics seam.
package observe
