// Package cache provides bounded, TTL-limited caching of tool results.
//
// It provides a ToolCache with LRU eviction and per-entry expiry,
// SHA-256-based key derivation from tool names and arguments, and a
// middleware that adds caching at the tool call boundary.
package cache
