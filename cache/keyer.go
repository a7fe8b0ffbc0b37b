package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Keyer generates deterministic cache keys from tool call parameters.
//
// Contract:
// - Determinism: the same tool name and arguments must produce the same
//   key, regardless of map iteration order.
// - Separation: different tool names must never share a key, even for
//   identical arguments.
// - Errors: a blank tool name yields ErrInvalidToolName; arguments that
//   cannot be canonically encoded yield an error wrapping
//   ErrInvalidArgument. No key is derived on failure.
// - Concurrency: implementations must be safe for concurrent use.
type Keyer interface {
	// Key generates a cache key from the tool name and its arguments.
	Key(toolName string, args map[string]any) (string, error)
}

// DefaultKeyer generates SHA-256 based cache keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a new default keyer.
func NewDefaultKeyer() *DefaultKeyer {
	return &DefaultKeyer{}
}

// Key generates a deterministic cache key.
// Format: cache:<toolName>:<hash>
// where hash is the first 16 hex characters of
// SHA-256(toolName + ":" + canonical JSON(args)).
//
// A nil argument map and an empty one derive the same key; both mean a
// call with no arguments.
func (k *DefaultKeyer) Key(toolName string, args map[string]any) (string, error) {
	if strings.TrimSpace(toolName) == "" {
		return "", ErrInvalidToolName
	}

	// Canonicalize arguments so logically equal calls collide
	canonical, err := canonicalizeMap(args)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	payload := make([]byte, 0, len(toolName)+1+len(canonical))
	payload = append(payload, toolName...)
	payload = append(payload, ':')
	payload = append(payload, canonical...)

	hash := sha256.Sum256(payload)
	hashStr := hex.EncodeToString(hash[:8]) // First 8 bytes = 16 hex chars

	return fmt.Sprintf("cache:%s:%s", toolName, hashStr), nil
}

// canonicalize produces a deterministic JSON representation of a value.
// Maps are sorted by key at every nesting level; slices keep their
// element order.
func canonicalize(v any) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}

	switch val := v.(type) {
	case map[string]any:
		return canonicalizeMap(val)
	case []any:
		return canonicalizeSlice(val)
	default:
		// For other types, use standard JSON encoding
		return json.Marshal(v)
	}
}

func canonicalizeMap(m map[string]any) ([]byte, error) {
	// Sort keys
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Build ordered JSON object
	result := []byte("{")
	for i, k := range keys {
		if i > 0 {
			result = append(result, ',')
		}

		keyBytes, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		result = append(result, keyBytes...)
		result = append(result, ':')

		valBytes, err := canonicalize(m[k])
		if err != nil {
			return nil, err
		}
		result = append(result, valBytes...)
	}
	result = append(result, '}')

	return result, nil
}

func canonicalizeSlice(s []any) ([]byte, error) {
	result := []byte("[")
	for i, v := range s {
		if i > 0 {
			result = append(result, ',')
		}

		valBytes, err := canonicalize(v)
		if err != nil {
			return nil, err
		}
		result = append(result, valBytes...)
	}
	result = append(result, ']')

	return result, nil
}

// Ensure DefaultKeyer implements Keyer
var _ Keyer = (*DefaultKeyer)(nil)
