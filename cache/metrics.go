package cache

// EvictReason classifies why an entry left the cache.
type EvictReason int

const (
	// EvictCapacity means the entry was least recently used when a new
	// key needed room.
	EvictCapacity EvictReason = iota

	// EvictExpired means the entry outlived its TTL.
	EvictExpired

	// EvictInvalidated means the entry was removed explicitly.
	EvictInvalidated
)

// String returns the string representation of the reason.
func (r EvictReason) String() string {
	switch r {
	case EvictCapacity:
		return "capacity"
	case EvictExpired:
		return "expired"
	case EvictInvalidated:
		return "invalidated"
	default:
		return "unknown"
	}
}

// Metrics receives cache events.
//
// Contract:
// - Implementations must be safe for concurrent use.
// - Methods are called with the cache mutex held and must not block.
type Metrics interface {
	// Hit records a lookup served from cache.
	Hit()

	// Miss records a lookup that found nothing usable.
	Miss()

	// Evict records the removal of one entry.
	Evict(reason EvictReason)

	// Size records the current number of resident entries.
	Size(entries int)
}

// NoopMetrics discards all events.
type NoopMetrics struct{}

func (NoopMetrics) Hit()              {}
func (NoopMetrics) Miss()             {}
func (NoopMetrics) Evict(EvictReason) {}
func (NoopMetrics) Size(int)          {}

// Ensure NoopMetrics implements Metrics
var _ Metrics = NoopMetrics{}
