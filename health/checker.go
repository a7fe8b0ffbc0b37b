package health

import (
	"context"
	"time"
)

// Status is the condition a health check reports for one component.
type Status int

const (
	// StatusHealthy means the component is operating normally.
	StatusHealthy Status = iota
	// StatusDegraded means the component works but with reduced
	// effectiveness or elevated pressure.
	StatusDegraded
	// StatusUnhealthy means the component is not usable.
	StatusUnhealthy
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusHealthy:
		return "healthy"
	case StatusDegraded:
		return "degraded"
	case StatusUnhealthy:
		return "unhealthy"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single health check.
type Result struct {
	// Status is the reported condition.
	Status Status

	// Message is a human-readable summary of the condition.
	Message string

	// Details holds check-specific metadata, such as a cache stats
	// snapshot or runtime counters.
	Details map[string]any

	// Duration is how long the check took to run.
	Duration time.Duration

	// Timestamp is when the check ran.
	Timestamp time.Time

	// Error carries the underlying error for unhealthy results.
	Error error
}

// Healthy builds a healthy result with the given message.
func Healthy(message string) Result {
	return Result{
		Status:    StatusHealthy,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Degraded builds a degraded result with the given message.
func Degraded(message string) Result {
	return Result{
		Status:    StatusDegraded,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Unhealthy builds an unhealthy result carrying the underlying error.
func Unhealthy(message string, err error) Result {
	return Result{
		Status:    StatusUnhealthy,
		Message:   message,
		Error:     err,
		Timestamp: time.Now(),
	}
}

// WithDetails returns a copy of the result with details attached.
func (r Result) WithDetails(details map[string]any) Result {
	r.Details = details
	return r
}

// WithDuration returns a copy of the result with the duration set.
func (r Result) WithDuration(d time.Duration) Result {
	r.Duration = d
	return r
}

// Checker is a named component that can report its own health.
type Checker interface {
	// Name identifies the checker, e.g. "cache" or "runtime".
	Name() string

	// Check runs the health check. It should honor ctx cancellation
	// and never panic.
	Check(ctx context.Context) Result
}

// CheckerFunc adapts a plain function into a Checker.
type CheckerFunc struct {
	name string
	fn   func(context.Context) Result
}

// NewCheckerFunc wraps fn as a Checker with the given name.
func NewCheckerFunc(name string, fn func(context.Context) Result) *CheckerFunc {
	return &CheckerFunc{name: name, fn: fn}
}

// Name returns the checker's name.
func (f *CheckerFunc) Name() string {
	return f.name
}

// Check invokes the wrapped function.
func (f *CheckerFunc) Check(ctx context.Context) Result {
	return f.fn(ctx)
}
