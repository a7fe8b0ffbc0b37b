package cache

import "errors"

// Sentinel errors for key derivation.
var (
	// ErrInvalidToolName reports an empty or all-whitespace tool name.
	ErrInvalidToolName = errors.New("cache: invalid tool name")

	// ErrInvalidArgument reports an argument value that cannot be
	// canonically encoded, such as a channel, function, or cyclic value.
	ErrInvalidArgument = errors.New("cache: argument cannot be encoded")
)
