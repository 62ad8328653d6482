package multitaper

import "errors"

// Errors reported by configuration resolution and input validation, before
// any segment is processed.
var (
	// ErrSignalShape reports input that cannot be reduced to one dimension.
	ErrSignalShape = errors.New("multitaper: signal must be one-dimensional")

	// ErrConfig reports an invalid or unrecognized configuration value.
	ErrConfig = errors.New("multitaper: invalid configuration")

	// ErrSignalTooShort reports a signal shorter than a single window.
	ErrSignalTooShort = errors.New("multitaper: signal is shorter than one window")
)
