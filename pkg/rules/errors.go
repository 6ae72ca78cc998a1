package rules

import "errors"

var (
	// ErrInvalidArgument is returned when a rule is called with arguments it cannot work with.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrLookupFailed wraps any failure reported by a Lookup implementation.
	ErrLookupFailed = errors.New("uniqueness lookup failed")
)
