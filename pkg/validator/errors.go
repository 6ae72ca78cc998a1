package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrEmptyRule is returned when a Rule has neither Check nor Lookup.
	ErrEmptyRule = errors.New("rule has no check")
)
