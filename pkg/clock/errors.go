package clock

import "errors"

var (
	// ErrMissingConfiguration is returned when no device identifier is set.
	ErrMissingConfiguration = errors.New("clock: missing configuration")
	// ErrResourceNotFound is returned when the PLL frequency file cannot be opened.
	ErrResourceNotFound = errors.New("clock: resource not found")
	// ErrMalformedInput is returned when the first line of the PLL frequency
	// file is absent or not a base-10 integer.
	ErrMalformedInput = errors.New("clock: malformed input")
)
