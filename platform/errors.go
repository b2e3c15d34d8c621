package platform

import "errors"

// Sentinel errors for platform table construction.
var (
	// ErrInvalidLimits is returned when a limit pair is not positive or the
	// recommended limit exceeds the hard limit.
	ErrInvalidLimits = errors.New("invalid platform limits")

	// ErrEmptyID is returned when an override is keyed by a blank identifier.
	ErrEmptyID = errors.New("platform identifier is empty")
)
