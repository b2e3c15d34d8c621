package content

import "errors"

// Sentinel errors for content operations.
var (
	// ErrUnknownKind indicates the requested content kind is not registered.
	ErrUnknownKind = errors.New("unknown content kind")

	// ErrInvalidOptions indicates processing options are out of range.
	ErrInvalidOptions = errors.New("invalid options")
)
