package config

import "errors"

var (
	// ErrUnsupportedFormat is returned for a config file whose extension is
	// not .yaml, .yml or .toml.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrInvalidConfig is returned when a config file does not decode or a
	// value is out of range.
	ErrInvalidConfig = errors.New("invalid config")
)
