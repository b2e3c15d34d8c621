package parser

import "errors"

// ErrFault wraps a panic recovered while parsing.
var ErrFault = errors.New("parser fault")
