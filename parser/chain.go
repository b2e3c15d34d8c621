package parser

import (
	"fmt"
	"log/slog"
)

// Strategy is one way of extracting a value from text.
// Extract returns false when the strategy does not apply.
type Strategy[T any] struct {
	Name    string
	Extract func(text string) (T, bool)
}

// Chain runs strategies in order and returns the first success.
type Chain[T any] struct {
	name       string
	strategies []Strategy[T]
}

// NewChain creates a chain. The name shows up in log records.
func NewChain[T any](name string, strategies ...Strategy[T]) *Chain[T] {
	return &Chain[T]{name: name, strategies: strategies}
}

// Run returns the value of the first strategy that succeeds.
func (c *Chain[T]) Run(text string) (T, bool) {
	v, _, ok := c.RunNamed(text)
	return v, ok
}

// RunNamed is like Run but also reports which strategy produced the value.
// A strategy that panics is logged and treated as not applicable.
func (c *Chain[T]) RunNamed(text string) (T, string, bool) {
	for _, s := range c.strategies {
		type outcome struct {
			v  T
			ok bool
		}
		res, err := Try(c.name+"/"+s.Name, func() outcome {
			v, ok := s.Extract(text)
			return outcome{v, ok}
		})
		if err != nil {
			slog.Warn("extraction strategy failed",
				slog.String("chain", c.name),
				slog.String("strategy", s.Name),
				slog.String("error", err.Error()))
			continue
		}
		if res.ok {
			slog.Debug("extraction strategy matched",
				slog.String("chain", c.name),
				slog.String("strategy", s.Name))
			return res.v, s.Name, true
		}
	}
	var zero T
	return zero, "", false
}

// Names returns the strategy names in the order they run.
func (c *Chain[T]) Names() []string {
	names := make([]string, len(c.strategies))
	for i, s := range c.strategies {
		names[i] = s.Name
	}
	return names
}

// Try runs fn and converts a panic into an error wrapping ErrFault.
func Try[T any](op string, fn func() T) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			err = fmt.Errorf("%w: %s: %v", ErrFault, op, r)
		}
	}()
	return fn(), nil
}

// Recover runs fn. If fn panics the fault is logged and fallback supplies
// the result instead.
func Recover[T any](op string, fn func() T, fallback func(error) T) T {
	result, err := Try(op, fn)
	if err != nil {
		slog.Error("parser fault, using fallback",
			slog.String("op", op),
			slog.String("error", err.Error()))
		return fallback(err)
	}
	return result
}
