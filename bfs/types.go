// Package bfs provides tunable options and error definitions
// for the lazy breadth-first walker.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for walker construction.
var (
	// ErrNilNeighbors is returned if a nil neighbor function is passed.
	ErrNilNeighbors = errors.New("bfs: neighbor function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures walker behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the walker is built.
type Option func(*Options)

// Options holds parameters that customize a walk.
type Options struct {
	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// Capacity presizes the queue and visited set. It is a hint only.
	Capacity int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no presizing (Capacity == 0)
func DefaultOptions() Options {
	return Options{
		MaxDepth: 0,
		Capacity: 0,
		err:      nil,
	}
}

// WithMaxDepth stops the walk at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithCapacity presizes internal buffers for about n reachable elements.
// Negative values are rejected with ErrOptionViolation.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Capacity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Capacity = n
	}
}
