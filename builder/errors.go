// SPDX-License-Identifier: MIT
// Package: ngmap/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Errors from core are wrapped with the builder method name and keep
//     their own sentinel (core.ErrNotSewable, core.ErrInvalidDimension).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewEdges indicates a polygon requested with fewer than one edge.
var ErrTooFewEdges = errors.New("builder: too few edges")

// builderErrorf prefixes a wrapped error with the method name:
// "<Method>: <formatted message>".
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
