// SPDX-License-Identifier: MIT
// Package: ngmap/builder
//
// api.go - composition of builders.
//
// Design contract:
//   - Apply runs constructors in order and stops at the first error.
//   - Constructors never panic; they return wrapped sentinel errors.

package builder

import "fmt"

const methodApply = "Apply"

// Constructor applies one shape to a map.
type Constructor func(m Sewer) error

// Edges returns a Constructor that adds n independent edges.
func Edges(n int) Constructor {
	return func(m Sewer) error {
		for k := 0; k < n; k++ {
			if _, err := AddEdge(m); err != nil {
				return err
			}
		}
		return nil
	}
}

// Polygon returns a Constructor that adds a closed polygon of the given
// number of edges.
func Polygon(edges int) Constructor {
	return func(m Sewer) error {
		_, err := AddConvexPolygon(m, edges)
		return err
	}
}

// Apply runs every constructor on m in order.
func Apply(m Sewer, cons ...Constructor) error {
	for k, c := range cons {
		if err := c(m); err != nil {
			return fmt.Errorf("%s: constructor %d: %w", methodApply, k, err)
		}
	}
	return nil
}
