// SPDX-License-Identifier: MIT
// Package: ngmap/builder
//
// edge.go - the Edge value and the AddEdge builder.

package builder

import "github.com/katalvlaran/ngmap/core"

const methodAddEdge = "AddEdge"

// Sewer is the part of core.Map the builders need.
// *core.Map[A] satisfies it for every A.
type Sewer interface {
	AddIsolatedDart() core.Dart
	Sew(d1, d2 core.Dart, i int) error
}

// Edge holds the two darts of an edge; First and Second are 0-sewn.
type Edge struct {
	First  core.Dart
	Second core.Dart
}

// Darts returns First and Second, in that order.
func (e Edge) Darts() []core.Dart { return []core.Dart{e.First, e.Second} }

// AddEdge creates two isolated darts and 0-sews them.
// The 0-sewing of two fresh darts is degenerate, so it fails only if the map
// reports an error of its own.
func AddEdge(m Sewer) (Edge, error) {
	e := Edge{First: m.AddIsolatedDart(), Second: m.AddIsolatedDart()}
	if err := m.Sew(e.First, e.Second, 0); err != nil {
		return Edge{}, builderErrorf(methodAddEdge, "Sew(%v,%v,0): %w", e.First, e.Second, err)
	}
	return e, nil
}
