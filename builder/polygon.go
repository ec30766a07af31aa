// SPDX-License-Identifier: MIT
// Package: ngmap/builder
//
// polygon.go - closed polygons made of 0-sewn edges chained by 1-sewing.
//
// Contract:
//   • edges ≥ 1 (else ErrTooFewEdges).
//   • Edge k is created before edge k+1; the second dart of edge k is 1-sewn
//     to the first dart of edge k+1; the last edge closes onto the first.
//   • A 1-gon 1-sews the two darts of its single edge.
//
// Determinism:
//   • Dart ids grow in edge order, first dart before second.

package builder

import "github.com/katalvlaran/ngmap/core"

const (
	methodAddConvexPolygon = "AddConvexPolygon"
	methodAddPolygonEdges  = "AddPolygonEdges"
	minPolygonEdges        = 1
)

// AddConvexPolygon builds a closed loop of edges and returns its entry dart,
// the first dart of the first edge.
func AddConvexPolygon(m Sewer, edges int) (core.Dart, error) {
	loop, err := addLoop(methodAddConvexPolygon, m, edges)
	if err != nil {
		return core.Dart{}, err
	}
	return loop[0].First, nil
}

// AddPolygonEdges builds the same loop as AddConvexPolygon and returns all
// of its edges in creation order.
func AddPolygonEdges(m Sewer, edges int) ([]Edge, error) {
	return addLoop(methodAddPolygonEdges, m, edges)
}

// addLoop creates the edges and 1-sews them end to end.
func addLoop(method string, m Sewer, edges int) ([]Edge, error) {
	if edges < minPolygonEdges {
		return nil, builderErrorf(method, "edges=%d < min=%d: %w", edges, minPolygonEdges, ErrTooFewEdges)
	}

	loop := make([]Edge, 0, edges)
	for k := 0; k < edges; k++ {
		e, err := AddEdge(m)
		if err != nil {
			return nil, builderErrorf(method, "edge %d: %w", k, err)
		}
		if k > 0 {
			prev := loop[k-1].Second
			if err := m.Sew(prev, e.First, 1); err != nil {
				return nil, builderErrorf(method, "Sew(%v,%v,1): %w", prev, e.First, err)
			}
		}
		loop = append(loop, e)
	}

	last, first := loop[len(loop)-1].Second, loop[0].First
	if err := m.Sew(last, first, 1); err != nil {
		return nil, builderErrorf(method, "close Sew(%v,%v,1): %w", last, first, err)
	}
	return loop, nil
}
