// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for ngmap/core.
//
// Purpose:
//   - Provide small, deterministic fixtures (edges, polygons) built only
//     through the public Map API.
//   - Provide whole-map assertions (validity, snapshots for no-mutation checks).

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ngmap/core"
)

// Common dimensions used across core tests (avoid magic numbers in test bodies).
const (
	Dim0 = 0
	Dim1 = 1
	Dim2 = 2
	Dim3 = 3
)

// newMap builds an n-dimensional map or fails the test.
func newMap(t testing.TB, n int) *core.Map[string] {
	t.Helper()
	m, err := core.New[string](n)
	require.NoError(t, err)
	return m
}

// addEdge creates two darts and 0-sews them.
func addEdge(t testing.TB, m *core.Map[string]) (core.Dart, core.Dart) {
	t.Helper()
	a, b := m.AddIsolatedDart(), m.AddIsolatedDart()
	require.NoError(t, m.Sew(a, b, Dim0))
	return a, b
}

// addPolygon builds a closed loop of n edges and returns its darts in
// creation order: first dart of edge 1, second dart of edge 1, first of edge 2, …
func addPolygon(t testing.TB, m *core.Map[string], n int) []core.Dart {
	t.Helper()
	darts := make([]core.Dart, 0, 2*n)
	for k := 0; k < n; k++ {
		a, b := addEdge(t, m)
		if k > 0 {
			require.NoError(t, m.Sew(darts[len(darts)-1], a, Dim1))
		}
		darts = append(darts, a, b)
	}
	require.NoError(t, m.Sew(darts[len(darts)-1], darts[0], Dim1))
	return darts
}

// requireValid asserts the involution invariant dart by dart through the
// public API, and then the full Validate check.
func requireValid(t testing.TB, m *core.Map[string]) {
	t.Helper()
	for _, d := range m.Darts() {
		for i := 0; i <= m.Dimension(); i++ {
			e, ok, err := m.Alpha(d, i)
			require.NoError(t, err)
			if !ok {
				continue
			}
			require.NotEqual(t, d, e, "fixed point %v at %d", d, i)
			require.True(t, m.ContainsDart(e))
			back, ok, err := m.Alpha(e, i)
			require.NoError(t, err)
			require.True(t, ok, "mate %v of %v is free at %d", e, d, i)
			require.Equal(t, d, back, "asymmetric pair at %d", i)
		}
	}
	require.NoError(t, m.Validate())
}

// snapshot records every pairing and every cell attribute of a map.
type snapshot struct {
	dim    int
	darts  []core.Dart
	images map[core.CellKey]core.Dart
	attrs  map[core.CellKey]string
}

// takeSnapshot captures m for later equality checks.
func takeSnapshot(t testing.TB, m *core.Map[string]) snapshot {
	t.Helper()
	s := snapshot{
		dim:    m.Dimension(),
		darts:  m.Darts(),
		images: make(map[core.CellKey]core.Dart),
		attrs:  make(map[core.CellKey]string),
	}
	for _, d := range s.darts {
		for i := 0; i <= s.dim; i++ {
			key := core.CellKey{Dart: d, Dim: i}
			if e, ok, err := m.Alpha(d, i); err == nil && ok {
				s.images[key] = e
			}
			v, ok, err := m.Attribute(d, i)
			require.NoError(t, err)
			if ok {
				s.attrs[key] = v
			}
		}
	}
	return s
}
