package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ngmap/core"
)

// ids extracts dart ids for compact comparisons.
func ids(darts []core.Dart) []uint64 {
	out := make([]uint64, len(darts))
	for k, d := range darts {
		out[k] = d.ID()
	}
	return out
}

func TestOrbit_SquareBreadthFirstOrder(t *testing.T) {
	m := newMap(t, Dim2)
	darts := addPolygon(t, m, 4)
	require.Len(t, darts, 8)

	orbit, err := m.Orbit(darts[0], Dim0, Dim1)
	require.NoError(t, err)
	// α0 images come before α1 images at every step
	assert.Equal(t, []uint64{1, 2, 8, 3, 7, 4, 6, 5}, ids(orbit))
}

func TestOrbit_NoDimensions(t *testing.T) {
	m := newMap(t, Dim2)
	darts := addPolygon(t, m, 3)

	orbit, err := m.Orbit(darts[3])
	require.NoError(t, err)
	assert.Equal(t, []core.Dart{darts[3]}, orbit)
}

func TestOrbit_UnknownDart(t *testing.T) {
	m := newMap(t, Dim1)
	_, err := m.Orbit(core.Dart{}, Dim0)
	assert.ErrorIs(t, err, core.ErrDartNotFound)
}

func TestOrbit_IsFreshPerCall(t *testing.T) {
	m := newMap(t, Dim2)
	darts := addPolygon(t, m, 5)

	first, err := m.Orbit(darts[0], Dim0, Dim1)
	require.NoError(t, err)
	second, err := m.Orbit(darts[0], Dim0, Dim1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, first, 10)
}

func TestOrbits_PartitionEdges(t *testing.T) {
	m := newMap(t, Dim2)
	darts := addPolygon(t, m, 4)

	orbits, err := m.Orbits(Dim0)
	require.NoError(t, err)
	require.Len(t, orbits, 4)
	for k, orb := range orbits {
		assert.Equal(t, []core.Dart{darts[2*k], darts[2*k+1]}, orb)
	}

	// vertices: pairs joined by α1
	orbits, err = m.Orbits(Dim1)
	require.NoError(t, err)
	require.Len(t, orbits, 4)
	assert.Equal(t, []core.Dart{darts[0], darts[7]}, orbits[0])
}
