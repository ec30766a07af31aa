package involution_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ngmap/involution"
)

// requireInvolution checks symmetry and absence of fixed points over the whole domain.
func requireInvolution(t *testing.T, m *involution.Map[int]) {
	t.Helper()
	for _, x := range m.Domain() {
		mate, ok := m.Lookup(x)
		if !ok {
			continue
		}
		require.NotEqual(t, x, mate, "fixed point at %d", x)
		require.True(t, m.Contains(mate), "mate %d of %d outside domain", mate, x)
		back, ok := m.Lookup(mate)
		require.True(t, ok)
		require.Equal(t, x, back, "asymmetric pair %d→%d", x, mate)
	}
}

func TestMap_InsertAndContains(t *testing.T) {
	m := involution.New[int]()
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Contains(1))

	m.InsertUnpaired(1)
	m.InsertUnpaired(1) // idempotent
	assert.True(t, m.Contains(1))
	assert.Equal(t, 1, m.Len())

	_, ok := m.Lookup(1)
	assert.False(t, ok, "freshly inserted element must be free")
	assert.Equal(t, 0, m.PairedLen())
}

func TestMap_PairSymmetric(t *testing.T) {
	m := involution.New[int]()
	m.InsertUnpaired(1)
	m.InsertUnpaired(2)

	require.NoError(t, m.Pair(1, 2))
	got, ok := m.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, 2, got)
	got, ok = m.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, 1, got)
	assert.Equal(t, 2, m.PairedLen())
	requireInvolution(t, m)
}

func TestMap_PairErrors(t *testing.T) {
	m := involution.New[int]()
	for _, x := range []int{1, 2, 3} {
		m.InsertUnpaired(x)
	}
	require.NoError(t, m.Pair(1, 2))

	tests := []struct {
		name string
		a, b int
		want error
	}{
		{"fixed point", 3, 3, involution.ErrFixedPoint},
		{"left missing", 9, 3, involution.ErrNotFound},
		{"right missing", 3, 9, involution.ErrNotFound},
		{"left paired", 1, 3, involution.ErrAlreadyPaired},
		{"right paired", 3, 2, involution.ErrAlreadyPaired},
		{"already mates", 1, 2, involution.ErrAlreadyPaired},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := m.Pair(tc.a, tc.b)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	// failed pairings leave the previous state intact
	mate, ok := m.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, 2, mate)
	_, ok = m.Lookup(3)
	assert.False(t, ok)
	assert.Equal(t, 2, m.PairedLen())
	requireInvolution(t, m)
}

func TestMap_UnpairFreesBoth(t *testing.T) {
	m := involution.New[int]()
	m.InsertUnpaired(1)
	m.InsertUnpaired(2)
	require.NoError(t, m.Pair(1, 2))

	m.Unpair(2)
	_, ok := m.Lookup(1)
	assert.False(t, ok)
	_, ok = m.Lookup(2)
	assert.False(t, ok)
	assert.Equal(t, 0, m.PairedLen())

	// no-op on free and unknown elements
	m.Unpair(1)
	m.Unpair(42)
	assert.Equal(t, 2, m.Len())
}

func TestMap_RemovePairedFreesMate(t *testing.T) {
	m := involution.New[int]()
	m.InsertUnpaired(1)
	m.InsertUnpaired(2)
	require.NoError(t, m.Pair(1, 2))

	m.Remove(1)
	assert.False(t, m.Contains(1))
	assert.True(t, m.Contains(2))
	_, ok := m.Lookup(2)
	assert.False(t, ok)
	assert.Equal(t, 0, m.PairedLen())
	requireInvolution(t, m)
}

func TestMap_Domain(t *testing.T) {
	m := involution.New[int]()
	for _, x := range []int{5, 3, 8} {
		m.InsertUnpaired(x)
	}
	got := m.Domain()
	sort.Ints(got)
	assert.Equal(t, []int{3, 5, 8}, got)
}
