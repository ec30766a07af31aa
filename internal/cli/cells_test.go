package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ngmap/core"
)

func TestBuildStrip_Squares(t *testing.T) {
	m, err := core.New[string](2)
	require.NoError(t, err)
	require.NoError(t, buildStrip(m, 3, 4))

	r, err := newReport("strip", m)
	require.NoError(t, err)
	require.NoError(t, r.Valid)
	assert.Equal(t, 24, r.Darts)
	// K squares in a row: 2K+2 vertices, 3K+1 edges, K faces
	assert.Equal(t, []int{8, 10, 3}, r.Cells)
}

func TestBuildStrip_Errors(t *testing.T) {
	tests := []struct {
		name     string
		dim      int
		polygons int
		edges    int
	}{
		{"no polygons", 2, 0, 4},
		{"monogons cannot be glued", 2, 2, 1},
		{"dimension too low", 1, 2, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := core.New[string](tt.dim)
			require.NoError(t, err)
			assert.ErrorIs(t, buildStrip(m, tt.polygons, tt.edges), ErrBadStrip)
			assert.Zero(t, m.Len(), "rejected strip creates no darts")
		})
	}
}

func TestBuildStrip_SinglePolygonAnyDimension(t *testing.T) {
	m, err := core.New[string](1)
	require.NoError(t, err)
	require.NoError(t, buildStrip(m, 1, 1))
	assert.Equal(t, 2, m.Len())
}

func TestCellsCommand(t *testing.T) {
	out, logs, err := run(t, "cells", "--polygons", "3", "--edges", "3", "--dimension", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "strip of 3 3-gons")
	assert.Regexp(t, `darts\s+18`, out)
	// K triangles in a row: K+2 vertices, 2K+1 edges, K faces, one volume
	assert.Regexp(t, `0-cells\s+5`, out)
	assert.Regexp(t, `1-cells\s+7`, out)
	assert.Regexp(t, `2-cells\s+3`, out)
	assert.Regexp(t, `3-cells\s+1`, out)
	assert.Contains(t, logs, "strip built")
}

func TestCellsCommand_Rejects(t *testing.T) {
	_, _, err := run(t, "cells", "--polygons", "2", "--dimension", "1")
	assert.ErrorIs(t, err, ErrBadStrip)
}
