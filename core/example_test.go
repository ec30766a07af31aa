package core_test

import (
	"fmt"

	"github.com/katalvlaran/ngmap/core"
)

// ExampleMap builds a single edge, 0-sewing its two darts.
func ExampleMap() {
	// 1) Create a 2-map; attributes are strings.
	m, _ := core.New[string](2)

	// 2) Two isolated darts, then 0-sew them into an edge.
	a, b := m.AddIsolatedDart(), m.AddIsolatedDart()
	_ = m.Sew(a, b, 0)

	// 3) Inspect the pairing.
	mate, ok, _ := m.Alpha(a, 0)
	free, _ := m.IsIFree(a, 1)
	fmt.Println(a, b, mate, ok, free)

	// Output:
	// d1 d2 d2 true true
}

// ExampleMap_ICell builds a square and reads its cells.
func ExampleMap_ICell() {
	m, _ := core.New[string](2)

	// Four edges, each 1-sewn to the next; the last closes the loop.
	var darts []core.Dart
	for k := 0; k < 4; k++ {
		a, b := m.AddIsolatedDart(), m.AddIsolatedDart()
		_ = m.Sew(a, b, 0)
		if k > 0 {
			_ = m.Sew(darts[len(darts)-1], a, 1)
		}
		darts = append(darts, a, b)
	}
	_ = m.Sew(darts[len(darts)-1], darts[0], 1)

	face, _ := m.ICell(darts[0], 2)
	fmt.Println("face:", face)
	for i := 0; i <= m.Dimension(); i++ {
		n, _ := m.CellCount(i)
		fmt.Printf("%d-cells: %d\n", i, n)
	}

	// Output:
	// face: [d1 d2 d8 d3 d7 d4 d6 d5]
	// 0-cells: 4
	// 1-cells: 4
	// 2-cells: 1
}

// ExampleMap_PutAttribute attaches a value to a vertex and reads it from
// another dart of the same vertex.
func ExampleMap_PutAttribute() {
	m, _ := core.New[string](1)
	a, b := m.AddIsolatedDart(), m.AddIsolatedDart()
	_ = m.Sew(a, b, 1)

	_ = m.PutAttribute(a, 0, "origin")
	v, ok, _ := m.Attribute(b, 0)
	fmt.Println(v, ok)

	err := m.PutAttribute(b, 0, "again")
	fmt.Println(err != nil)

	// Output:
	// origin true
	// true
}
