// Package core provides the n-dimensional generalized map (n-Gmap) engine:
// a combinatorial structure describing the topology of a cell-subdivided
// object through darts and n+1 involutions.
//
// The map M = (D, α0, …, αn) guarantees that every externally visible
// operation leaves it algebraically valid:
//
//   - Every αi is a partial involution without fixed points (symmetric pairs).
//   - Every dart is present, possibly free, in every αi.
//   - Pairs are only created through Sew, which checks i-sewability.
//   - A cell carries at most one attribute value per dimension.
//
// Terminology:
//
//	– dart      the atomic element; identity only (Dart, id ≥ 1)
//	– i-free    d has no mate in αi
//	– orbit     darts reachable from d through a subset of involutions
//	– i-cell    orbit of d under every αj with j ≠ i (vertex, edge, face, …)
//	– special range for i: every valid j with j ≤ i−2 or j ≥ i+2
//
// Configuration Options (Option):
//
//	– WithLogger(l *log.Logger)
//	    Structured github.com/charmbracelet/log logger; Debug records are
//	    emitted for every mutation. The default discards output.
//
// Core Methods:
//
//	// Dimensions
//	Dimension() int
//	IncreaseDimension() int
//	DecreaseDimension() error                 // ErrIllegalDimensionChange
//
//	// Darts
//	AddIsolatedDart() Dart
//	RemoveIsolatedDart(d Dart) error           // ErrDartNotFound, ErrNotIsolated
//	ContainsDart(d Dart) bool
//	Darts() []Dart                             // sorted by id
//	IsIFree(d Dart, i int) (bool, error)
//	IsIsolated(d Dart) bool
//	Alpha(d Dart, i int) (Dart, bool, error)
//
//	// Orbits and sewing
//	Orbit(d Dart, dims ...int) ([]Dart, error)
//	Orbits(dims ...int) ([][]Dart, error)
//	IsSewable(d1, d2 Dart, i int) (bool, error)
//	Sew(d1, d2 Dart, i int) error              // ErrNotSewable
//	Unsew(d Dart, i int) error
//
//	// Cells and attributes
//	ICell(d Dart, i int) ([]Dart, error)
//	Cells(i int) ([][]Dart, error)
//	CellCount(i int) (int, error)
//	PutAttribute(d Dart, i int, v A) error     // ErrDuplicateAttribute
//	Attribute(d Dart, i int) (A, bool, error)
//	RemoveAttribute(d Dart, i int) error
//
//	// Whole-map utilities
//	Validate() error                           // ErrCorrupted
//	Clone() *Map[A]
//	Clear()
//
// Every dimension-taking method returns ErrInvalidDimension for i outside
// [0, Dimension()], and every failing method leaves the map untouched.
//
// Example:
//
//	m, _ := core.New[string](2)
//	a, b := m.AddIsolatedDart(), m.AddIsolatedDart()
//	_ = m.Sew(a, b, 0)              // a and b now form an edge
//	_ = m.PutAttribute(a, 1, "e1")  // label the 1-cell (edge)
//	v, _, _ := m.Attribute(b, 1)    // "e1": b lies in the same edge
package core
