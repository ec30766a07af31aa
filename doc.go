// Package ngmap is an in-memory engine for n-dimensional generalized maps
// (n-Gmaps): combinatorial models of subdivided objects built from darts and
// n+1 involutions α0..αn.
//
// What is in the box?
//
//	A thread-safe, generic library that brings together:
//		• Darts & involutions: create, pair, unpair, never reuse ids
//		• Orbits: breadth-first orbit walks under any set of involutions
//		• Cells: i-cells, cell counts, one attribute per cell
//		• Sewing: i-sewability (orbit isomorphism) and lockstep sew/unsew
//		• Dimension changes: grow or shrink n without breaking invariants
//		• Builders: edges, convex polygons, composed constructors
//
// Guarantees:
//
//   - Every public call leaves the map algebraically valid: each αi is
//     symmetric and fixed-point-free, and every dart lives in every αi.
//   - Failed calls mutate nothing and return a sentinel error (errors.Is).
//   - Orbits and cells are reported in deterministic breadth-first order.
//
// Packages:
//
//	core/        - Dart, Map, sewing, cells, attributes, Validate
//	involution/  - partial, fixed-point-free involutions over comparable keys
//	attribute/   - keyed store of optional values
//	bfs/         - lazy breadth-first walker used for every orbit
//	builder/     - AddEdge, AddConvexPolygon, AddPolygonEdges, Apply
//	cmd/ngmap    - CLI that builds shapes and prints their cell statistics
//
// Quick ASCII example (a square: 8 darts, α0 inside edges, α1 at corners):
//
//	    d1 ─α0─ d2
//	    │        │
//	    α1      α1
//	    │        │
//	    d8      d3
//	   ...      ...
//
//	go get github.com/katalvlaran/ngmap
package ngmap
