// Package builder assembles common shapes on top of a core.Map using only
// the public dart and sewing primitives.
//
// The package offers:
//
//   - Edge:             the two darts of an edge (0-sewn together).
//   - AddEdge:          two isolated darts 0-sewn into an edge.
//   - AddConvexPolygon: a closed loop of edges, 1-sewn end to end.
//   - AddPolygonEdges:  the same loop, returning every edge it created.
//   - Constructor/Apply: compose several shapes in one call, in order.
//
// Every builder accepts any Sewer, so it works with *core.Map[A] for every
// attribute type A. Builders do not roll back on failure: darts created
// before a failing sew stay in the map, which remains valid.
//
// Complexity: O(edges) sewings; every sewing joins two singleton orbits.
package builder
