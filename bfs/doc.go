// Package bfs provides a lazy, generic breadth-first walk over any structure
// that can describe itself through a neighbor function.
//
// What
//
//   - Explore elements in non-decreasing distance (hop count) from a start element.
//   - The structure is never materialized: neighbors(x) is called once per
//     element, at the moment x is dequeued.
//   - Each reachable element is produced exactly once; repeats returned by the
//     neighbor function (self-references, parallel links) are ignored.
//   - Honors a MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Orbits of a generalized map are exactly the reachable sets of a dart
//     under a chosen subset of involutions; package core drives this walker
//     with a neighbor function built from those involutions.
//   - Two Walkers can be advanced in lockstep, which is how core compares
//     orbits structurally.
//
// Determinism
//
//	Neighbors are enqueued in the order the neighbor function returns them,
//	so the visit sequence is fully reproducible for a deterministic function.
//
// Complexity (V = reachable elements, E = neighbor links returned)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue and visited set)
//
// Usage
//
//	w, err := bfs.New(start, neighbors)
//	if err != nil {
//	    // ErrNilNeighbors or ErrOptionViolation
//	}
//	for x, ok := w.Next(); ok; x, ok = w.Next() {
//	    // ...
//	}
//
//	// Re-rangeable sequence:
//	seq, _ := bfs.BreadthFirst(start, neighbors, bfs.WithMaxDepth(2))
//	for x := range seq { /* ... */ }
//
// Options
//
//   - DefaultOptions(): no depth limit, no presizing.
//   - WithMaxDepth(d):  stop exploring beyond depth d (>0).
//   - WithCapacity(n):  presize the queue and visited set.
//
// Errors
//
//   - ErrNilNeighbors     if the neighbor function is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
package bfs
