// Package involution provides partial, symmetric, fixed-point-free pairings
// over a universe of comparable elements.
//
// What
//
//   - An element is either outside the domain, in the domain and free, or in the
//     domain and paired with exactly one other element of the domain.
//   - Pair(a, b) makes a and b mates of each other; Lookup(a) then returns b and
//     Lookup(b) returns a.
//   - No element is ever its own mate (no fixed points).
//
// The generalized-map engine in package core keeps one Involution per
// dimension, indexed 0..n, all sharing the same dart universe.
//
// Errors
//
//   - ErrFixedPoint     if Pair is asked to pair an element with itself.
//   - ErrNotFound       if Pair names an element outside the domain.
//   - ErrAlreadyPaired  if Pair names an element that already has a mate.
//
// Complexity
//
//   - InsertUnpaired, Pair, Lookup, Unpair, Remove, Contains: O(1) amortized.
//   - Domain: O(|domain|), returned in unspecified order.
package involution
