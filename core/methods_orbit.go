// File: methods_orbit.go
// Role: Orbit traversal over a subset of involutions.
//
// Determinism:
//   - The neighbor function lists images in ascending dimension order, so an
//     orbit walk visits darts in a reproducible breadth-first order.
//   - Orbits() starts each orbit from its lowest-id dart.

package core

import (
	"github.com/katalvlaran/ngmap/bfs"
	"github.com/katalvlaran/ngmap/involution"
)

// neighbors returns the function mapping a dart to its images under the
// involutions of dims. Callers hold the lock and have validated dims.
func (m *Map[A]) neighbors(dims []int) func(Dart) []Dart {
	alphas := make([]involution.Involution[Dart], len(dims))
	for k, i := range dims {
		alphas[k] = m.alphas[i]
	}
	return func(d Dart) []Dart {
		out := make([]Dart, 0, len(alphas))
		for _, alpha := range alphas {
			if e, ok := alpha.Lookup(d); ok {
				out = append(out, e)
			}
		}
		return out
	}
}

// walker starts a lazy orbit walk from d. Callers hold the lock.
func (m *Map[A]) walker(d Dart, dims []int) *bfs.Walker[Dart] {
	// neighbors is never nil and no options are passed, so New cannot fail
	w, _ := bfs.New(d, m.neighbors(dims))
	return w
}

// orbit materializes the orbit of d under dims. Callers hold the lock.
func (m *Map[A]) orbit(d Dart, dims []int) []Dart {
	out, _ := bfs.Collect(d, m.neighbors(dims))
	return out
}

// rangeWhere lists the valid dimensions j satisfying keep.
func (m *Map[A]) rangeWhere(keep func(j int) bool) []int {
	out := make([]int, 0, len(m.alphas))
	for j := range m.alphas {
		if keep(j) {
			out = append(out, j)
		}
	}
	return out
}

// specialRange lists j with j <= i-2 or j >= i+2: the involutions an
// i-sewing has to keep consistent.
func (m *Map[A]) specialRange(i int) []int {
	return m.rangeWhere(func(j int) bool { return j <= i-2 || j >= i+2 })
}

// excludedRange lists every j != i: the involutions spanning an i-cell.
func (m *Map[A]) excludedRange(i int) []int {
	return m.rangeWhere(func(j int) bool { return j != i })
}

// Orbit returns the darts reachable from d by repeatedly applying the
// involutions of dims, in breadth-first order starting with d.
// With no dims the orbit is {d}.
//
// Errors:
//   - ErrInvalidDimension: some entry of dims is out of range.
//   - ErrDartNotFound:     d is not part of the map.
//
// Complexity: O(|orbit|·len(dims))
func (m *Map[A]) Orbit(d Dart, dims ...int) ([]Dart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, i := range dims {
		if err := m.checkDim("Orbit", i); err != nil {
			return nil, err
		}
	}
	if err := m.checkDart("Orbit", d); err != nil {
		return nil, err
	}
	return m.orbit(d, dims), nil
}

// Orbits partitions the whole map into orbits under dims.
// Orbits are ordered by their lowest dart id.
//
// Errors:
//   - ErrInvalidDimension: some entry of dims is out of range.
//
// Complexity: O(D·len(dims)) for D darts, plus sorting.
func (m *Map[A]) Orbits(dims ...int) ([][]Dart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, i := range dims {
		if err := m.checkDim("Orbits", i); err != nil {
			return nil, err
		}
	}
	return m.orbits(dims), nil
}

// orbits is Orbits without locking or validation.
func (m *Map[A]) orbits(dims []int) [][]Dart {
	var out [][]Dart
	seen := make(map[Dart]struct{}, m.alphas[0].Len())
	for _, d := range m.darts() {
		if _, ok := seen[d]; ok {
			continue
		}
		orb := m.orbit(d, dims)
		for _, e := range orb {
			seen[e] = struct{}{}
		}
		out = append(out, orb)
	}
	return out
}
