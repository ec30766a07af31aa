// File: methods_dimension.go
// Role: Dimension management.
//
// Invariants:
//   - Dimension() == len(alphas)-1 >= 0.
//   - A dimension is only removed when its involution holds no pairs.
//   - Every dart is present in every involution, including a freshly added one.

package core

import "github.com/katalvlaran/ngmap/involution"

// Dimension returns n, the highest valid involution index.
// Complexity: O(1)
func (m *Map[A]) Dimension() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.alphas) - 1
}

// IncreaseDimension appends a new top involution in which every existing
// dart is present and free, and returns the new dimension.
// Complexity: O(|darts|)
func (m *Map[A]) IncreaseDimension() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	alpha := involution.New[Dart]()
	for _, d := range m.alphas[0].Domain() {
		alpha.InsertUnpaired(d)
	}
	m.alphas = append(m.alphas, alpha)
	n := len(m.alphas) - 1
	m.logger.Debug("dimension increased", "dim", n)

	return n
}

// DecreaseDimension removes the top involution.
//
// Errors:
//   - ErrIllegalDimensionChange: the map is 0-dimensional, or some dart is
//     paired in the top involution.
//
// Attributes recorded for the removed dimension are discarded.
// Complexity: O(|attributes|)
func (m *Map[A]) DecreaseDimension() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	top := len(m.alphas) - 1
	if top == 0 {
		return errorf("DecreaseDimension", "dimension is 0: %w", ErrIllegalDimensionChange)
	}
	if paired := m.alphas[top].PairedLen(); paired > 0 {
		return errorf("DecreaseDimension", "%d darts paired at %d: %w", paired, top, ErrIllegalDimensionChange)
	}

	m.alphas[top] = nil
	m.alphas = m.alphas[:top]
	purged := m.attrs.DeleteFunc(func(k CellKey) bool { return k.Dim == top })
	m.logger.Debug("dimension decreased", "dim", top-1, "purged", purged)

	return nil
}
