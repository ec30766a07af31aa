// File: methods_darts.go
// Role: Dart lifecycle & queries.
//
// Determinism:
//   - Darts() returns darts sorted by ascending id.
//
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "sort"

// AddIsolatedDart creates a dart with a fresh id and enters it, free, into
// every involution.
// Complexity: O(n)
func (m *Map[A]) AddIsolatedDart() Dart {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	d := Dart{id: m.nextID}
	for _, alpha := range m.alphas {
		alpha.InsertUnpaired(d)
	}
	m.logger.Debug("dart added", "dart", d)

	return d
}

// RemoveIsolatedDart deletes d from every involution and drops every
// attribute recorded on it.
//
// Errors:
//   - ErrDartNotFound: d is not part of the map.
//   - ErrNotIsolated:  d is paired in some involution.
//
// Complexity: O(n)
func (m *Map[A]) RemoveIsolatedDart(d Dart) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkDart("RemoveIsolatedDart", d); err != nil {
		return err
	}
	for i, alpha := range m.alphas {
		if _, paired := alpha.Lookup(d); paired {
			return errorf("RemoveIsolatedDart", "%v paired at %d: %w", d, i, ErrNotIsolated)
		}
	}

	for i, alpha := range m.alphas {
		alpha.Remove(d)
		m.attrs.Clear(CellKey{Dart: d, Dim: i})
	}
	m.logger.Debug("dart removed", "dart", d)

	return nil
}

// ContainsDart reports whether d belongs to the map.
// Complexity: O(n)
func (m *Map[A]) ContainsDart(d Dart) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.contains(d)
}

// contains scans every involution's domain. Callers hold the lock.
func (m *Map[A]) contains(d Dart) bool {
	for _, alpha := range m.alphas {
		if alpha.Contains(d) {
			return true
		}
	}
	return false
}

// Darts returns every dart of the map, sorted by id.
// Complexity: O(n·D log D) for D darts.
func (m *Map[A]) Darts() []Dart {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.darts()
}

// darts collects the union of all domains. Callers hold the lock.
func (m *Map[A]) darts() []Dart {
	seen := make(map[Dart]struct{}, m.alphas[0].Len())
	out := make([]Dart, 0, m.alphas[0].Len())
	for _, alpha := range m.alphas {
		for _, d := range alpha.Domain() {
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			out = append(out, d)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].id < out[b].id })

	return out
}

// Len returns the number of darts.
// Complexity: O(1)
func (m *Map[A]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.alphas[0].Len()
}

// IsIFree reports whether d is absent from, or unpaired in, involution i.
//
// Errors:
//   - ErrInvalidDimension: i outside [0, Dimension()].
func (m *Map[A]) IsIFree(d Dart, i int) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.checkDim("IsIFree", i); err != nil {
		return false, err
	}
	return m.isFree(d, i), nil
}

// isFree is IsIFree without validation. Callers hold the lock.
func (m *Map[A]) isFree(d Dart, i int) bool {
	_, paired := m.alphas[i].Lookup(d)
	return !paired
}

// IsIsolated reports whether d is i-free for every dimension i.
// Complexity: O(n)
func (m *Map[A]) IsIsolated(d Dart) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.alphas {
		if !m.isFree(d, i) {
			return false
		}
	}
	return true
}

// Alpha returns the image of d under involution i, if d is paired there.
//
// Errors:
//   - ErrInvalidDimension: i outside [0, Dimension()].
func (m *Map[A]) Alpha(d Dart, i int) (Dart, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.checkDim("Alpha", i); err != nil {
		return Dart{}, false, err
	}
	e, ok := m.alphas[i].Lookup(d)
	return e, ok, nil
}
