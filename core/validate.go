// File: validate.go
// Role: Full structural check of a Map.
//
// Validate never mutates; it is meant for tests and for callers that
// mutate involutions through unusual paths and want a cheap sanity check.

package core

// Validate checks, over the whole map:
//   - every involution is symmetric, fixed-point-free and closed over its domain;
//   - all involutions share the same dart universe;
//   - every attribute key names a known dart and a valid dimension;
//   - no cell holds more than one attribute value.
//
// Returns ErrCorrupted, wrapped with the first violation found.
// Complexity: O(n·D) plus O(n·D) for the cell scan.
func (m *Map[A]) Validate() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	base := m.alphas[0]
	for i, alpha := range m.alphas {
		if alpha.Len() != base.Len() {
			return errorf("Validate", "involution %d holds %d darts, involution 0 holds %d: %w", i, alpha.Len(), base.Len(), ErrCorrupted)
		}
		paired := 0
		for _, d := range alpha.Domain() {
			if !base.Contains(d) {
				return errorf("Validate", "%v present at %d only: %w", d, i, ErrCorrupted)
			}
			e, ok := alpha.Lookup(d)
			if !ok {
				continue
			}
			paired++
			if e == d {
				return errorf("Validate", "fixed point %v at %d: %w", d, i, ErrCorrupted)
			}
			if !alpha.Contains(e) {
				return errorf("Validate", "mate %v of %v outside domain at %d: %w", e, d, i, ErrCorrupted)
			}
			if back, ok := alpha.Lookup(e); !ok || back != d {
				return errorf("Validate", "asymmetric pair %v→%v at %d: %w", d, e, i, ErrCorrupted)
			}
		}
		if paired != alpha.PairedLen() {
			return errorf("Validate", "involution %d reports %d paired, found %d: %w", i, alpha.PairedLen(), paired, ErrCorrupted)
		}
	}

	var bad error
	m.attrs.Range(func(k CellKey, _ A) bool {
		if k.Dim < 0 || k.Dim >= len(m.alphas) || !base.Contains(k.Dart) {
			bad = errorf("Validate", "stale attribute on %v at %d: %w", k.Dart, k.Dim, ErrCorrupted)
			return false
		}
		return true
	})
	if bad != nil {
		return bad
	}
	if m.attrs.Len() == 0 {
		return nil
	}

	for i := range m.alphas {
		for _, cell := range m.orbits(m.excludedRange(i)) {
			holders := 0
			for _, d := range cell {
				if m.attrs.Has(CellKey{Dart: d, Dim: i}) {
					holders++
				}
			}
			if holders > 1 {
				return errorf("Validate", "%d-cell of %v holds %d values: %w", i, cell[0], holders, ErrCorrupted)
			}
		}
	}
	return nil
}
