// File: methods_cells.go
// Role: i-cells and the attributes attached to them.
//
// An i-cell is the orbit of a dart under every involution except alpha_i.
// An attribute is recorded on one representative dart of its cell but
// answers for the whole cell; at most one dart per cell holds a value.

package core

// ICell returns the i-cell containing d in breadth-first order from d.
//
// Errors:
//   - ErrInvalidDimension: i outside [0, Dimension()].
//   - ErrDartNotFound:     d is not part of the map.
func (m *Map[A]) ICell(d Dart, i int) ([]Dart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.checkCell("ICell", d, i); err != nil {
		return nil, err
	}
	return m.orbit(d, m.excludedRange(i)), nil
}

// Cells partitions the map into its i-cells, ordered by lowest dart id.
//
// Errors:
//   - ErrInvalidDimension: i outside [0, Dimension()].
func (m *Map[A]) Cells(i int) ([][]Dart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.checkDim("Cells", i); err != nil {
		return nil, err
	}
	return m.orbits(m.excludedRange(i)), nil
}

// CellCount returns the number of distinct i-cells.
//
// Errors:
//   - ErrInvalidDimension: i outside [0, Dimension()].
func (m *Map[A]) CellCount(i int) (int, error) {
	cells, err := m.Cells(i)
	if err != nil {
		return 0, err
	}
	return len(cells), nil
}

// checkCell validates the (d, i) pair addressing a cell.
func (m *Map[A]) checkCell(method string, d Dart, i int) error {
	if err := m.checkDim(method, i); err != nil {
		return err
	}
	return m.checkDart(method, d)
}

// PutAttribute attaches value to the i-cell of d, recording it on d.
//
// Errors:
//   - ErrInvalidDimension:   i outside [0, Dimension()].
//   - ErrDartNotFound:       d is not part of the map.
//   - ErrDuplicateAttribute: some dart of the cell already holds a value.
//
// Complexity: O(|cell|·n)
func (m *Map[A]) PutAttribute(d Dart, i int, value A) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkCell("PutAttribute", d, i); err != nil {
		return err
	}
	for _, e := range m.orbit(d, m.excludedRange(i)) {
		if m.attrs.Has(CellKey{Dart: e, Dim: i}) {
			return errorf("PutAttribute", "%d-cell of %v already holds a value on %v: %w", i, d, e, ErrDuplicateAttribute)
		}
	}
	m.attrs.Set(CellKey{Dart: d, Dim: i}, value)
	m.logger.Debug("attribute set", "dart", d, "dim", i)

	return nil
}

// Attribute returns the value attached to the i-cell of d, if any.
//
// Errors:
//   - ErrInvalidDimension: i outside [0, Dimension()].
//   - ErrDartNotFound:     d is not part of the map.
func (m *Map[A]) Attribute(d Dart, i int) (A, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var zero A
	if err := m.checkCell("Attribute", d, i); err != nil {
		return zero, false, err
	}
	for _, e := range m.orbit(d, m.excludedRange(i)) {
		if v, ok := m.attrs.Get(CellKey{Dart: e, Dim: i}); ok {
			return v, true, nil
		}
	}
	return zero, false, nil
}

// RemoveAttribute clears the attribute of the i-cell of d on every dart of
// the cell. Removing from a cell without a value is a no-op.
//
// Errors:
//   - ErrInvalidDimension: i outside [0, Dimension()].
//   - ErrDartNotFound:     d is not part of the map.
func (m *Map[A]) RemoveAttribute(d Dart, i int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkCell("RemoveAttribute", d, i); err != nil {
		return err
	}
	cleared := 0
	for _, e := range m.orbit(d, m.excludedRange(i)) {
		if m.attrs.Clear(CellKey{Dart: e, Dim: i}) {
			cleared++
		}
	}
	m.logger.Debug("attribute removed", "dart", d, "dim", i, "cleared", cleared)

	return nil
}
