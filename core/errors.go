package core

import "fmt"

// errorf prefixes a formatted message with the method name, keeping any
// %w-wrapped sentinel reachable through errors.Is.
func errorf(method, format string, args ...interface{}) error {
	return fmt.Errorf(method+": "+format, args...)
}

// checkDim validates i against [0, Dimension()]. Callers hold the lock.
func (m *Map[A]) checkDim(method string, i int) error {
	if i < 0 || i >= len(m.alphas) {
		return errorf(method, "i=%d outside [0,%d]: %w", i, len(m.alphas)-1, ErrInvalidDimension)
	}
	return nil
}

// checkDart validates membership of d. Callers hold the lock.
func (m *Map[A]) checkDart(method string, d Dart) error {
	if !m.contains(d) {
		return errorf(method, "%v: %w", d, ErrDartNotFound)
	}
	return nil
}
