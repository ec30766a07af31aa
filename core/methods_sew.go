// File: methods_sew.go
// Role: Sewability test, sewing and unsewing.
//
// Degenerate case (n <= 1, or n == 2 and i == 1):
//   - d1 and d2 are i-sewable iff they are distinct, known and i-free.
//
// General case:
//   - The orbits of d1 and d2 under specialRange(i) are walked in lockstep.
//     The k-th dart of one is matched with the k-th dart of the other; the
//     match must commute with every special involution, both walks must end
//     together, every matched dart must be i-free, and the two orbits must
//     be distinct.
//   - The validated match is the list of pairs Sew applies, so the orbits
//     are walked once per Sew.
//
// Atomicity:
//   - Sew and Unsew validate everything before the first mutation.

package core

import (
	"fmt"

	"github.com/katalvlaran/ngmap/involution"
)

// degenerate reports whether i-sewing needs no orbit comparison.
func (m *Map[A]) degenerate(i int) bool {
	n := len(m.alphas) - 1
	return n <= 1 || (n == 2 && i == 1)
}

// sewPlan returns the dart pairs an i-sewing of d1 and d2 creates, or a
// non-empty reason why the darts are not i-sewable. Callers hold the lock
// and have validated i.
func (m *Map[A]) sewPlan(d1, d2 Dart, i int) ([][2]Dart, string) {
	switch {
	case d1 == d2:
		return nil, "identical darts"
	case !m.contains(d1):
		return nil, fmt.Sprintf("%v not in map", d1)
	case !m.contains(d2):
		return nil, fmt.Sprintf("%v not in map", d2)
	case !m.isFree(d1, i):
		return nil, fmt.Sprintf("%v not %d-free", d1, i)
	case !m.isFree(d2, i):
		return nil, fmt.Sprintf("%v not %d-free", d2, i)
	}
	if m.degenerate(i) {
		return [][2]Dart{{d1, d2}}, ""
	}

	dims := m.specialRange(i)
	special := make([]involution.Involution[Dart], len(dims))
	for k, j := range dims {
		special[k] = m.alphas[j]
	}

	left, right := m.walker(d1, dims), m.walker(d2, dims)
	iso := make(map[Dart]Dart)
	var pairs [][2]Dart
	for {
		l, lok := left.Next()
		r, rok := right.Next()
		if !lok || !rok {
			if lok != rok {
				return nil, "orbit sizes differ"
			}
			break
		}
		if !m.isFree(l, i) || !m.isFree(r, i) {
			return nil, fmt.Sprintf("orbit dart %v or %v not %d-free", l, r, i)
		}
		iso[l] = r
		pairs = append(pairs, [2]Dart{l, r})

		for k, alpha := range special {
			la, lpaired := alpha.Lookup(l)
			ra, rpaired := alpha.Lookup(r)
			if lpaired != rpaired {
				return nil, fmt.Sprintf("%v and %v differ at dimension %d", l, r, dims[k])
			}
			if !lpaired {
				continue
			}
			if img, mapped := iso[la]; mapped && img != ra {
				return nil, fmt.Sprintf("orbits not isomorphic at dimension %d", dims[k])
			}
		}
	}
	// orbits are equivalence classes: equal iff d2 was reached from d1
	if left.Seen(d2) {
		return nil, "orbits coincide"
	}

	return pairs, ""
}

// IsSewable reports whether d1 and d2 may be paired at dimension i.
// Darts that are not part of the map are never sewable.
//
// Errors:
//   - ErrInvalidDimension: i outside [0, Dimension()].
//
// Complexity: O(|orbit|·n) in the general case, O(n) otherwise.
func (m *Map[A]) IsSewable(d1, d2 Dart, i int) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.checkDim("IsSewable", i); err != nil {
		return false, err
	}
	_, reason := m.sewPlan(d1, d2, i)
	return reason == "", nil
}

// Sew pairs d1 with d2 at dimension i; in the general case every matched
// pair of their special-range orbits is paired as well.
//
// When the sewing merges k-cells (k != i) that each carried an attribute,
// only the value Attribute(d1, k) reports afterwards is kept.
//
// Errors:
//   - ErrInvalidDimension: i outside [0, Dimension()].
//   - ErrNotSewable:       IsSewable(d1, d2, i) is false; nothing is mutated.
func (m *Map[A]) Sew(d1, d2 Dart, i int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkDim("Sew", i); err != nil {
		return err
	}
	pairs, reason := m.sewPlan(d1, d2, i)
	if reason != "" {
		m.logger.Debug("sew rejected", "dart1", d1, "dart2", d2, "dim", i, "reason", reason)
		return errorf("Sew", "(%v,%v) at %d: %s: %w", d1, d2, i, reason, ErrNotSewable)
	}

	alpha := m.alphas[i]
	for _, p := range pairs {
		if err := alpha.Pair(p[0], p[1]); err != nil {
			// sewPlan checked every precondition of Pair
			return errorf("Sew", "%v: %w", err, ErrCorrupted)
		}
	}
	dropped := m.reconcileAttributes(pairs, i)
	m.logger.Debug("sewn", "dart1", d1, "dart2", d2, "dim", i, "pairs", len(pairs), "dropped", dropped)

	return nil
}

// reconcileAttributes restores "one value per cell" after an i-sewing by
// keeping, in every merged k-cell, the first value met in breadth-first
// order from the left dart of the cell. Returns the number of values dropped.
func (m *Map[A]) reconcileAttributes(pairs [][2]Dart, i int) int {
	if m.attrs.Len() == 0 {
		return 0
	}
	dropped := 0
	for k := range m.alphas {
		if k == i {
			continue
		}
		dims := m.excludedRange(k)
		seen := make(map[Dart]struct{})
		for _, p := range pairs {
			if _, ok := seen[p[0]]; ok {
				continue
			}
			kept := false
			for _, e := range m.orbit(p[0], dims) {
				seen[e] = struct{}{}
				key := CellKey{Dart: e, Dim: k}
				if !m.attrs.Has(key) {
					continue
				}
				if !kept {
					kept = true
					continue
				}
				m.attrs.Clear(key)
				dropped++
			}
		}
	}
	return dropped
}

// Unsew frees, at dimension i, every dart in the special-range orbit of d
// (and therefore their former mates). Darts already i-free are left alone,
// so unsewing a free orbit is a no-op.
//
// Errors:
//   - ErrInvalidDimension: i outside [0, Dimension()].
//   - ErrDartNotFound:     d is not part of the map.
func (m *Map[A]) Unsew(d Dart, i int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkDim("Unsew", i); err != nil {
		return err
	}
	if err := m.checkDart("Unsew", d); err != nil {
		return err
	}

	alpha := m.alphas[i]
	freed := 0
	for _, e := range m.orbit(d, m.specialRange(i)) {
		if _, paired := alpha.Lookup(e); paired {
			alpha.Unpair(e)
			freed++
		}
	}
	m.logger.Debug("unsewn", "dart", d, "dim", i, "pairs", freed)

	return nil
}
