// File: methods_clone.go
// Role: Cloning and clearing map instances.
// Determinism:
//   - Clone/Clear carry over nextID so ids stay monotonic and are never reused.
// Concurrency:
//   - Clone holds the read lock of the source; Clear holds the write lock.

package core

import (
	"github.com/katalvlaran/ngmap/attribute"
	"github.com/katalvlaran/ngmap/involution"
)

// Clone returns a deep copy of the map: dimension, darts, pairings and
// attributes. Attribute values themselves are copied by assignment.
// The clone shares the logger of m.
//
// Identity:
//   - Darts keep their ids, so a Dart of m addresses the same dart in the clone.
//   - nextID is carried so future AddIsolatedDart calls on either map
//     continue the same sequence.
//
// Complexity: O(n·D + |attributes|)
func (m *Map[A]) Clone() *Map[A] {
	m.mu.RLock()
	defer m.mu.RUnlock()

	clone := &Map[A]{
		alphas: make([]involution.Involution[Dart], len(m.alphas)),
		attrs:  attribute.NewStore[CellKey, A](),
		nextID: m.nextID,
		logger: m.logger,
	}
	for i, alpha := range m.alphas {
		cp := involution.New[Dart]()
		domain := alpha.Domain()
		for _, d := range domain {
			cp.InsertUnpaired(d)
		}
		for _, d := range domain {
			// pair each couple once, from its lower id
			if e, ok := alpha.Lookup(d); ok && d.id < e.id {
				_ = cp.Pair(d, e)
			}
		}
		clone.alphas[i] = cp
	}
	m.attrs.Range(func(k CellKey, v A) bool {
		clone.attrs.Set(k, v)
		return true
	})

	return clone
}

// Clear removes every dart and attribute while preserving the dimension.
//
// Behavior:
//   - Reinitializes every involution and the attribute store.
//   - nextID is kept (ids are never reused, even after Clear).
//
// Complexity: O(n)
func (m *Map[A]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.alphas {
		m.alphas[i] = involution.New[Dart]()
	}
	m.attrs = attribute.NewStore[CellKey, A]()
	m.logger.Debug("map cleared", "dim", len(m.alphas)-1)
}
