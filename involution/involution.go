// SPDX-License-Identifier: MIT
// Package: ngmap/involution
//
// involution.go - the Involution contract and its map-backed implementation.
//
// Contract:
//   • Symmetry: Lookup(a) == b  ⇔  Lookup(b) == a.
//   • No fixed points: Lookup(a) never returns a.
//   • Pair never overwrites an existing mate; callers unpair first.
//   • Remove of a paired element frees its mate before deleting it.

package involution

import (
	"errors"
	"fmt"
)

// Sentinel errors for involution mutations.
var (
	// ErrFixedPoint indicates an attempt to pair an element with itself.
	ErrFixedPoint = errors.New("involution: element cannot be paired with itself")

	// ErrNotFound indicates that an element is not part of the domain.
	ErrNotFound = errors.New("involution: element not in domain")

	// ErrAlreadyPaired indicates that an element already has a mate.
	ErrAlreadyPaired = errors.New("involution: element already paired")
)

// Involution is a partial, symmetric, fixed-point-free pairing over T.
type Involution[T comparable] interface {
	// InsertUnpaired enters x into the domain without a mate.
	// Inserting an element that is already present is a no-op.
	InsertUnpaired(x T)

	// Pair makes a and b mates of each other.
	Pair(a, b T) error

	// Lookup returns the mate of x, if x is in the domain and paired.
	Lookup(x T) (T, bool)

	// Unpair frees x and its mate. Unpairing a free or unknown element is a no-op.
	Unpair(x T)

	// Remove frees x and deletes it from the domain.
	Remove(x T)

	// Contains reports whether x is in the domain.
	Contains(x T) bool

	// Domain returns every element of the domain.
	Domain() []T

	// Len returns the size of the domain.
	Len() int

	// PairedLen returns how many elements of the domain currently have a mate.
	PairedLen() int
}

// slot is the domain record of one element.
type slot[T comparable] struct {
	mate   T
	paired bool
}

// Map is the default Involution, backed by a single Go map.
// It is not safe for concurrent mutation; package core serializes access.
type Map[T comparable] struct {
	slots  map[T]slot[T]
	paired int
}

// New returns an empty Map.
func New[T comparable]() *Map[T] {
	return &Map[T]{slots: make(map[T]slot[T])}
}

// InsertUnpaired enters x into the domain as a free element.
func (m *Map[T]) InsertUnpaired(x T) {
	if _, ok := m.slots[x]; ok {
		return
	}
	m.slots[x] = slot[T]{}
}

// Pair makes a and b mates. Both must be in the domain, distinct and free.
// On error the domain is left untouched.
func (m *Map[T]) Pair(a, b T) error {
	if a == b {
		return fmt.Errorf("Pair(%v,%v): %w", a, b, ErrFixedPoint)
	}
	sa, ok := m.slots[a]
	if !ok {
		return fmt.Errorf("Pair(%v,%v): %v: %w", a, b, a, ErrNotFound)
	}
	sb, ok := m.slots[b]
	if !ok {
		return fmt.Errorf("Pair(%v,%v): %v: %w", a, b, b, ErrNotFound)
	}
	if sa.paired {
		return fmt.Errorf("Pair(%v,%v): %v: %w", a, b, a, ErrAlreadyPaired)
	}
	if sb.paired {
		return fmt.Errorf("Pair(%v,%v): %v: %w", a, b, b, ErrAlreadyPaired)
	}

	m.slots[a] = slot[T]{mate: b, paired: true}
	m.slots[b] = slot[T]{mate: a, paired: true}
	m.paired += 2

	return nil
}

// Lookup returns the mate of x.
func (m *Map[T]) Lookup(x T) (T, bool) {
	s, ok := m.slots[x]
	if !ok || !s.paired {
		var zero T
		return zero, false
	}
	return s.mate, true
}

// Unpair frees x together with its mate.
func (m *Map[T]) Unpair(x T) {
	s, ok := m.slots[x]
	if !ok || !s.paired {
		return
	}
	m.slots[x] = slot[T]{}
	m.slots[s.mate] = slot[T]{}
	m.paired -= 2
}

// Remove deletes x from the domain, freeing its mate first.
func (m *Map[T]) Remove(x T) {
	m.Unpair(x)
	delete(m.slots, x)
}

// Contains reports domain membership.
func (m *Map[T]) Contains(x T) bool {
	_, ok := m.slots[x]
	return ok
}

// Domain returns the domain in unspecified order.
func (m *Map[T]) Domain() []T {
	out := make([]T, 0, len(m.slots))
	for x := range m.slots {
		out = append(out, x)
	}
	return out
}

// Len returns the domain size.
func (m *Map[T]) Len() int { return len(m.slots) }

// PairedLen returns the number of paired elements (always even).
func (m *Map[T]) PairedLen() int { return m.paired }

// compile-time check
var _ Involution[int] = (*Map[int])(nil)
