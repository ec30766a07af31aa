// Package attribute provides the optional-value keyed store that backs
// cell attributes in package core.
//
// A key is either associated with exactly one value or absent; Get reports
// absence through its boolean result, never through a sentinel value.
// Store is not safe for concurrent mutation; its owner serializes access.
package attribute

// Store maps keys of type K to optional values of type V.
type Store[K comparable, V any] struct {
	values map[K]V
}

// NewStore returns an empty Store.
func NewStore[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{values: make(map[K]V)}
}

// Get returns the value associated with key, if any.
func (s *Store[K, V]) Get(key K) (V, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key currently holds a value.
func (s *Store[K, V]) Has(key K) bool {
	_, ok := s.values[key]
	return ok
}

// Set associates value with key, replacing any previous value.
func (s *Store[K, V]) Set(key K, value V) {
	s.values[key] = value
}

// Clear removes the association for key and reports whether one existed.
func (s *Store[K, V]) Clear(key K) bool {
	if _, ok := s.values[key]; !ok {
		return false
	}
	delete(s.values, key)
	return true
}

// DeleteFunc clears every key for which match returns true and returns how
// many associations were removed.
func (s *Store[K, V]) DeleteFunc(match func(K) bool) int {
	n := 0
	for k := range s.values {
		if match(k) {
			delete(s.values, k)
			n++
		}
	}
	return n
}

// Range calls fn for every association until fn returns false.
// Iteration order is unspecified.
func (s *Store[K, V]) Range(fn func(K, V) bool) {
	for k, v := range s.values {
		if !fn(k, v) {
			return
		}
	}
}

// Len returns the number of associations.
func (s *Store[K, V]) Len() int { return len(s.values) }
