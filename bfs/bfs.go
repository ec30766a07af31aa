// Package bfs provides a lazy breadth-first walk driven by a neighbor function,
// yielding every reachable element exactly once in visit order.
package bfs

import (
	"iter"
)

// queueItem pairs an element with its BFS depth.
type queueItem[T comparable] struct {
	id    T
	depth int
}

// Walker encapsulates mutable BFS state. Elements are produced one at a
// time by Next; neighbors of an element are requested only when that
// element is dequeued.
//
// A Walker is single-use: once exhausted it stays exhausted. Build a new
// one with New to walk again.
type Walker[T comparable] struct {
	neighbors func(T) []T
	opts      Options
	queue     []queueItem[T]
	visited   map[T]struct{}
	emitted   int
	last      int
}

// New prepares a walk from start, applying any number of functional Options.
// Returns ErrNilNeighbors for a nil neighbor function and ErrOptionViolation
// for bad options. Nothing is visited until Next is called.
func New[T comparable](start T, neighbors func(T) []T, opts ...Option) (*Walker[T], error) {
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &Walker[T]{
		neighbors: neighbors,
		opts:      o,
		queue:     make([]queueItem[T], 0, o.Capacity),
		visited:   make(map[T]struct{}, o.Capacity),
	}
	// Seed queue with start element
	w.enqueue(start, 0)

	return w, nil
}

// enqueue marks id visited at depth d and adds it to the queue.
func (w *Walker[T]) enqueue(id T, d int) {
	w.visited[id] = struct{}{}
	w.queue = append(w.queue, queueItem[T]{id: id, depth: d})
}

// Next returns the next element in breadth-first order.
// The boolean is false once the reachable set is exhausted.
func (w *Walker[T]) Next() (T, bool) {
	if len(w.queue) == 0 {
		var zero T
		return zero, false
	}
	item := w.dequeue()
	w.enqueueNeighbors(item)
	w.emitted++
	w.last = item.depth

	return item.id, true
}

// Depth returns the depth of the element most recently returned by Next.
func (w *Walker[T]) Depth() int { return w.last }

// Visited returns how many elements Next has returned so far.
func (w *Walker[T]) Visited() int { return w.emitted }

// Seen reports whether x has already been discovered (returned or queued).
func (w *Walker[T]) Seen(x T) bool {
	_, ok := w.visited[x]
	return ok
}

// dequeue pops the first item.
func (w *Walker[T]) dequeue() queueItem[T] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// enqueueNeighbors asks for the neighbors of item, applies MaxDepth,
// and enqueues each unseen neighbor.
func (w *Walker[T]) enqueueNeighbors(item queueItem[T]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.neighbors(item.id) {
		// first time seen?
		if _, ok := w.visited[nbr]; !ok {
			w.enqueue(nbr, nextDepth)
		}
	}
}

// All drains the walker as a range-over-func sequence.
// Stopping the range early leaves the remaining elements in the walker.
func (w *Walker[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			x, ok := w.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// BreadthFirst returns a sequence that starts a fresh walk every time it is
// ranged over, so the same sequence value can be consumed repeatedly.
func BreadthFirst[T comparable](start T, neighbors func(T) []T, opts ...Option) (iter.Seq[T], error) {
	// validate once up front so that ranging never fails
	if _, err := New(start, neighbors, opts...); err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		w, _ := New(start, neighbors, opts...)
		for x := range w.All() {
			if !yield(x) {
				return
			}
		}
	}, nil
}

// Collect runs a full walk from start and returns the visit order.
func Collect[T comparable](start T, neighbors func(T) []T, opts ...Option) ([]T, error) {
	w, err := New(start, neighbors, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, w.opts.Capacity)
	for x := range w.All() {
		out = append(out, x)
	}
	return out, nil
}
