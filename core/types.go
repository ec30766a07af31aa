// File: types.go
// Role: Dart identity, the Map container, options, sentinel errors and New.
//
// All Map methods take a single sync.RWMutex internally: mutations hold the
// write lock, queries hold the read lock. Concurrent readers therefore run in
// parallel while writers are serialized.
//
// Errors:
//
//	ErrInvalidDimension        - dimension index outside [0, Dimension()] or negative n.
//	ErrIllegalDimensionChange  - DecreaseDimension at 0 or while the top involution has pairs.
//	ErrDartNotFound            - the dart is not part of the map.
//	ErrNotIsolated             - RemoveIsolatedDart on a dart paired somewhere.
//	ErrNotSewable              - Sew on darts that are not i-sewable.
//	ErrDuplicateAttribute      - PutAttribute on a cell that already holds a value.
//	ErrCorrupted               - Validate found a broken invariant.

package core

import (
	"errors"
	"io"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/ngmap/attribute"
	"github.com/katalvlaran/ngmap/involution"
)

// Sentinel errors for map operations.
var (
	// ErrInvalidDimension indicates a dimension index outside [0, Dimension()].
	ErrInvalidDimension = errors.New("core: invalid dimension")

	// ErrIllegalDimensionChange indicates a dimension decrease that would drop pairings.
	ErrIllegalDimensionChange = errors.New("core: illegal dimension change")

	// ErrDartNotFound indicates an operation referenced a dart the map does not contain.
	ErrDartNotFound = errors.New("core: dart not found")

	// ErrNotIsolated indicates a dart that is still paired in some involution.
	ErrNotIsolated = errors.New("core: dart is not isolated")

	// ErrNotSewable indicates that two darts are not i-sewable.
	ErrNotSewable = errors.New("core: darts are not sewable")

	// ErrDuplicateAttribute indicates the target cell already holds an attribute.
	ErrDuplicateAttribute = errors.New("core: cell already holds an attribute")

	// ErrCorrupted indicates a broken structural invariant found by Validate.
	ErrCorrupted = errors.New("core: map invariant violated")
)

// Dart is the atomic element of a generalized map.
//
// A Dart carries nothing but its id, assigned by the Map that created it.
// Ids start at 1, so the zero Dart is never part of any map.
type Dart struct {
	id uint64
}

// ID returns the id the owning map assigned to d.
func (d Dart) ID() uint64 { return d.id }

// String renders d as "d<id>".
func (d Dart) String() string { return "d" + strconv.FormatUint(d.id, 10) }

// CellKey addresses an attribute: the dart it is recorded on and the
// dimension i of the i-cell it describes.
type CellKey struct {
	Dart Dart
	Dim  int
}

// Option configures a Map before creation.
type Option func(*mapConfig)

// mapConfig is the resolved construction-time configuration.
type mapConfig struct {
	logger *log.Logger
}

// WithLogger installs l as the structured logger of the Map.
// The engine emits Debug records for every mutation.
// Panics on nil to surface programmer error early.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("core: WithLogger(nil)")
	}
	return func(c *mapConfig) { c.logger = l }
}

// Map is an n-dimensional generalized map over darts, carrying optional
// attributes of type A on its cells.
//
// alphas[i] is the involution of dimension i; Dimension() == len(alphas)-1.
// Every dart of the map is in the domain of every involution.
// nextID is the last id handed out; ids are never reused.
type Map[A any] struct {
	mu sync.RWMutex // guards everything below

	alphas []involution.Involution[Dart]
	attrs  *attribute.Store[CellKey, A]
	nextID uint64
	logger *log.Logger
}

// New creates an n-dimensional map with n+1 empty involutions.
// Returns ErrInvalidDimension if n < 0.
// Complexity: O(n)
func New[A any](n int, opts ...Option) (*Map[A], error) {
	if n < 0 {
		return nil, errorf("New", "n=%d: %w", n, ErrInvalidDimension)
	}
	cfg := mapConfig{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Map[A]{
		alphas: make([]involution.Involution[Dart], 0, n+1),
		attrs:  attribute.NewStore[CellKey, A](),
		logger: cfg.logger,
	}
	for i := 0; i <= n; i++ {
		m.alphas = append(m.alphas, involution.New[Dart]())
	}

	return m, nil
}
