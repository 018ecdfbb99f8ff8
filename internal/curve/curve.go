// Package curve maps positions on a one-dimensional space-filling curve to
// cells of a square 2^order x 2^order grid and back. Two curves are
// supported: the Hilbert curve and the Morton (Z-order) curve. For a fixed
// order each mapping is a bijection between [0, 4^order) and the grid.
package curve

import (
	"errors"
	"fmt"

	"github.com/spacefill/spacefill/internal/constants"
)

var (
	// ErrInvalidOrder is returned when an order is non-positive or so large
	// that the cell count would overflow int64.
	ErrInvalidOrder = errors.New("curve: invalid order")

	// ErrUnknownKind is returned by New for an unrecognized curve kind.
	ErrUnknownKind = errors.New("curve: unknown kind")

	// ErrIndexOutOfRange is returned when an index is outside [0, cells).
	ErrIndexOutOfRange = errors.New("curve: index out of range")

	// ErrPointOutOfRange is returned when a point is outside the grid.
	ErrPointOutOfRange = errors.New("curve: point out of range")
)

// Kind names a curve ordering.
type Kind string

const (
	KindHilbert Kind = "hilbert"
	KindMorton  Kind = "morton"
)

// Kinds lists the supported curve kinds.
func Kinds() []Kind {
	return []Kind{KindHilbert, KindMorton}
}

// Point is a grid cell. Points compare by value.
type Point struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

// Indexer converts between curve indices and grid cells. Implementations
// are pure: the same index always maps to the same point. An indexer is
// immutable once constructed; a different order needs a new indexer.
type Indexer interface {
	Kind() Kind
	Order() int
	Side() int64
	Cells() int64
	IndexToPoint(index int64) (Point, error)
	PointToIndex(p Point) (int64, error)
}

// New constructs an indexer of the given kind.
func New(kind Kind, order int) (Indexer, error) {
	switch kind {
	case KindHilbert:
		return NewHilbert(order)
	case KindMorton:
		return NewMorton(order)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// grid carries the dimensions shared by every indexer.
type grid struct {
	order int
	side  int64
	cells int64
}

func newGrid(order int) (grid, error) {
	if order < 1 || order > constants.MaxOrder {
		return grid{}, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidOrder, order, constants.MaxOrder)
	}
	side := int64(1) << order
	return grid{order: order, side: side, cells: side * side}, nil
}

func (g grid) Order() int  { return g.order }
func (g grid) Side() int64 { return g.side }
func (g grid) Cells() int64 {
	return g.cells
}

func (g grid) checkIndex(index int64) error {
	if index < 0 || index >= g.cells {
		return fmt.Errorf("%w: %d (want 0..%d)", ErrIndexOutOfRange, index, g.cells-1)
	}
	return nil
}

func (g grid) checkPoint(p Point) error {
	if p.X < 0 || p.X >= g.side || p.Y < 0 || p.Y >= g.side {
		return fmt.Errorf("%w: (%d,%d) (grid side %d)", ErrPointOutOfRange, p.X, p.Y, g.side)
	}
	return nil
}

// Dims reports the grid dimensions for an order without picking a curve
// kind.
func Dims(order int) (side, cells int64, err error) {
	g, err := newGrid(order)
	if err != nil {
		return 0, 0, err
	}
	return g.side, g.cells, nil
}

// FitOrder returns the smallest order whose grid holds at least cells
// cells, clamped to [1, MaxOrder].
func FitOrder(cells int64) int {
	order := 1
	for side := int64(2); side*side < cells && order < constants.MaxOrder; side <<= 1 {
		order++
	}
	return order
}
