package pathfind

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mazegen/grid"
)

// Sentinel errors for graph building and search.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("pathfind: grid is nil")

	// ErrOutOfBounds is returned when start or end lies outside the grid.
	ErrOutOfBounds = errors.New("pathfind: coordinate out of bounds")

	// ErrNotReachable is returned when end cannot be reached from start.
	ErrNotReachable = errors.New("pathfind: path is not reachable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")

	// ErrComponentIndex is returned when a component index is out of range.
	ErrComponentIndex = errors.New("pathfind: component index out of range")
)

// Overlay cell values. They share the byte values of grid.Floor and grid.Wall,
// so an overlay is itself a grid.Grid.
const (
	OnPath  = grid.Floor
	OffPath = grid.Wall
)

// Option configures FindPath via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for FindPath.
type Options struct {
	// Ctx allows cancellation; it is checked once per dequeued cell.
	Ctx context.Context

	// OnVisit is called when a cell is dequeued, with its BFS depth.
	// Returning an error aborts the search.
	OnVisit func(c grid.Coordinates, depth int) error

	// MaxDepth, if > 0, stops expanding beyond this many steps from start.
	MaxDepth int

	err error
}

// DefaultOptions returns background context, a no-op OnVisit and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(grid.Coordinates, int) error { return nil },
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit hook. A nil fn is ignored.
func WithOnVisit(fn func(c grid.Coordinates, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search depth.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Path is a found shortest path.
type Path struct {
	// Overlay has the input grid's shape with OnPath on every path cell.
	Overlay *grid.Grid
	// Cells lists the path from start to end inclusive.
	Cells []grid.Coordinates
	// Length is the number of cells on the path, both endpoints included.
	Length int
}
