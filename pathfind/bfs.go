package pathfind

import (
	"context"
	"fmt"

	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/mazegen/grid"
)

// walker encapsulates mutable BFS state for one FindPath call.
type walker struct {
	graph    *Graph
	opts     Options
	ctx      context.Context
	queue    *queue.Queue[int]
	visited  []bool
	parent   []int
	distance []int
}

// FindPath returns the shortest 4-connected floor path from start to end.
// Start and end must already be valid coordinates; FindPath never clamps them.
//
// Errors:
//   - ErrNilGrid if g is nil.
//   - ErrOptionViolation if an Option is invalid.
//   - ErrOutOfBounds if start or end lies outside g.
//   - ErrNotReachable if start or end is a wall, or end is not reached
//     (also when MaxDepth cuts the search short).
//   - ctx.Err() on cancellation.
//   - the OnVisit error, wrapped, when the hook aborts the search.
func FindPath(g *grid.Grid, start, end grid.Coordinates, opts ...Option) (*Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v outside %v", ErrOutOfBounds, start, g.Size())
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: end %v outside %v", ErrOutOfBounds, end, g.Size())
	}
	if !g.IsFloor(start) {
		return nil, fmt.Errorf("%w: start %v is a wall cell", ErrNotReachable, start)
	}
	if !g.IsFloor(end) {
		return nil, fmt.Errorf("%w: end %v is a wall cell", ErrNotReachable, end)
	}

	gr, err := BuildGraph(g)
	if err != nil {
		return nil, err
	}
	n := gr.Order()
	w := &walker{
		graph:    gr,
		opts:     o,
		ctx:      o.Ctx,
		queue:    queue.New[int](),
		visited:  make([]bool, n),
		parent:   make([]int, n),
		distance: make([]int, n),
	}
	target := gr.Vertex(end)
	if err = w.search(gr.Vertex(start), target); err != nil {
		return nil, err
	}
	if !w.visited[target] {
		return nil, fmt.Errorf("%w: %v from %v", ErrNotReachable, end, start)
	}
	return w.path(g, target), nil
}

// search runs BFS from src until target is discovered or the queue drains.
func (w *walker) search(src, target int) error {
	for i := range w.parent {
		w.parent[i] = -1
	}
	w.visited[src] = true
	w.queue.Enqueue(src)
	for !w.queue.Empty() {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.queue.Dequeue()
		if err := w.opts.OnVisit(w.graph.Coordinate(v), w.distance[v]); err != nil {
			return fmt.Errorf("pathfind: OnVisit error at %v: %w", w.graph.Coordinate(v), err)
		}
		if v == target {
			return nil
		}
		next := w.distance[v] + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nb := range w.graph.Neighbors(v) {
			if w.visited[nb] {
				continue
			}
			w.visited[nb] = true
			w.parent[nb] = v
			w.distance[nb] = next
			w.queue.Enqueue(nb)
		}
	}
	return nil
}

// path walks parent links back from target and builds the overlay.
func (w *walker) path(g *grid.Grid, target int) *Path {
	length := w.distance[target] + 1
	cells := make([]grid.Coordinates, length)
	overlay, _ := grid.NewFilled(g.Size(), OffPath)
	i := length - 1
	for v := target; v != -1; v = w.parent[v] {
		c := w.graph.Coordinate(v)
		cells[i] = c
		overlay.Set(c, OnPath)
		i--
	}
	return &Path{Overlay: overlay, Cells: cells, Length: length}
}
