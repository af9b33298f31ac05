package pathfind

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/list"

	"github.com/katalvlaran/mazegen/grid"
)

// Bridge is a cheapest route between two floor regions: walking it crosses
// the fewest wall cells.
type Bridge struct {
	// Cells runs from a floor cell of the source region to a floor cell of
	// the target region, both included.
	Cells []grid.Coordinates
	// Walls lists the cells of Cells that are walls; opening them joins the regions.
	Walls []grid.Coordinates
}

// Cost is the number of walls to open.
func (b *Bridge) Cost() int { return len(b.Walls) }

// BridgeComponents finds the cheapest Bridge from component src to component
// dst, both indices into (*Graph).Components of g.
//
// Behavior:
//  1. 0-1 BFS seeded from every cell of src: stepping onto floor costs 0,
//     onto a wall 1.
//  2. Stop at the first dst cell taken from the deque.
//  3. Walk predecessors back into Cells.
//
// Complexity: O(W×H) time and memory.
func BridgeComponents(g *grid.Grid, src, dst int) (*Bridge, error) {
	gr, err := BuildGraph(g)
	if err != nil {
		return nil, err
	}
	comps := gr.Components()
	if src < 0 || src >= len(comps) || dst < 0 || dst >= len(comps) {
		return nil, fmt.Errorf("%w: %d, %d of %d", ErrComponentIndex, src, dst, len(comps))
	}
	target := make([]bool, gr.Order())
	for _, v := range comps[dst] {
		target[v] = true
	}
	return bridge(g, comps[src], target), nil
}

// ConnectAll opens walls until the floor cells of g form one region, joining
// the first region to its cheapest neighbor region each round. It returns a
// new grid and the opened cells; g is not modified. A grid with at most one
// region is returned as a copy with no opened cells.
//
// Complexity: O(k×W×H) for k regions.
func ConnectAll(g *grid.Grid) (*grid.Grid, []grid.Coordinates, error) {
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	out := g.Clone()
	var opened []grid.Coordinates
	for {
		gr, err := BuildGraph(out)
		if err != nil {
			return nil, nil, err
		}
		comps := gr.Components()
		if len(comps) < 2 {
			return out, opened, nil
		}
		target := make([]bool, gr.Order())
		for _, comp := range comps[1:] {
			for _, v := range comp {
				target[v] = true
			}
		}
		b := bridge(out, comps[0], target)
		for _, c := range b.Walls {
			out.Set(c, grid.Floor)
		}
		opened = append(opened, b.Walls...)
	}
}

// bridge runs the 0-1 BFS. Every cell is passable, so some target is always
// reached when one exists.
func bridge(g *grid.Grid, sources []int, target []bool) *Bridge {
	w, h := g.Width(), g.Height()
	n := w * h
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// Cost-0 steps go to the front of the deque, cost-1 steps to the back.
	dq := list.New[int]()
	for _, v := range sources {
		dist[v] = 0
		dq.PushBack(v)
	}
	end := -1
	for dq.Front != nil {
		node := dq.Front
		dq.Remove(node)
		u := node.Value
		if target[u] {
			end = u
			break
		}
		ux, uy := u%w, u/w
		// West, East, North, South.
		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			vx, vy := ux+d[0], uy+d[1]
			if vx < 0 || vx >= w || vy < 0 || vy >= h {
				continue
			}
			v := vy*w + vx
			c := grid.Coordinates{X: vx, Y: vy}
			step := 0
			if !g.IsFloor(c) {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	b := &Bridge{}
	for v := end; v != -1; v = prev[v] {
		c := grid.Coordinates{X: v % w, Y: v / w}
		b.Cells = append(b.Cells, c)
		if !g.IsFloor(c) {
			b.Walls = append(b.Walls, c)
		}
	}
	slices.Reverse(b.Cells)
	slices.Reverse(b.Walls)
	return b
}
