package pathfind

import "github.com/katalvlaran/mazegen/grid"

// Graph is the adjacency structure of a grid's floor cells.
// Vertex ids are row-major cell indices.
type Graph struct {
	width  int
	height int
	// adj is nil for wall vertices and non-nil (possibly empty) for floor vertices.
	adj [][]int
}

// BuildGraph links every floor cell to its in-bounds floor neighbors in
// West, East, North, South order. The input grid is not modified.
// Complexity: O(W×H) time and memory.
func BuildGraph(g *grid.Grid) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	w, h := g.Width(), g.Height()
	gr := &Graph{width: w, height: h, adj: make([][]int, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !g.IsFloor(grid.Coordinates{X: x, Y: y}) {
				continue
			}
			v := y*w + x
			nbrs := make([]int, 0, 4)
			if g.IsFloor(grid.Coordinates{X: x - 1, Y: y}) { // West
				nbrs = append(nbrs, v-1)
			}
			if g.IsFloor(grid.Coordinates{X: x + 1, Y: y}) { // East
				nbrs = append(nbrs, v+1)
			}
			if g.IsFloor(grid.Coordinates{X: x, Y: y - 1}) { // North
				nbrs = append(nbrs, v-w)
			}
			if g.IsFloor(grid.Coordinates{X: x, Y: y + 1}) { // South
				nbrs = append(nbrs, v+w)
			}
			gr.adj[v] = nbrs
		}
	}
	return gr, nil
}

// Order returns the number of vertex slots (W×H), walls included.
func (gr *Graph) Order() int { return len(gr.adj) }

// Neighbors returns the adjacency list of v. The slice must not be modified.
func (gr *Graph) Neighbors(v int) []int { return gr.adj[v] }

// Vertex maps coordinates to a vertex id.
func (gr *Graph) Vertex(c grid.Coordinates) int { return c.Y*gr.width + c.X }

// Coordinate maps a vertex id back to coordinates.
func (gr *Graph) Coordinate(v int) grid.Coordinates {
	return grid.Coordinates{X: v % gr.width, Y: v / gr.width}
}

// EdgeCount returns the number of undirected floor-to-floor edges.
func (gr *Graph) EdgeCount() int {
	n := 0
	for _, nbrs := range gr.adj {
		n += len(nbrs)
	}
	return n / 2
}
