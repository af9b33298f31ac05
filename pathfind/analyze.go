package pathfind

import "github.com/katalvlaran/mazegen/grid"

// Report summarizes the floor-cell graph of a grid.
type Report struct {
	FloorCells int
	Edges      int
	Components int
	// Perfect is true when the floor cells form a single tree:
	// one component and Edges == FloorCells-1.
	Perfect bool
}

// Analyze counts floor cells, edges and connected components of g.
// A nil grid yields the zero Report.
// Complexity: O(W×H).
func Analyze(g *grid.Grid) Report {
	gr, err := BuildGraph(g)
	if err != nil {
		return Report{}
	}
	comps := gr.Components()
	r := Report{
		FloorCells: g.FloorCount(),
		Edges:      gr.EdgeCount(),
		Components: len(comps),
	}
	r.Perfect = r.Components == 1 && r.Edges == r.FloorCells-1
	return r
}

// Components finds all connected regions of floor cells. Each component is a
// slice of vertex ids in BFS order; components appear in row-major order of
// their first cell.
func (gr *Graph) Components() [][]int {
	seen := make([]bool, gr.Order())
	var comps [][]int
	for v0 := range gr.adj {
		if seen[v0] || gr.adj[v0] == nil {
			continue
		}
		seen[v0] = true
		comp := []int{v0}
		for qi := 0; qi < len(comp); qi++ {
			for _, nb := range gr.adj[comp[qi]] {
				if !seen[nb] {
					seen[nb] = true
					comp = append(comp, nb)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
