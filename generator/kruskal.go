package generator

import (
	"github.com/katalvlaran/mazegen/grid"
	"github.com/katalvlaran/mazegen/rng"
)

type kruskal struct{}

func (kruskal) Algorithm() Algorithm { return Kruskal }

// Generate treats every lattice cell as its own set, shuffles all walls between
// neighbors and removes each wall whose sides are still in different sets,
// until a single set remains.
func (kruskal) Generate(size grid.Size, seed int64) (*grid.Grid, error) {
	return run(size, seed, carveKruskal)
}

// edge is a wall between lattice cells a < b.
type edge struct{ a, b int }

func carveKruskal(l *lattice, s *rng.Stream) {
	n := l.cells()
	edges := make([]edge, 0, 2*n)
	for i := 0; i < n; i++ {
		x, y := i%l.w, i/l.w
		if x+1 < l.w {
			edges = append(edges, edge{i, i + 1})
		}
		if y+1 < l.h {
			edges = append(edges, edge{i, i + l.w})
		}
	}
	s.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	sets := newDisjointSet(n)
	joined := 0
	for _, e := range edges {
		if joined == n-1 {
			break
		}
		if sets.union(e.a, e.b) {
			l.carve(e.a, e.b)
			joined++
		}
	}
}
