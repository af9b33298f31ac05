package generator

import (
	"github.com/katalvlaran/mazegen/grid"
	"github.com/katalvlaran/mazegen/rng"
)

type huntAndKill struct{}

func (huntAndKill) Algorithm() Algorithm { return HuntAndKill }

// Generate performs random walks without a stack. When a walk dead-ends, the
// lattice is scanned row by row for the first unvisited cell bordering the
// visited region; it is joined to a random visited neighbor and the walk
// resumes from there.
func (huntAndKill) Generate(size grid.Size, seed int64) (*grid.Grid, error) {
	return run(size, seed, carveHuntAndKill)
}

func carveHuntAndKill(l *lattice, s *rng.Stream) {
	n := l.cells()
	visited := make([]bool, n)
	buf := make([]int, 0, 4)

	cur := s.Intn(n)
	visited[cur] = true
	for remaining := n - 1; remaining > 0; remaining-- {
		if next := l.neighborsWhere(cur, visited, false, buf); len(next) > 0 {
			nb := next[s.Intn(len(next))]
			l.carve(cur, nb)
			visited[nb] = true
			cur = nb
			continue
		}
		cur = hunt(l, s, visited, buf)
	}
}

// hunt joins the first unvisited cell that borders a visited one and returns it.
// The lattice is connected, so while unvisited cells remain one always exists.
func hunt(l *lattice, s *rng.Stream, visited []bool, buf []int) int {
	for i := 0; i < l.cells(); i++ {
		if visited[i] {
			continue
		}
		adj := l.neighborsWhere(i, visited, true, buf)
		if len(adj) == 0 {
			continue
		}
		l.carve(i, adj[s.Intn(len(adj))])
		visited[i] = true
		return i
	}
	return -1
}
