package generator

import (
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/mazegen/grid"
	"github.com/katalvlaran/mazegen/rng"
)

type backtracker struct{}

func (backtracker) Algorithm() Algorithm { return Backtracker }

// Generate carves a depth-first spanning tree: from a random start it steps to
// a random unvisited neighbor, and backtracks along the stack when stuck.
// The result has long corridors and few branches.
func (backtracker) Generate(size grid.Size, seed int64) (*grid.Grid, error) {
	return run(size, seed, carveBacktracker)
}

func carveBacktracker(l *lattice, s *rng.Stream) {
	visited := make([]bool, l.cells())
	buf := make([]int, 0, 4)
	path := stack.New[int]()

	start := s.Intn(l.cells())
	visited[start] = true
	path.Push(start)
	for path.Size() > 0 {
		cur := path.Peek()
		next := l.neighborsWhere(cur, visited, false, buf)
		if len(next) == 0 {
			path.Pop()
			continue
		}
		n := next[s.Intn(len(next))]
		l.carve(cur, n)
		visited[n] = true
		path.Push(n)
	}
}
