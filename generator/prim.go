package generator

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazegen/grid"
	"github.com/katalvlaran/mazegen/rng"
)

type prim struct{}

func (prim) Algorithm() Algorithm { return Prim }

// Generate grows the maze from one random cell. The frontier holds unvisited
// cells bordering the carved region; a random frontier cell is joined to a
// random carved neighbor and its own unvisited neighbors join the frontier.
func (prim) Generate(size grid.Size, seed int64) (*grid.Grid, error) {
	return run(size, seed, carvePrim)
}

func carvePrim(l *lattice, s *rng.Stream) {
	carved := make([]bool, l.cells())
	buf := make([]int, 0, 4)
	// frontier keeps insertion order for reproducible picks; queued guards duplicates.
	frontier := make([]int, 0, l.cells())
	queued := mapset.New[int]()

	expand := func(c int) {
		carved[c] = true
		for _, n := range l.neighborsWhere(c, carved, false, buf) {
			if !queued.Has(n) {
				queued.Put(n)
				frontier = append(frontier, n)
			}
		}
	}

	expand(s.Intn(l.cells()))
	for len(frontier) > 0 {
		k := s.Intn(len(frontier))
		c := frontier[k]
		frontier[k] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		queued.Remove(c)

		in := l.neighborsWhere(c, carved, true, buf)
		l.carve(c, in[s.Intn(len(in))])
		expand(c)
	}
}
