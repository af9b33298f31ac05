package generator

import (
	"github.com/katalvlaran/mazegen/grid"
	"github.com/katalvlaran/mazegen/rng"
)

type eller struct{}

func (eller) Algorithm() Algorithm { return Eller }

// Generate works one row at a time. Adjacent cells of different sets are
// merged at random; then every set drops at least one random passage into the
// next row. The last row merges all remaining distinct neighbors.
func (eller) Generate(size grid.Size, seed int64) (*grid.Grid, error) {
	return run(size, seed, carveEller)
}

func carveEller(l *lattice, s *rng.Stream) {
	sets := newDisjointSet(l.cells())
	order := make([]int, 0, l.w)
	members := make(map[int][]int, l.w)

	for y := 0; y < l.h; y++ {
		last := y == l.h-1
		for x := 0; x+1 < l.w; x++ {
			a, b := l.index(x, y), l.index(x+1, y)
			if sets.find(a) == sets.find(b) {
				continue
			}
			if last || s.Bool() {
				sets.union(a, b)
				l.carve(a, b)
			}
		}
		if last {
			break
		}

		// Group the row by set, in order of first appearance.
		order = order[:0]
		clear(members)
		for x := 0; x < l.w; x++ {
			root := sets.find(l.index(x, y))
			if _, ok := members[root]; !ok {
				order = append(order, root)
			}
			members[root] = append(members[root], x)
		}
		for _, root := range order {
			xs := members[root]
			s.ShuffleInts(xs)
			for k, x := range xs {
				if k == 0 || s.Bool() {
					a := l.index(x, y)
					sets.union(a, a+l.w)
					l.carve(a, a+l.w)
				}
			}
		}
	}
}
