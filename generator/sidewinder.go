package generator

import (
	"github.com/katalvlaran/mazegen/grid"
	"github.com/katalvlaran/mazegen/rng"
)

type sidewinder struct{}

func (sidewinder) Algorithm() Algorithm { return Sidewinder }

// Generate opens the first row east to west, then walks every later row
// building runs: at each cell a coin flip either extends the run east or
// closes it by carving one random run cell north. The last cell of a row
// always closes its run.
func (sidewinder) Generate(size grid.Size, seed int64) (*grid.Grid, error) {
	return run(size, seed, carveSidewinder)
}

func carveSidewinder(l *lattice, s *rng.Stream) {
	for x := 0; x+1 < l.w; x++ {
		l.carve(l.index(x, 0), l.index(x+1, 0))
	}
	for y := 1; y < l.h; y++ {
		runStart := 0
		for x := 0; x < l.w; x++ {
			if x == l.w-1 || s.Bool() {
				cx := runStart + s.Intn(x-runStart+1)
				l.carve(l.index(cx, y), l.index(cx, y-1))
				runStart = x + 1
				continue
			}
			l.carve(l.index(x, y), l.index(x+1, y))
		}
	}
}
