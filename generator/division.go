package generator

import (
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/mazegen/grid"
	"github.com/katalvlaran/mazegen/rng"
)

type division struct{}

func (division) Algorithm() Algorithm { return Division }

// Generate starts from a fully open lattice and splits regions with a wall
// that keeps a single passage, until every region is one cell wide or tall.
// Regions are split across their longer side; squares pick at random.
// The result has long straight walls.
func (division) Generate(size grid.Size, seed int64) (*grid.Grid, error) {
	return run(size, seed, carveDivision)
}

// region is a w×h block of lattice cells with its top-left corner at (x, y).
type region struct{ x, y, w, h int }

func carveDivision(l *lattice, s *rng.Stream) {
	l.openAll()
	pending := stack.New[region]()
	pending.Push(region{0, 0, l.w, l.h})
	for pending.Size() > 0 {
		r := pending.Pop()
		if r.w < 2 || r.h < 2 {
			continue
		}
		if r.h > r.w || (r.h == r.w && s.Bool()) {
			// Horizontal wall below row wy with a gap at column gx.
			wy := r.y + s.Intn(r.h-1)
			gx := r.x + s.Intn(r.w)
			for x := r.x; x < r.x+r.w; x++ {
				if x != gx {
					l.south[l.index(x, wy)] = false
				}
			}
			pending.Push(region{r.x, wy + 1, r.w, r.y + r.h - wy - 1})
			pending.Push(region{r.x, r.y, r.w, wy - r.y + 1})
			continue
		}
		// Vertical wall right of column wx with a gap at row gy.
		wx := r.x + s.Intn(r.w-1)
		gy := r.y + s.Intn(r.h)
		for y := r.y; y < r.y+r.h; y++ {
			if y != gy {
				l.east[l.index(wx, y)] = false
			}
		}
		pending.Push(region{wx + 1, r.y, r.x + r.w - wx - 1, r.h})
		pending.Push(region{r.x, r.y, wx - r.x + 1, r.h})
	}
}
