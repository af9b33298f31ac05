package generator

import (
	"github.com/katalvlaran/mazegen/grid"
	"github.com/katalvlaran/mazegen/rng"
)

// lattice is the logical maze: w×h cells and the passages between them.
// east[i] opens cell i towards i+1, south[i] opens cell i towards i+w.
type lattice struct {
	w, h  int
	east  []bool
	south []bool
}

// carver mutates a fresh lattice using s as its only source of randomness.
type carver func(l *lattice, s *rng.Stream)

// run validates size, carves a new lattice from a stream seeded with seed and
// projects it onto a physical grid.
func run(size grid.Size, seed int64, carve carver) (*grid.Grid, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	l := newLattice(size)
	carve(l, rng.New(seed))
	return l.project(size), nil
}

func newLattice(size grid.Size) *lattice {
	w, h := (size.Width+1)/2, (size.Height+1)/2
	return &lattice{
		w:     w,
		h:     h,
		east:  make([]bool, w*h),
		south: make([]bool, w*h),
	}
}

func (l *lattice) cells() int { return l.w * l.h }

func (l *lattice) index(x, y int) int { return y*l.w + x }

// neighbors appends the in-bounds neighbors of i to buf[:0] in North, East,
// South, West order.
func (l *lattice) neighbors(i int, buf []int) []int {
	buf = buf[:0]
	x, y := i%l.w, i/l.w
	if y > 0 {
		buf = append(buf, i-l.w)
	}
	if x+1 < l.w {
		buf = append(buf, i+1)
	}
	if y+1 < l.h {
		buf = append(buf, i+l.w)
	}
	if x > 0 {
		buf = append(buf, i-1)
	}
	return buf
}

// neighborsWhere is neighbors filtered by mark[n] == want.
func (l *lattice) neighborsWhere(i int, mark []bool, want bool, buf []int) []int {
	all := l.neighbors(i, buf)
	out := all[:0]
	for _, n := range all {
		if mark[n] == want {
			out = append(out, n)
		}
	}
	return out
}

// setPassage opens or closes the passage between adjacent cells a and b.
func (l *lattice) setPassage(a, b int, open bool) {
	if a > b {
		a, b = b, a
	}
	if a/l.w == b/l.w {
		l.east[a] = open
	} else {
		l.south[a] = open
	}
}

// carve opens the passage between adjacent cells a and b.
func (l *lattice) carve(a, b int) { l.setPassage(a, b, true) }

// openAll connects every pair of adjacent cells.
func (l *lattice) openAll() {
	for i := 0; i < l.cells(); i++ {
		x, y := i%l.w, i/l.w
		l.east[i] = x+1 < l.w
		l.south[i] = y+1 < l.h
	}
}

// project converts the lattice into the physical floor/wall grid of size.
func (l *lattice) project(size grid.Size) *grid.Grid {
	g, _ := grid.New(size)
	for i := 0; i < l.cells(); i++ {
		x, y := 2*(i%l.w), 2*(i/l.w)
		g.Set(grid.Coordinates{X: x, Y: y}, grid.Floor)
		if l.east[i] {
			g.Set(grid.Coordinates{X: x + 1, Y: y}, grid.Floor)
		}
		if l.south[i] {
			g.Set(grid.Coordinates{X: x, Y: y + 1}, grid.Floor)
		}
	}
	// Degenerate corridors with an even length: floor the trailing cell too.
	if size.Width == 1 && size.Height%2 == 0 {
		g.Set(grid.Coordinates{X: 0, Y: size.Height - 1}, grid.Floor)
	}
	if size.Height == 1 && size.Width%2 == 0 {
		g.Set(grid.Coordinates{X: size.Width - 1, Y: 0}, grid.Floor)
	}
	return g
}
