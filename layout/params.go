package layout

import (
	"github.com/katalvlaran/mazegen/generator"
	"github.com/katalvlaran/mazegen/grid"
	"github.com/katalvlaran/mazegen/rng"
)

// Bounds of RandomParams sizes, before forcing them odd.
const (
	MinRandomSize = 3
	MaxRandomSize = 101
)

// Params is a random (algorithm, size, seed) triple.
type Params struct {
	Algorithm generator.Algorithm
	Size      grid.Size
	Seed      int64
}

// RandomParams draws odd width and height in [MinRandomSize, MaxRandomSize],
// a uniformly chosen algorithm and a seed in the int32 range.
func RandomParams(s *rng.Stream) Params {
	var p Params
	p.Size.Width = s.Int(MinRandomSize, MaxRandomSize) | 1
	p.Size.Height = s.Int(MinRandomSize, MaxRandomSize) | 1
	algs := generator.Algorithms()
	p.Algorithm = algs[s.Intn(len(algs))]
	p.Seed = int64(int32(uint32(s.Int63())))
	return p
}

// Corners returns the top-left and bottom-right cells of size.
func Corners(size grid.Size) (start, end grid.Coordinates) {
	return grid.Coordinates{X: 0, Y: 0}, grid.Coordinates{X: size.Width - 1, Y: size.Height - 1}
}
