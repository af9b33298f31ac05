package layout

import (
	"github.com/katalvlaran/mazegen/grid"
	"github.com/katalvlaran/mazegen/rng"
)

// EdgeDoors picks two distinct floor cells on the outer edge of g.
// ok is false when g has fewer than two edge floor cells; callers then
// usually fall back to Corners.
func EdgeDoors(g *grid.Grid, s *rng.Stream) (entrance, exit grid.Coordinates, ok bool) {
	if g == nil {
		return entrance, exit, false
	}
	edge := g.EdgeFloorCells()
	n := len(edge)
	if n < 2 {
		return entrance, exit, false
	}
	i := s.Intn(n)
	// Draw from the n-1 remaining cells and skip over i.
	j := s.Intn(n - 1)
	if j >= i {
		j++
	}
	return edge[i], edge[j], true
}

// Facing is the direction a door looks into the maze.
type Facing uint8

const (
	None Facing = iota
	North
	South
	East
	West
)

func (f Facing) String() string {
	switch f {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "none"
}

// Yaw is the heading in degrees for a renderer whose 0° points east and
// whose +90° points towards increasing Y.
func (f Facing) Yaw() float64 {
	switch f {
	case South:
		return 90
	case North:
		return -90
	case West:
		return 180
	}
	return 0
}

// FacingInto reports which way a door at c faces to look into a maze of size.
// The north and south edges take precedence over west and east, so corners
// face vertically. Interior cells face None.
func FacingInto(c grid.Coordinates, size grid.Size) Facing {
	switch {
	case c.Y == 0:
		return South
	case c.Y == size.Height-1:
		return North
	case c.X == 0:
		return East
	case c.X == size.Width-1:
		return West
	}
	return None
}
