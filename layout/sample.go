package layout

import (
	"github.com/katalvlaran/mazegen/grid"
	"github.com/katalvlaran/mazegen/rng"
)

// RandomFloorCells returns count distinct floor cells of g in random order.
// When count covers every floor cell, all of them are returned in row-major
// order without drawing from s. A nil grid or count ≤ 0 yields nil.
func RandomFloorCells(g *grid.Grid, count int, s *rng.Stream) []grid.Coordinates {
	if g == nil {
		return nil
	}
	return sample(g.FloorCells(), count, s)
}

// RandomFloorCellsExcluding is RandomFloorCells restricted to floor cells
// farther than radius (Euclidean, in cells) from every cell in exclude.
// A negative radius is treated as 0, which excludes just the listed cells.
func RandomFloorCellsExcluding(g *grid.Grid, count int, exclude []grid.Coordinates, radius float64, s *rng.Stream) []grid.Coordinates {
	if g == nil {
		return nil
	}
	if radius < 0 {
		radius = 0
	}
	r2 := radius * radius
	floors := g.FloorCells()
	kept := floors[:0]
	for _, c := range floors {
		if !near(c, exclude, r2) {
			kept = append(kept, c)
		}
	}
	return sample(kept, count, s)
}

// RandomSpawn returns one random floor cell of g, or false if there is none.
func RandomSpawn(g *grid.Grid, s *rng.Stream) (grid.Coordinates, bool) {
	if g == nil {
		return grid.Coordinates{}, false
	}
	floors := g.FloorCells()
	if len(floors) == 0 {
		return grid.Coordinates{}, false
	}
	return floors[s.Intn(len(floors))], true
}

func near(c grid.Coordinates, exclude []grid.Coordinates, r2 float64) bool {
	for _, e := range exclude {
		dx, dy := float64(c.X-e.X), float64(c.Y-e.Y)
		if dx*dx+dy*dy <= r2 {
			return true
		}
	}
	return false
}

// sample shuffles cells in place and keeps the first count.
func sample(cells []grid.Coordinates, count int, s *rng.Stream) []grid.Coordinates {
	if count <= 0 || len(cells) == 0 {
		return nil
	}
	if count >= len(cells) {
		return cells
	}
	s.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
	return cells[:count:count]
}
