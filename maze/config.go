package maze

import (
	"errors"

	"github.com/katalvlaran/mazegen/generator"
	"github.com/katalvlaran/mazegen/grid"
)

// ErrNilStream is returned by Randomize when no random stream is supplied.
var ErrNilStream = errors.New("maze: nil random stream")

// Config describes one build.
type Config struct {
	Algorithm generator.Algorithm
	Seed      int64
	Size      grid.Size

	// GeneratePath enables the shortest path from PathStart to PathEnd.
	// Both are clamped into the grid before searching.
	GeneratePath bool
	PathStart    grid.Coordinates
	PathEnd      grid.Coordinates

	// CreateDoors places an entrance and an exit. With GeneratePath they sit
	// on the path endpoints; otherwise Entrance and Exit are used, clamped.
	CreateDoors bool
	Entrance    grid.Coordinates
	Exit        grid.Coordinates

	// ForceEdgeDoors makes Randomize pick path endpoints on edge floor cells
	// instead of the corners.
	ForceEdgeDoors bool

	// ConnectRegions opens the fewest walls needed to join disconnected floor
	// regions before the path search. Generated grids are always connected,
	// so this only matters for BuildGrid.
	ConnectRegions bool

	// HasEndpoint places a goal marker at Endpoint, clamped.
	HasEndpoint bool
	Endpoint    grid.Coordinates
}

// DefaultConfig returns the configuration of a new, untouched maze.
func DefaultConfig() Config {
	return Config{
		Algorithm:      generator.Backtracker,
		Seed:           0,
		Size:           grid.Size{Width: 5, Height: 5},
		ForceEdgeDoors: true,
	}
}
