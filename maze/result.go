package maze

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/mazegen/grid"
	"github.com/katalvlaran/mazegen/layout"
	"github.com/katalvlaran/mazegen/pathfind"
)

// Door is an entrance or exit cell and the way it faces into the maze.
type Door struct {
	Cell   grid.Coordinates
	Facing layout.Facing
}

// Result is the outcome of a build.
type Result struct {
	// ID correlates log entries of one build.
	ID uuid.UUID
	// Config is the configuration actually built, after clamping.
	Config Config
	Grid   *grid.Grid
	Report pathfind.Report
	// Opened lists the walls turned into floor by ConnectRegions.
	Opened []grid.Coordinates

	// Path is nil when no path was requested or end is unreachable.
	Path       *pathfind.Path
	PathLength int

	// Entrance and Exit are nil unless CreateDoors is set.
	Entrance *Door
	Exit     *Door
	// Endpoint is nil unless HasEndpoint is set.
	Endpoint *grid.Coordinates
}

// Render formats the grid with the path overlay, if any.
func (r *Result) Render(glyphs grid.Glyphs) string {
	var overlay *grid.Grid
	if r.Path != nil {
		overlay = r.Path.Overlay
	}
	return r.Grid.Format(glyphs, overlay)
}
