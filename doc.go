// Package mazegen is a deterministic grid-maze toolkit: seven interchangeable
// generation algorithms turn a size and a seed into a floor/wall grid, and a
// breadth-first pathfinder finds the shortest walkable route across it.
//
// Packages:
//
//	rng/         seeded random stream shared by every algorithm
//	grid/        Grid, Size, Coordinates and text rendering
//	generator/   Backtracker, Division, HuntAndKill, Sidewinder, Kruskal, Eller, Prim
//	pathfind/    floor graph, BFS shortest path, maze analysis, region bridging
//	layout/      random parameters, edge doors, facing, floor sampling
//	maze/        one-call build with logging and Prometheus metrics
//	cmd/mazegen  command line front end
//
// Quick start:
//
//	g, _ := generator.Generate(generator.Kruskal, grid.Size{Width: 21, Height: 11}, 7)
//	p, _ := pathfind.FindPath(g, grid.Coordinates{}, grid.Coordinates{X: 20, Y: 10})
//	fmt.Print(g.Format(grid.DefaultGlyphs(), p.Overlay))
//
// The same (algorithm, size, seed) always yields the same grid.
package mazegen
