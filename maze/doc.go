// Package maze assembles the core packages into one build step, the way a game
// host drives them: generate a grid, check it, find the path between two
// cells, place doors and an optional endpoint, and report what happened.
//
// What:
//
//   - Config carries every knob of a build. DefaultConfig matches a freshly
//     placed maze: Backtracker, 5×5, seed 0, no path, no doors.
//   - Builder.Build runs one build; Builder.Randomize draws algorithm, size
//     and seed first, choosing edge doors when ForceEdgeDoors is set.
//   - Result holds the grid, its Analyze report, the path (if any) and the
//     door and endpoint cells, tagged with a build ID.
//
// Recovery:
//
//	An unreachable path is not an error. Build logs a warning and returns a
//	Result with a nil Path and PathLength 0. A grid that is not a perfect maze
//	is logged as a warning too. Invalid sizes and unknown algorithms fail the
//	build.
//
// Logging and metrics:
//
//	Builder logs through a logrus.FieldLogger, discarding output unless
//	WithLogger is given. Every entry carries the build ID. WithMetrics records
//	Prometheus counters and histograms.
package maze
