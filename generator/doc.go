// Package generator turns a size and a seed into a perfect maze Grid using one
// of seven interchangeable algorithms.
//
// What
//
//   - Algorithm enumerates Backtracker, Division, HuntAndKill, Sidewinder,
//     Kruskal, Eller and Prim.
//   - Generator is the single capability they share:
//     Generate(size, seed) (*grid.Grid, error).
//   - New dispatches on the Algorithm with a plain switch; generators carry no
//     state, so values may be reused and shared freely.
//
// Lattice
//
//	Every algorithm carves passages on a logical lattice of (W+1)/2 × (H+1)/2
//	cells and is then projected onto the physical floor/wall grid: logical
//	cell (i, j) becomes floor at (2i, 2j), a carved passage floors the cell
//	between two logical cells, and odd/odd pillars stay walls. With an even
//	dimension the trailing row or column stays wall, except on 1-wide or
//	1-tall grids where it is floored so the result is one wall-free corridor.
//	Odd sizes therefore put floor on all four corners.
//
// Determinism
//
//	Each Generate call builds its own rng.Stream from seed and visits
//	lattice neighbors in a fixed North, East, South, West order, so
//	(algorithm, size, seed) always yields a bit-identical grid.
//
// Complexity
//
//   - Backtracker, Sidewinder, Prim, Division: O(W×H).
//   - Kruskal, Eller: O(W×H·α(W×H)).
//   - HuntAndKill: O((W×H)²) worst case for the hunting scans.
//
// Errors
//
//   - grid.ErrInvalidSize (wrapped) when width or height ≤ 0.
//   - ErrUnknownAlgorithm for an Algorithm outside the enumeration.
package generator
