// Package layout places things on a generated grid: random build parameters,
// entrance and exit doors, the direction a door faces, and random floor cells
// for spawning. Every function draws from a caller-supplied *rng.Stream, so a
// layout is as reproducible as the maze it decorates.
package layout
