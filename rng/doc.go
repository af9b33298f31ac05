// Package rng provides the deterministic random stream shared by every maze
// generation algorithm.
//
// What
//
//   - Stream wraps a *math/rand.Rand seeded exactly once from a caller seed.
//   - Int, Intn, Bool, Int63 draw values; Shuffle and ShuffleInts permute in place.
//   - Derive creates an independent substream (SplitMix64 mixing) for host-side
//     randomization that must not disturb the generation sequence.
//
// Determinism
//
//	Same seed ⇒ identical sequence on every platform. The seed is used verbatim;
//	0 is an ordinary seed. Shuffles are Fisher-Yates driven by Intn only, so the
//	sequence never depends on helpers whose algorithm may change between Go releases.
//
// Concurrency
//
//	A Stream is NOT goroutine-safe. Each generate call constructs its own Stream.
package rng
