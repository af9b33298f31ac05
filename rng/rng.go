package rng

import "math/rand"

// Stream is a seeded pseudo-random sequence. The zero value is not usable; call New.
type Stream struct {
	r    *rand.Rand
	seed int64
}

// New returns a fresh deterministic Stream for seed.
//
// Complexity: O(1).
func New(seed int64) *Stream {
	return &Stream{
		r:    rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed reports the seed this Stream was constructed with.
func (s *Stream) Seed() int64 {
	return s.seed
}

// Intn returns a value in [0, n). For n <= 0 it returns 0 without consuming state.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.Intn(n)
}

// Int returns a value in the inclusive range [min, max].
// When max <= min it returns min without consuming state.
func (s *Stream) Int(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.r.Intn(max-min+1)
}

// Bool returns a fair coin flip.
func (s *Stream) Bool() bool {
	return s.r.Intn(2) == 1
}

// Int63 returns a non-negative 63-bit value.
func (s *Stream) Int63() int64 {
	return s.r.Int63()
}

// Shuffle permutes n elements in place through swap (Fisher-Yates).
//
// Complexity: O(n) time, O(1) extra space.
func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	var i, j int
	for i = n - 1; i > 0; i-- {
		j = s.r.Intn(i + 1)
		swap(i, j)
	}
}

// ShuffleInts permutes a in place.
func (s *Stream) ShuffleInts(a []int) {
	s.Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })
}

// Derive creates an independent deterministic substream identified by stream.
// The parent advances by one Int63 so repeated derivations with the same id differ.
//
// Complexity: O(1).
func (s *Stream) Derive(stream uint64) *Stream {
	return New(deriveSeed(s.r.Int63(), stream))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with the SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
