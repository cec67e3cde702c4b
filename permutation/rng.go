package permutation

import "math/rand"

// defaultSeed is used when callers pass seed==0, so that "no seed" still
// means a stable, reproducible stream.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
//
// The returned generator is NOT goroutine-safe.
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed with a stream id (SplitMix64 finalizer) so
// that neighbouring ids give unrelated tables, e.g. one table per world layer.
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// shuffleInPlace performs a descending Fisher–Yates shuffle of a.
// rng==nil falls back to the default deterministic stream.
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(a []int, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	if rng == nil {
		rng = NewRand(0)
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1) // uniform over [0, i]
		a[i], a[j] = a[j], a[i]
	}
}
