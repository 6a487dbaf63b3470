// Package ga - RNG utilities shared by the operators and the Solver.
//
// Determinism: the same seed yields the same sequence of draws, hence the
// same tours. No operator consults a global source.
//
// Concurrency: math/rand.Rand is NOT goroutine-safe. Give every Solver its
// own stream; DeriveRand creates independent streams for parallel runs.
package ga

import (
	"math/rand"
	"time"
)

// defaultRNGSeed is used when callers pass seed==0 and by operators that
// receive a nil *rand.Rand.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// rngFromClock returns a non-reproducible source for unseeded solvers.
func rngFromClock() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// orDefault substitutes the default deterministic stream for a nil r.
func orDefault(r *rand.Rand) *rand.Rand {
	if r == nil {
		return rngFromSeed(0)
	}
	return r
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64 finalizer, so neighbouring stream ids give unrelated
// seeds.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRand returns the deterministic stream number stream of seed.
// Distinct streams of one seed are independent; use one per parallel run.
func DeriveRand(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}

// shuffleInPlace performs a Fisher–Yates shuffle of a.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(a []int, r *rand.Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// sampleDistinct draws k distinct elements of idx uniformly, in random order,
// by a partial Fisher–Yates pass. The sample is idx[:k]; idx is permuted in
// place and may be reused for the next draw without resetting.
//
// Complexity: O(k).
func sampleDistinct(idx []int, k int, r *rand.Rand) []int {
	var (
		n = len(idx)
		i int
		j int
	)
	for i = 0; i < k; i++ {
		j = i + r.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}

// twoDistinct returns an ordered pair of distinct integers drawn uniformly
// from [lo, hi). Requires hi-lo ≥ 2.
//
// Complexity: O(1).
func twoDistinct(lo, hi int, r *rand.Rand) (int, int) {
	var (
		m = hi - lo
		a = r.Intn(m)
		b = r.Intn(m - 1)
	)
	if b >= a {
		b++
	}
	return lo + a, lo + b
}
