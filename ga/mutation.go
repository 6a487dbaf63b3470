package ga

import "math/rand"

// Mutate applies swap mutation: with probability rate it returns a copy of
// tour with two distinct interior positions exchanged; otherwise it returns
// tour itself. The anchor positions 0 and len-1 are never touched, and
// tours with fewer than two interior positions are returned unchanged
// without consuming randomness.
//
// A nil r uses the default deterministic stream.
//
// Complexity: O(n) when mutating (copy), O(1) otherwise.
func Mutate(tour Tour, rate float64, r *rand.Rand) Tour {
	if len(tour)-2 < 2 {
		return tour
	}
	r = orDefault(r)
	if r.Float64() >= rate {
		return tour
	}

	i, j := twoDistinct(1, len(tour)-1, r)
	out := tour.Clone()
	out[i], out[j] = out[j], out[i]
	return out
}
