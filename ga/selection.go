package ga

import (
	"fmt"
	"math/rand"
)

// TournamentSelect returns len(pop) parents. Each trial samples k distinct
// individuals uniformly and keeps the one with the smallest fitness; trials
// are independent, so an individual can win several times.
//
// Tie-break: the first minimum in sampling order wins.
//
// The returned slice shares tours with pop; operators never modify their
// inputs, so this is safe. A nil r uses the default deterministic stream.
//
// Errors: ErrInvalidInput when pop is empty, len(fit) != len(pop), or k is
// outside [1, len(pop)].
//
// Complexity: O(len(pop)·k) time, O(len(pop)) space.
func TournamentSelect(pop []Tour, fit []float64, k int, r *rand.Rand) ([]Tour, error) {
	n := len(pop)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty population", ErrInvalidInput)
	}
	if len(fit) != n {
		return nil, fmt.Errorf("%w: %d fitness values for %d tours", ErrInvalidInput, len(fit), n)
	}
	if k <= 0 || k > n {
		return nil, fmt.Errorf("%w: tournament size %d not in [1,%d]", ErrInvalidInput, k, n)
	}
	r = orDefault(r)

	var (
		idx      = make([]int, n) // sampling scratch, a permutation of 0..n-1
		selected = make([]Tour, n)
		trial    int
		best     int
		c        int
	)
	for c = range idx {
		idx[c] = c
	}
	for trial = 0; trial < n; trial++ {
		best = -1
		for _, c = range sampleDistinct(idx, k, r) {
			if best < 0 || fit[c] < fit[best] {
				best = c
			}
		}
		selected[trial] = pop[best]
	}
	return selected, nil
}
