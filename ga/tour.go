package ga

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/gatsp/distance"
)

// ValidateTour enforces the tour invariants over n cities:
//
//	len(tour) == n+1, tour[0] == tour[n] == anchor,
//	each index v ∈ [0..n-1] appears exactly once in positions [0..n-1].
//
// Violations are reported as ErrInvalidInput.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour Tour, n int, anchor int) error {
	if n <= 0 || len(tour) != n+1 {
		return fmt.Errorf("%w: tour length %d for %d cities", ErrInvalidInput, len(tour), n)
	}
	if anchor < 0 || anchor >= n {
		return fmt.Errorf("%w: anchor %d out of range", ErrInvalidInput, anchor)
	}
	if tour[0] != anchor || tour[n] != anchor {
		return fmt.Errorf("%w: tour must start and end at %d", ErrInvalidInput, anchor)
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: city %d out of range", ErrInvalidInput, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: city %d visited twice", ErrInvalidInput, v)
		}
		seen[v] = true
	}
	return nil
}

// randomTour returns [anchor, perm(others)..., anchor] for n cities with
// anchor index 0.
//
// Complexity: O(n).
func randomTour(n int, r *rand.Rand) Tour {
	t := make(Tour, n+1)
	for i := 1; i < n; i++ {
		t[i] = i
	}
	shuffleInPlace(t[1:n], r)
	return t
}

// Clone returns an independent copy of t.
func (t Tour) Clone() Tour { return slices.Clone(t) }

// IDs maps t to city identifiers of table.
func (t Tour) IDs(table *distance.Table) ([]string, error) {
	out := make([]string, len(t))
	for i, v := range t {
		if v < 0 || v >= table.Len() {
			return nil, fmt.Errorf("%w: index %d", distance.ErrUnknownCity, v)
		}
		out[i] = table.ID(v)
	}
	return out, nil
}

// Reverse returns t traversed in the opposite direction, still anchored.
func (t Tour) Reverse() Tour {
	out := t.Clone()
	slices.Reverse(out)
	return out
}
