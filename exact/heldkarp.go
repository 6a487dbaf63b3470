package exact

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gatsp/distance"
	"github.com/katalvlaran/gatsp/ga"
)

// MaxCities bounds the table size accepted by Solve (2¹⁶·16 DP cells).
const MaxCities = 16

var (
	// ErrInvalidInput indicates a nil table or one with fewer than two cities.
	ErrInvalidInput = errors.New("exact: invalid input")

	// ErrTooLarge indicates a table with more than MaxCities cities.
	ErrTooLarge = errors.New("exact: table too large")
)

// Solve returns the shortest closed tour over table.
//
// dp[mask*n+j] is the cheapest path that leaves the anchor, visits exactly
// the cities in mask (anchor bit always set) and stops at j. The tour is
// closed by the cheapest return edge and rebuilt from the parent table.
// Result.Generation is 0; the distance is rounded like ga.Fitness so both
// compare directly.
func Solve(table *distance.Table) (ga.Result, error) {
	if table == nil || table.Len() < 2 {
		return ga.Result{}, fmt.Errorf("%w: need a table with at least two cities", ErrInvalidInput)
	}
	n := table.Len()
	if n > MaxCities {
		return ga.Result{}, fmt.Errorf("%w: %d cities, limit %d", ErrTooLarge, n, MaxCities)
	}

	dist, err := flatten(table)
	if err != nil {
		return ga.Result{}, err
	}

	full := 1<<n - 1
	dp := make([]float64, (full+1)*n)
	parent := make([]int, (full+1)*n)
	for i := range dp {
		dp[i] = math.Inf(1)
		parent[i] = -1
	}
	dp[1*n+0] = 0 // {anchor}, standing at the anchor

	var (
		mask, prev int
		j, k       int
		cand       float64
	)
	for mask = 1; mask <= full; mask += 2 { // odd masks contain the anchor
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 || math.IsInf(dp[prev*n+k], 1) {
					continue
				}
				cand = dp[prev*n+k] + dist[k*n+j]
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = k
				}
			}
		}
	}

	last, best := -1, math.Inf(1)
	for j = 1; j < n; j++ {
		if cand = dp[full*n+j] + dist[j*n]; cand < best {
			best, last = cand, j
		}
	}

	tour := make(ga.Tour, n+1)
	mask = full
	for i := n - 1; i >= 1; i-- {
		tour[i] = last
		k = parent[mask*n+last]
		mask ^= 1 << last
		last = k
	}

	if err = ga.ValidateTour(tour, n, 0); err != nil {
		return ga.Result{}, fmt.Errorf("exact: rebuilt tour: %w", err)
	}
	d, err := ga.Fitness(table, tour)
	if err != nil {
		return ga.Result{}, err
	}
	ids, err := tour.IDs(table)
	if err != nil {
		return ga.Result{}, err
	}
	return ga.Result{Tour: ids, Indices: tour, Distance: d}, nil
}

// Gap returns (heuristic-optimal)/optimal, or 0 when optimal is 0.
func Gap(heuristic, optimal float64) float64 {
	if optimal == 0 {
		return 0
	}
	return (heuristic - optimal) / optimal
}

// flatten copies the table into a row-major slice for the inner loop.
func flatten(table *distance.Table) ([]float64, error) {
	n := table.Len()
	out := make([]float64, n*n)

	var (
		i, j int
		w    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if w, err = table.At(i, j); err != nil {
				return nil, err
			}
			out[i*n+j] = w
		}
	}
	return out, nil
}
