// Package ga_test holds shared fixtures for the ga tests.
package ga_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/distance"
	"github.com/katalvlaran/gatsp/ga"
)

const (
	// seedDet is the fixed seed used where a test needs reproducibility.
	seedDet = int64(42)

	// squarePerimeter is the optimal (and input-order) tour length of square().
	squarePerimeter = 40.0

	// squareCrossed is the length of either crossing tour of square().
	squareCrossed = 48.284271247
)

// squareTable is A(0,0) B(0,10) C(10,10) D(10,0).
func squareTable(t testing.TB) *distance.Table {
	t.Helper()
	tbl, err := distance.New([]distance.City{
		{ID: "A", X: 0, Y: 0},
		{ID: "B", X: 0, Y: 10},
		{ID: "C", X: 10, Y: 10},
		{ID: "D", X: 10, Y: 0},
	})
	require.NoError(t, err)
	return tbl
}

// pairTable is the degenerate 2-city instance A(0,0) X(5,0).
func pairTable(t testing.TB) *distance.Table {
	t.Helper()
	tbl, err := distance.New([]distance.City{
		{ID: "A", X: 0, Y: 0},
		{ID: "X", X: 5, Y: 0},
	})
	require.NoError(t, err)
	return tbl
}

// tenCityTable is the ten-city map A..J used by the command-line tool.
func tenCityTable(t testing.TB) *distance.Table {
	t.Helper()
	tbl, err := distance.New([]distance.City{
		{ID: "A", X: 100, Y: 300},
		{ID: "B", X: 200, Y: 130},
		{ID: "C", X: 300, Y: 500},
		{ID: "D", X: 500, Y: 390},
		{ID: "E", X: 700, Y: 300},
		{ID: "F", X: 900, Y: 600},
		{ID: "G", X: 800, Y: 950},
		{ID: "H", X: 600, Y: 560},
		{ID: "I", X: 350, Y: 550},
		{ID: "J", X: 270, Y: 350},
	})
	require.NoError(t, err)
	return tbl
}

// randTour returns a uniformly random tour over n cities anchored at 0.
func randTour(n int, r *rand.Rand) ga.Tour {
	t := make(ga.Tour, n+1)
	for i, v := range r.Perm(n - 1) {
		t[i+1] = v + 1
	}
	return t
}

// requireValidTour asserts the anchored-permutation invariants.
func requireValidTour(t testing.TB, tour ga.Tour, n int) {
	t.Helper()
	require.NoError(t, ga.ValidateTour(tour, n, 0), "tour %v", tour)
}
