package ga_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/distance"
	"github.com/katalvlaran/gatsp/ga"
)

// TestFitnessSquare checks the two distinct tour lengths of the square.
func TestFitnessSquare(t *testing.T) {
	tbl := squareTable(t)

	f, err := ga.Fitness(tbl, ga.Tour{0, 1, 2, 3, 0})
	require.NoError(t, err)
	require.Equal(t, squarePerimeter, f)

	f, err = ga.Fitness(tbl, ga.Tour{0, 2, 1, 3, 0})
	require.NoError(t, err)
	require.InDelta(t, squareCrossed, f, 1e-9)
}

// TestFitnessReversalInvariant uses random tours on an asymmetric layout.
func TestFitnessReversalInvariant(t *testing.T) {
	tbl := tenCityTable(t)
	r := rand.New(rand.NewSource(seedDet))

	for i := 0; i < 50; i++ {
		tour := randTour(tbl.Len(), r)
		fwd, err := ga.Fitness(tbl, tour)
		require.NoError(t, err)
		rev, err := ga.Fitness(tbl, tour.Reverse())
		require.NoError(t, err)

		require.Greater(t, fwd, 0.0)
		require.InDelta(t, fwd, rev, 1e-9, "tour %v", tour)
	}
}

// TestFitnessErrors covers the defensive paths.
func TestFitnessErrors(t *testing.T) {
	tbl := squareTable(t)

	_, err := ga.Fitness(nil, ga.Tour{0, 1, 0})
	require.ErrorIs(t, err, ga.ErrInvalidInput)

	_, err = ga.Fitness(tbl, ga.Tour{0})
	require.ErrorIs(t, err, ga.ErrInvalidInput)

	_, err = ga.Fitness(tbl, ga.Tour{0, 7, 0})
	require.ErrorIs(t, err, distance.ErrUnknownCity)
}
