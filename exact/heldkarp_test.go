package exact_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/distance"
	"github.com/katalvlaran/gatsp/exact"
	"github.com/katalvlaran/gatsp/ga"
)

func randomTable(t *testing.T, n int, r *rand.Rand) *distance.Table {
	t.Helper()
	cities := make([]distance.City, n)
	for i := range cities {
		cities[i] = distance.City{ID: fmt.Sprintf("c%d", i), X: r.Float64() * 100, Y: r.Float64() * 100}
	}
	tbl, err := distance.New(cities)
	require.NoError(t, err)
	return tbl
}

// bruteForce enumerates every tour anchored at 0.
func bruteForce(t *testing.T, tbl *distance.Table) float64 {
	t.Helper()
	n := tbl.Len()
	rest := make([]int, n-1)
	for i := range rest {
		rest[i] = i + 1
	}
	best := math.Inf(1)
	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			tour := append(append(ga.Tour{0}, rest...), 0)
			d, err := ga.Fitness(tbl, tour)
			require.NoError(t, err)
			best = math.Min(best, d)
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)
	return best
}

func TestSolveSquare(t *testing.T) {
	tbl, err := distance.New([]distance.City{
		{ID: "A", X: 0, Y: 0},
		{ID: "B", X: 10, Y: 10},
		{ID: "C", X: 0, Y: 10},
		{ID: "D", X: 10, Y: 0},
	})
	require.NoError(t, err)

	res, err := exact.Solve(tbl)
	require.NoError(t, err)
	require.InDelta(t, 40.0, res.Distance, 1e-9)
	require.Equal(t, "A", res.Tour[0])
	require.Equal(t, "A", res.Tour[4])
	require.NoError(t, ga.ValidateTour(res.Indices, 4, 0))
	require.Zero(t, res.Generation)
}

func TestSolvePair(t *testing.T) {
	tbl, err := distance.New([]distance.City{{ID: "A"}, {ID: "X", X: 5}})
	require.NoError(t, err)

	res, err := exact.Solve(tbl)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "X", "A"}, res.Tour)
	require.Equal(t, 10.0, res.Distance)
}

func TestSolveMatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for n := 3; n <= 8; n++ {
		tbl := randomTable(t, n, r)
		res, err := exact.Solve(tbl)
		require.NoError(t, err)
		require.InDelta(t, bruteForce(t, tbl), res.Distance, 1e-6, "n=%d", n)
	}
}

func TestSolveLowerBoundsGA(t *testing.T) {
	tbl := randomTable(t, 9, rand.New(rand.NewSource(3)))
	opt, err := exact.Solve(tbl)
	require.NoError(t, err)

	s, err := ga.NewSolver(tbl, ga.Params{PopulationSize: 30, MutationRate: 0.1, Generations: 40}, ga.WithSeed(1))
	require.NoError(t, err)
	res, err := s.Evolve()
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.Distance+1e-9, opt.Distance)
	require.GreaterOrEqual(t, exact.Gap(res.Distance, opt.Distance), -1e-9)
}

func TestSolveRejects(t *testing.T) {
	_, err := exact.Solve(nil)
	require.ErrorIs(t, err, exact.ErrInvalidInput)

	one, err := distance.New([]distance.City{{ID: "A"}})
	require.NoError(t, err)
	_, err = exact.Solve(one)
	require.ErrorIs(t, err, exact.ErrInvalidInput)

	big := randomTable(t, exact.MaxCities+1, rand.New(rand.NewSource(1)))
	_, err = exact.Solve(big)
	require.ErrorIs(t, err, exact.ErrTooLarge)
}

func TestGap(t *testing.T) {
	require.Equal(t, 0.0, exact.Gap(5, 0))
	require.InDelta(t, 0.25, exact.Gap(50, 40), 1e-12)
	require.Equal(t, 0.0, exact.Gap(40, 40))
}
