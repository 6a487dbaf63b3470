package ga_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/distance"
	"github.com/katalvlaran/gatsp/ga"
)

// TestValidateTour accepts anchored permutations and rejects everything else.
func TestValidateTour(t *testing.T) {
	require.NoError(t, ga.ValidateTour(ga.Tour{0, 2, 1, 3, 0}, 4, 0))
	require.NoError(t, ga.ValidateTour(ga.Tour{2, 0, 1, 2}, 3, 2))

	bad := []struct {
		name string
		tour ga.Tour
	}{
		{"short", ga.Tour{0, 1, 2, 0}},
		{"long", ga.Tour{0, 1, 2, 3, 1, 0}},
		{"open", ga.Tour{0, 1, 2, 3, 1}},
		{"wrong start", ga.Tour{1, 0, 2, 3, 0}},
		{"duplicate", ga.Tour{0, 1, 1, 3, 0}},
		{"out of range", ga.Tour{0, 1, 2, 4, 0}},
		{"negative", ga.Tour{0, -1, 2, 3, 0}},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, ga.ValidateTour(tc.tour, 4, 0), ga.ErrInvalidInput)
		})
	}

	require.ErrorIs(t, ga.ValidateTour(ga.Tour{0, 0}, 1, 3), ga.ErrInvalidInput)
	require.ErrorIs(t, ga.ValidateTour(nil, 0, 0), ga.ErrInvalidInput)
}

// TestTourHelpers covers Clone, Reverse and IDs.
func TestTourHelpers(t *testing.T) {
	tbl := squareTable(t)
	tour := ga.Tour{0, 1, 2, 3, 0}

	c := tour.Clone()
	c[1] = 3
	require.Equal(t, 1, tour[1], "Clone must not alias")

	require.Equal(t, ga.Tour{0, 3, 2, 1, 0}, tour.Reverse())
	require.Equal(t, ga.Tour{0, 1, 2, 3, 0}, tour)

	ids, err := tour.IDs(tbl)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D", "A"}, ids)

	_, err = ga.Tour{0, 9, 0}.IDs(tbl)
	require.ErrorIs(t, err, distance.ErrUnknownCity)
}
