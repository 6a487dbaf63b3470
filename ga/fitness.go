package ga

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gatsp/distance"
)

// roundScale controls cost stabilization precision (1e-9), so that equal
// tours summed in different orders compare equal.
const roundScale = 1e9

// Fitness returns the total length of tour: the sum of table distances over
// consecutive pairs. Lower is better. It does not check tour invariants;
// out-of-range indices surface as distance.ErrUnknownCity.
//
// Complexity: O(len(tour)).
func Fitness(table *distance.Table, tour Tour) (float64, error) {
	if table == nil || len(tour) < 2 {
		return 0, fmt.Errorf("%w: fitness needs a table and at least one edge", ErrInvalidInput)
	}

	var (
		sum float64
		w   float64
		err error
		i   int
	)
	for i = 0; i < len(tour)-1; i++ {
		if w, err = table.At(tour[i], tour[i+1]); err != nil {
			return 0, err
		}
		sum += w
	}
	return round1e9(sum), nil
}

// evaluate computes the fitness of every tour in pop.
func evaluate(table *distance.Table, pop []Tour) ([]float64, error) {
	fit := make([]float64, len(pop))

	var err error
	for i := range pop {
		if fit[i], err = Fitness(table, pop[i]); err != nil {
			return nil, err
		}
	}
	return fit, nil
}

// round1e9 rounds x to 1e-9.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
