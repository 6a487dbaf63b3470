package ga

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gatsp/distance"
)

// minCities is the smallest city set with a meaningful tour (anchor + one).
const minCities = 2

// validateParams checks p in isolation and returns the effective tournament size.
//
// Complexity: O(1).
func validateParams(p Params) (int, error) {
	if p.PopulationSize <= 0 {
		return 0, fmt.Errorf("%w: population size %d must be positive", ErrInvalidInput, p.PopulationSize)
	}
	if math.IsNaN(p.MutationRate) || p.MutationRate < 0 || p.MutationRate > 1 {
		return 0, fmt.Errorf("%w: mutation rate %v outside [0,1]", ErrInvalidInput, p.MutationRate)
	}
	if p.Generations <= 0 {
		return 0, fmt.Errorf("%w: generations %d must be positive", ErrInvalidInput, p.Generations)
	}

	return tournamentSize(p.TournamentK, p.PopulationSize)
}

// tournamentSize resolves k against the population size. Zero means default.
func tournamentSize(k, popSize int) (int, error) {
	if k == 0 {
		return min(DefaultTournamentK, popSize), nil
	}
	if k < 0 || k > popSize {
		return 0, fmt.Errorf("%w: tournament size %d not in [1,%d]", ErrInvalidInput, k, popSize)
	}

	return k, nil
}

// validateTable requires a non-nil table with at least minCities cities.
func validateTable(t *distance.Table) error {
	if t == nil {
		return fmt.Errorf("%w: nil distance table", ErrInvalidInput)
	}
	if t.Len() < minCities {
		return fmt.Errorf("%w: %d cities, need at least %d", ErrInvalidInput, t.Len(), minCities)
	}

	return nil
}

// Validate reports whether p is acceptable to NewSolver, independent of any
// table. Errors wrap ErrInvalidInput.
func (p Params) Validate() error {
	_, err := validateParams(p)
	return err
}
