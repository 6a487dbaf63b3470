package ga

import (
	"errors"
	"math"
)

var (
	// ErrInvalidInput indicates malformed GA parameters, a nil or too small
	// distance table, or a malformed tour passed to an operator.
	ErrInvalidInput = errors.New("ga: invalid input")

	// ErrInvariantViolation indicates that an operator produced a tour that
	// breaks the tour invariants. It signals a bug, not a user error.
	ErrInvariantViolation = errors.New("ga: invariant violation")
)

// Default parameter values.
const (
	DefaultPopulationSize = 20
	DefaultMutationRate   = 0.1
	DefaultGenerations    = 100
	DefaultTournamentK    = 3
)

// Tour is a closed visiting order over city indices: len == n+1 and
// Tour[0] == Tour[n] == anchor.
type Tour []int

// Params configures a Solver.
type Params struct {
	// PopulationSize is the number of tours per generation (> 0; even sizes
	// pair up exactly, odd sizes drop the surplus child).
	PopulationSize int

	// MutationRate is the probability in [0,1] that a child is swap-mutated.
	MutationRate float64

	// Generations is the number of generations run by one Evolve call (> 0).
	Generations int

	// TournamentK is the tournament size, 1 ≤ k ≤ PopulationSize.
	// Zero selects min(DefaultTournamentK, PopulationSize).
	TournamentK int
}

// DefaultParams returns the stock configuration (20, 0.1, 100, k=3).
func DefaultParams() Params {
	return Params{
		PopulationSize: DefaultPopulationSize,
		MutationRate:   DefaultMutationRate,
		Generations:    DefaultGenerations,
		TournamentK:    DefaultTournamentK,
	}
}

// Result is the best tour found by a Solver.
type Result struct {
	// Tour lists city identifiers in visiting order, anchor first and last.
	Tour []string

	// Indices is the same tour as table indices.
	Indices Tour

	// Distance is the total closed-tour length; +Inf before any generation ran.
	Distance float64

	// Generation is the 1-based generation in which the tour was found.
	Generation int
}

// Found reports whether r holds a tour.
func (r Result) Found() bool { return r.Indices != nil && !math.IsInf(r.Distance, 1) }

// GenerationStats summarizes one generation's population.
type GenerationStats struct {
	Generation int     // 1-based generation counter of the solver
	Best       float64 // shortest tour in this generation
	Worst      float64 // longest tour in this generation
	Mean       float64 // mean tour length
	StdDev     float64 // sample standard deviation (0 for a single individual)
	BestSoFar  float64 // best-so-far after this generation
	Improved   bool    // whether this generation improved best-so-far
}
