package ga

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/gatsp/distance"
)

// Solver evolves a population of tours over one distance table.
// A Solver is not safe for concurrent use.
type Solver struct {
	table    *distance.Table
	params   Params
	k        int // effective tournament size
	n        int // number of cities
	rng      *rand.Rand
	log      *zap.Logger
	observer func(GenerationStats)

	pop        []Tour
	fit        []float64
	generation int
	best       Result
}

// NewSolver validates its inputs and seeds the initial population with
// PopulationSize independent uniform random tours anchored at the table's
// first city.
//
// Errors: ErrInvalidInput for a nil table, fewer than 2 cities, or
// out-of-range parameters (see Params).
//
// Complexity: O(PopulationSize·n).
func NewSolver(table *distance.Table, params Params, opts ...Option) (*Solver, error) {
	if err := validateTable(table); err != nil {
		return nil, err
	}
	k, err := validateParams(params)
	if err != nil {
		return nil, err
	}
	cfg := gatherSettings(opts)

	s := &Solver{
		table:    table,
		params:   params,
		k:        k,
		n:        table.Len(),
		rng:      cfg.rng,
		log:      cfg.logger,
		observer: cfg.observer,
		best:     Result{Distance: math.Inf(1)},
	}

	s.pop = make([]Tour, params.PopulationSize)
	for i := range s.pop {
		s.pop[i] = randomTour(s.n, s.rng)
	}
	if s.fit, err = evaluate(table, s.pop); err != nil {
		return nil, err
	}

	s.log.Debug("solver initialised",
		zap.Int("cities", s.n),
		zap.Int("population", params.PopulationSize),
		zap.Float64("mutation_rate", params.MutationRate),
		zap.Int("generations", params.Generations),
		zap.Int("tournament_k", k),
	)
	return s, nil
}

// Evolve runs Params.Generations generations and returns the best tour seen
// over the solver's lifetime. Calling Evolve again continues from the current
// population; the returned distance never increases between calls.
func (s *Solver) Evolve() (Result, error) {
	return s.EvolveContext(context.Background())
}

// EvolveContext is Evolve with cancellation checked between generations.
// On cancellation it returns the best-so-far together with ctx.Err(); the
// solver stays consistent and may be resumed.
func (s *Solver) EvolveContext(ctx context.Context) (Result, error) {
	var (
		g   int
		err error
	)
	for g = 0; g < s.params.Generations; g++ {
		if err = ctx.Err(); err != nil {
			s.log.Debug("evolution interrupted", zap.Int("generation", s.generation), zap.Error(err))
			return s.Best(), err
		}
		if _, err = s.Step(); err != nil {
			return s.Best(), err
		}
	}

	s.log.Info("evolution finished",
		zap.Int("generations", s.generation),
		zap.Float64("best_distance", s.best.Distance),
		zap.Int("found_in_generation", s.best.Generation),
	)
	return s.Best(), nil
}

// Step runs exactly one generation: selection, pairwise order crossover,
// mutation, replacement and evaluation. The population and best-so-far are
// replaced only after the generation has fully succeeded.
//
// Complexity: O(PopulationSize·(k + n)).
func (s *Solver) Step() (GenerationStats, error) {
	var (
		size = s.params.PopulationSize
		next = make([]Tour, 0, size+1)
		i    int
	)

	selected, err := TournamentSelect(s.pop, s.fit, s.k, s.rng)
	if err != nil {
		return GenerationStats{}, err
	}

	var p1, p2, c1, c2 Tour
	for i = 0; i < size; i += 2 {
		p1, p2 = selected[i], selected[(i+1)%size]
		if c1, err = OrderCrossover(p1, p2, s.rng); err != nil {
			return GenerationStats{}, err
		}
		if c2, err = OrderCrossover(p2, p1, s.rng); err != nil {
			return GenerationStats{}, err
		}
		next = append(next, c1, c2)
	}
	// Odd sizes produce one surplus child.
	next = next[:size]

	for i = range next {
		next[i] = Mutate(next[i], s.params.MutationRate, s.rng)
	}

	fit, err := evaluate(s.table, next)
	if err != nil {
		return GenerationStats{}, err
	}

	s.pop, s.fit = next, fit
	s.generation++

	st := summarize(s.generation, fit)
	if st.Best < s.best.Distance {
		s.record(st.Best)
		st.Improved = true
		s.log.Debug("new best tour",
			zap.Int("generation", s.generation),
			zap.Float64("distance", st.Best),
		)
	}
	st.BestSoFar = s.best.Distance

	s.log.Debug("generation",
		zap.Int("generation", st.Generation),
		zap.Float64("best", st.Best),
		zap.Float64("mean", st.Mean),
		zap.Float64("stddev", st.StdDev),
		zap.Float64("best_so_far", st.BestSoFar),
	)
	if s.observer != nil {
		s.observer(st)
	}
	return st, nil
}

// record stores the first population member with distance d as best-so-far.
func (s *Solver) record(d float64) {
	for i, f := range s.fit {
		if f != d {
			continue
		}
		ids, _ := s.pop[i].IDs(s.table) // indices were validated by evaluate
		s.best = Result{
			Tour:       ids,
			Indices:    s.pop[i].Clone(),
			Distance:   d,
			Generation: s.generation,
		}
		return
	}
}

// Best returns a copy of the best-so-far result. Before the first generation
// its Distance is +Inf and its tours are nil.
func (s *Solver) Best() Result {
	out := s.best
	out.Tour = append([]string(nil), s.best.Tour...)
	out.Indices = s.best.Indices.Clone()
	return out
}

// Population returns a deep copy of the current population.
func (s *Solver) Population() []Tour {
	out := make([]Tour, len(s.pop))
	for i := range s.pop {
		out[i] = s.pop[i].Clone()
	}
	return out
}

// Fitness returns a copy of the current population's fitness values.
func (s *Solver) Fitness() []float64 {
	return append([]float64(nil), s.fit...)
}

// Generation returns the number of generations run so far.
func (s *Solver) Generation() int { return s.generation }

// Params returns the solver's parameters.
func (s *Solver) Params() Params { return s.params }

// Table returns the solver's distance table.
func (s *Solver) Table() *distance.Table { return s.table }

// String implements fmt.Stringer.
func (s *Solver) String() string {
	return fmt.Sprintf("ga.Solver{cities:%d pop:%d gen:%d best:%g}",
		s.n, s.params.PopulationSize, s.generation, s.best.Distance)
}
