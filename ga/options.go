package ga

import (
	"math/rand"

	"go.uber.org/zap"
)

// Panic messages for nonsensical option values (programmer errors).
const (
	panicNilRand   = "ga: WithRand: nil *rand.Rand"
	panicNilLogger = "ga: WithLogger: nil *zap.Logger"
)

// Option configures a Solver at construction.
type Option func(*settings)

// settings is the resolved Option set.
type settings struct {
	rng      *rand.Rand
	logger   *zap.Logger
	observer func(GenerationStats)
}

// WithSeed makes the Solver reproducible: equal seeds and parameters over
// the same table yield identical runs. Seed 0 maps to a fixed default seed.
func WithSeed(seed int64) Option {
	return func(s *settings) { s.rng = rngFromSeed(seed) }
}

// WithRand hands the Solver an existing source. The Solver takes ownership;
// the caller must not draw from r concurrently.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicNilRand)
	}
	return func(s *settings) { s.rng = r }
}

// WithLogger routes per-generation Debug logs and the run summary to l.
// Solvers log nothing by default.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(s *settings) { s.logger = l }
}

// WithObserver registers fn to be called synchronously after every
// generation. fn must not call back into the Solver.
func WithObserver(fn func(GenerationStats)) Option {
	return func(s *settings) { s.observer = fn }
}

// gatherSettings applies opts over the defaults.
func gatherSettings(opts []Option) settings {
	s := settings{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if s.rng == nil {
		s.rng = rngFromClock()
	}
	return s
}
