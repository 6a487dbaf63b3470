package experiment

import (
	"errors"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/gatsp/ga"
)

// ErrNoTrials is returned by Run when the trial list is empty.
var ErrNoTrials = errors.New("experiment: no trials")

// Trial is one parameter combination of a sweep.
type Trial struct {
	Params  ga.Params
	Repeats int // independent runs; values < 1 mean 1
}

// repeats returns the effective repeat count.
func (t Trial) repeats() int {
	if t.Repeats < 1 {
		return 1
	}
	return t.Repeats
}

// Summary aggregates the best distances of a trial's repeats.
type Summary struct {
	Runs   int
	Mean   float64
	StdDev float64 // sample standard deviation; 0 for a single run
	Median float64
	Min    float64
	Max    float64
}

// Outcome is the result of one trial.
type Outcome struct {
	Trial     Trial
	Best      ga.Result // shortest tour over all repeats (first on ties)
	Distances []float64 // best distance of each repeat, in repeat order
	Summary   Summary
}

// Options configures Run.
type Options struct {
	// Seed is the base seed for all derived streams (0 maps to ga's default).
	Seed int64

	// Workers bounds concurrent runs; values < 1 mean runtime.GOMAXPROCS(0).
	Workers int

	// Logger receives one Info entry per finished trial. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns Options with the seed 0 stream, one worker per CPU
// and no logging.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// DefaultTrials is the stock comparison: the base configuration
// (rate 0.1, population 50, 100 generations) plus low and high mutation,
// a doubled population, and a five-fold generation budget.
func DefaultTrials() []Trial {
	return []Trial{
		{Params: ga.Params{MutationRate: 0.05, PopulationSize: 50, Generations: 100, TournamentK: 3}, Repeats: 1},
		{Params: ga.Params{MutationRate: 0.1, PopulationSize: 50, Generations: 100, TournamentK: 3}, Repeats: 1},
		{Params: ga.Params{MutationRate: 0.3, PopulationSize: 50, Generations: 100, TournamentK: 3}, Repeats: 1},
		{Params: ga.Params{MutationRate: 0.1, PopulationSize: 100, Generations: 100, TournamentK: 3}, Repeats: 1},
		{Params: ga.Params{MutationRate: 0.1, PopulationSize: 50, Generations: 500, TournamentK: 3}, Repeats: 1},
	}
}
