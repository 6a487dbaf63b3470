package experiment

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gatsp/distance"
	"github.com/katalvlaran/gatsp/ga"
)

// Run executes every repeat of every trial against table and returns one
// Outcome per trial, in trial order. The first failing run cancels the rest
// and its error is returned.
//
// Each run owns its Solver and random stream; table is only read.
func Run(ctx context.Context, table *distance.Table, trials []Trial, opts Options) ([]Outcome, error) {
	if len(trials) == 0 {
		return nil, ErrNoTrials
	}
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	results := make([][]ga.Result, len(trials))
	for i := range trials {
		results[i] = make([]ga.Result, trials[i].repeats())
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range trials {
		for j := range results[i] {
			i, j := i, j
			g.Go(func() error {
				res, err := runOne(gctx, table, trials[i].Params, streamID(i, j), opts.Seed)
				if err != nil {
					return fmt.Errorf("trial %d repeat %d: %w", i, j, err)
				}
				results[i][j] = res
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Outcome, len(trials))
	for i := range trials {
		o, err := aggregate(trials[i], results[i])
		if err != nil {
			return nil, err
		}
		out[i] = o
		log.Info("trial finished",
			zap.Int("trial", i),
			zap.Float64("mutation_rate", trials[i].Params.MutationRate),
			zap.Int("population", trials[i].Params.PopulationSize),
			zap.Int("generations", trials[i].Params.Generations),
			zap.Int("runs", o.Summary.Runs),
			zap.Float64("best_distance", o.Best.Distance),
			zap.Float64("mean_distance", o.Summary.Mean),
		)
	}
	return out, nil
}

// streamID packs (trial, repeat) into a stream identifier.
func streamID(trial, repeat int) uint64 {
	return uint64(trial)<<32 | uint64(uint32(repeat))
}

// runOne evolves a fresh solver on its own derived stream.
func runOne(ctx context.Context, table *distance.Table, p ga.Params, stream uint64, seed int64) (ga.Result, error) {
	sv, err := ga.NewSolver(table, p, ga.WithRand(ga.DeriveRand(seed, stream)))
	if err != nil {
		return ga.Result{}, err
	}
	return sv.EvolveContext(ctx)
}

// aggregate summarizes the repeats of one trial.
func aggregate(t Trial, runs []ga.Result) (Outcome, error) {
	o := Outcome{
		Trial:     t,
		Distances: make([]float64, len(runs)),
		Best:      ga.Result{Distance: math.Inf(1)},
	}
	for j, r := range runs {
		o.Distances[j] = r.Distance
		if r.Distance < o.Best.Distance {
			o.Best = r
		}
	}

	s, err := summarize(o.Distances)
	if err != nil {
		return Outcome{}, err
	}
	o.Summary = s
	return o, nil
}

// summarize computes Summary over d (non-empty).
func summarize(d []float64) (Summary, error) {
	var (
		s   = Summary{Runs: len(d)}
		err error
	)
	if s.Mean, err = stats.Mean(d); err != nil {
		return Summary{}, err
	}
	if s.Median, err = stats.Median(d); err != nil {
		return Summary{}, err
	}
	if s.Min, err = stats.Min(d); err != nil {
		return Summary{}, err
	}
	if s.Max, err = stats.Max(d); err != nil {
		return Summary{}, err
	}
	if len(d) > 1 {
		if s.StdDev, err = stats.StandardDeviationSample(d); err != nil {
			return Summary{}, err
		}
	}
	return s, nil
}
