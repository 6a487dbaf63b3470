// Command gatsp searches for a short round trip through a city map with the
// genetic solver.
//
// Usage:
//
//	gatsp [-config gatsp.toml] [-mode single|sweep] [-seed N] [-v]
//
// Mode "single" evolves one population and writes the best tour to the text
// output file; mode "sweep" runs the configured parameter grid and writes a
// CSV table. Without -mode the tool asks interactively.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/gatsp/config"
	"github.com/katalvlaran/gatsp/distance"
	"github.com/katalvlaran/gatsp/exact"
	"github.com/katalvlaran/gatsp/experiment"
	"github.com/katalvlaran/gatsp/ga"
	"github.com/katalvlaran/gatsp/report"
)

const (
	modeSingle = "single"
	modeSweep  = "sweep"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errInvalidChoice = errors.New("invalid choice, please enter 1 or 2")

// options are the parsed command-line flags.
type options struct {
	configPath string
	mode       string
	seed       int64
	textOut    string
	csvOut     string
	verbose    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without process globals.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return exitUsage
	}

	log, err := newLogger(opts.verbose)
	if err != nil {
		fmt.Fprintln(stderr, "gatsp: logger:", err)
		return exitError
	}
	defer func() { _ = log.Sync() }()

	cfg, err := loadConfig(opts)
	if err != nil {
		log.Error("loading configuration", zap.Error(err))
		return exitError
	}

	mode := opts.mode
	if mode == "" {
		if mode, err = prompt(stdin, stdout); err != nil {
			fmt.Fprintln(stdout, err)
			return exitUsage
		}
	}

	switch mode {
	case modeSingle:
		err = runSingle(ctx, cfg, log, stdout)
	case modeSweep:
		err = runSweep(ctx, cfg, log, stdout)
	default:
		fmt.Fprintf(stderr, "gatsp: unknown mode %q\n", mode)
		return exitUsage
	}
	if err != nil {
		log.Error("run failed", zap.String("mode", mode), zap.Error(err))
		return exitError
	}
	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("gatsp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "TOML or YAML configuration file (built-in ten-city map when empty)")
	fs.StringVar(&o.mode, "mode", "", "run mode: single or sweep (interactive when empty)")
	fs.Int64Var(&o.seed, "seed", 0, "random seed; 0 keeps the configured seed")
	fs.StringVar(&o.textOut, "out", "", "override the text result path")
	fs.StringVar(&o.csvOut, "csv", "", "override the sweep CSV path")
	fs.BoolVar(&o.verbose, "v", false, "verbose (development) logging")
	err := fs.Parse(args)
	return o, err
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadConfig reads the configuration file, if any, and applies flag overrides.
func loadConfig(o options) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if o.seed != 0 {
		cfg.GA.Seed = o.seed
	}
	if o.textOut != "" {
		cfg.Output.Text = o.textOut
	}
	if o.csvOut != "" {
		cfg.Output.CSV = o.csvOut
	}
	return cfg, nil
}

// prompt asks for the run mode on stdin.
func prompt(stdin io.Reader, stdout io.Writer) (string, error) {
	fmt.Fprintln(stdout, "Choose an option:")
	fmt.Fprintln(stdout, "1) Run single experiment (saves the best tour to the text output)")
	fmt.Fprintln(stdout, "2) Run multiple experiments (compares parameter sets, saves a CSV)")
	fmt.Fprint(stdout, "Enter 1 or 2: ")

	sc := bufio.NewScanner(stdin)
	if !sc.Scan() {
		return "", errInvalidChoice
	}
	switch strings.TrimSpace(sc.Text()) {
	case "1":
		return modeSingle, nil
	case "2":
		return modeSweep, nil
	default:
		return "", errInvalidChoice
	}
}

// runSingle evolves one population and saves the summary. A failed save is
// logged but does not fail the run.
func runSingle(ctx context.Context, cfg config.Config, log *zap.Logger, stdout io.Writer) error {
	table, err := cfg.Table()
	if err != nil {
		return err
	}

	opts := []ga.Option{ga.WithLogger(log)}
	if cfg.GA.Seed != 0 {
		opts = append(opts, ga.WithSeed(cfg.GA.Seed))
	}
	solver, err := ga.NewSolver(table, cfg.Params(), opts...)
	if err != nil {
		return err
	}

	res, err := solver.EvolveContext(ctx)
	if err != nil && !(errors.Is(err, context.Canceled) && res.Found()) {
		return err
	}
	if err != nil {
		log.Warn("interrupted, reporting best tour so far", zap.Int("generation", solver.Generation()))
	}

	if err = report.WriteSummary(stdout, res); err != nil {
		return err
	}
	printOptimum(table, []float64{res.Distance}, log, stdout)
	if err = report.SaveFile(cfg.Output.Text, func(w io.Writer) error { return report.WriteSummary(w, res) }); err != nil {
		log.Error("could not save results", zap.String("path", cfg.Output.Text), zap.Error(err))
		return nil
	}
	fmt.Fprintf(stdout, "Results saved to %s\n", cfg.Output.Text)
	return nil
}

// runSweep runs the configured grid and saves the CSV. A failed save is
// logged but does not fail the run.
func runSweep(ctx context.Context, cfg config.Config, log *zap.Logger, stdout io.Writer) error {
	table, err := cfg.Table()
	if err != nil {
		return err
	}

	seed := cfg.GA.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("running sweep", zap.Int("trials", len(cfg.Sweep.Trials)), zap.Int64("seed", seed))

	outcomes, err := experiment.Run(ctx, table, cfg.Trials(), experiment.Options{
		Seed:    seed,
		Workers: cfg.Sweep.Workers,
		Logger:  log,
	})
	if err != nil {
		return err
	}

	best := make([]float64, len(outcomes))
	for i, o := range outcomes {
		p := o.Trial.Params
		fmt.Fprintf(stdout, "Mutation: %g, Pop: %d, Gen: %d -> %s miles\n",
			p.MutationRate, p.PopulationSize, p.Generations, report.FormatDistance(o.Best.Distance))
		best[i] = o.Best.Distance
	}
	printOptimum(table, best, log, stdout)

	if err = report.SaveFile(cfg.Output.CSV, func(w io.Writer) error { return report.WriteCSV(w, outcomes) }); err != nil {
		log.Error("could not save sweep results", zap.String("path", cfg.Output.CSV), zap.Error(err))
		return nil
	}
	fmt.Fprintf(stdout, "All results saved to %s\n", cfg.Output.CSV)
	return nil
}

// printOptimum reports the Held–Karp optimum and the gap of the best of
// found. Maps above exact.MaxCities are skipped.
func printOptimum(table *distance.Table, found []float64, log *zap.Logger, stdout io.Writer) {
	if table.Len() > exact.MaxCities || len(found) == 0 {
		return
	}
	opt, err := exact.Solve(table)
	if err != nil {
		log.Warn("optimum unavailable", zap.Error(err))
		return
	}
	gap := exact.Gap(slices.Min(found), opt.Distance)
	log.Debug("optimum", zap.Float64("distance", opt.Distance), zap.Float64("gap", gap))
	fmt.Fprintf(stdout, "Optimal distance: %s miles (gap %.2f%%)\n", report.FormatDistance(opt.Distance), 100*gap)
}
