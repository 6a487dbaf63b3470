// Package config loads the command-line tool's configuration: the city set,
// solver parameters, sweep grid and output paths. Files are TOML or YAML,
// chosen by extension; every field falls back to Default().
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gatsp/distance"
	"github.com/katalvlaran/gatsp/experiment"
	"github.com/katalvlaran/gatsp/ga"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnsupportedFormat is returned for extensions other than .toml, .yaml, .yml.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
)

// Config is the full tool configuration.
type Config struct {
	Cities []City `toml:"cities" yaml:"cities"`
	GA     GA     `toml:"ga" yaml:"ga"`
	Sweep  Sweep  `toml:"sweep" yaml:"sweep"`
	Output Output `toml:"output" yaml:"output"`
}

// City is one named point; the first city is the tour anchor.
type City struct {
	ID string  `toml:"id" yaml:"id"`
	X  float64 `toml:"x" yaml:"x"`
	Y  float64 `toml:"y" yaml:"y"`
}

// GA holds the single-run solver parameters.
type GA struct {
	PopulationSize int     `toml:"population_size" yaml:"population_size"`
	MutationRate   float64 `toml:"mutation_rate" yaml:"mutation_rate"`
	Generations    int     `toml:"generations" yaml:"generations"`
	TournamentK    int     `toml:"tournament_k" yaml:"tournament_k"`
	Seed           int64   `toml:"seed" yaml:"seed"` // 0 = seed from the clock
}

// Sweep describes an experiment grid.
type Sweep struct {
	Repeats int     `toml:"repeats" yaml:"repeats"`
	Workers int     `toml:"workers" yaml:"workers"`
	Trials  []Trial `toml:"trials" yaml:"trials"`
}

// Trial is one sweep row.
type Trial struct {
	MutationRate   float64 `toml:"mutation_rate" yaml:"mutation_rate"`
	PopulationSize int     `toml:"population_size" yaml:"population_size"`
	Generations    int     `toml:"generations" yaml:"generations"`
	TournamentK    int     `toml:"tournament_k" yaml:"tournament_k"`
}

// Output names the result files.
type Output struct {
	Text string `toml:"text" yaml:"text"`
	CSV  string `toml:"csv" yaml:"csv"`
}

// Default returns the stock configuration: the ten-city map A..J,
// population 50, mutation rate 0.1, 100 generations, the five-row sweep,
// and the tsp_results.txt / tsp_experiment_results.csv outputs.
func Default() Config {
	trials := experiment.DefaultTrials()
	rows := make([]Trial, len(trials))
	for i, t := range trials {
		rows[i] = Trial{
			MutationRate:   t.Params.MutationRate,
			PopulationSize: t.Params.PopulationSize,
			Generations:    t.Params.Generations,
			TournamentK:    t.Params.TournamentK,
		}
	}

	return Config{
		Cities: []City{
			{"A", 100, 300},
			{"B", 200, 130},
			{"C", 300, 500},
			{"D", 500, 390},
			{"E", 700, 300},
			{"F", 900, 600},
			{"G", 800, 950},
			{"H", 600, 560},
			{"I", 350, 550},
			{"J", 270, 350},
		},
		GA: GA{
			PopulationSize: 50,
			MutationRate:   ga.DefaultMutationRate,
			Generations:    ga.DefaultGenerations,
			TournamentK:    ga.DefaultTournamentK,
		},
		Sweep: Sweep{Repeats: 1, Trials: rows},
		Output: Output{
			Text: "tsp_results.txt",
			CSV:  "tsp_experiment_results.csv",
		},
	}
}

// Load reads path over Default() and validates the result. Scalars absent
// from the file keep their defaults; the city and trial lists are replaced
// as a whole when present.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	cfg.Cities, cfg.Sweep.Trials = nil, nil

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err = toml.Decode(string(data), &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}

	def := Default()
	if len(cfg.Cities) == 0 {
		cfg.Cities = def.Cities
	}
	if len(cfg.Sweep.Trials) == 0 {
		cfg.Sweep.Trials = def.Sweep.Trials
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the city set, the single-run parameters and every trial.
func (c Config) Validate() error {
	if _, err := c.Table(); err != nil {
		return fmt.Errorf("%w: cities: %v", ErrInvalidConfig, err)
	}
	if len(c.Cities) < 2 {
		return fmt.Errorf("%w: need at least 2 cities, have %d", ErrInvalidConfig, len(c.Cities))
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: ga: %v", ErrInvalidConfig, err)
	}
	for i, t := range c.Trials() {
		if err := t.Params.Validate(); err != nil {
			return fmt.Errorf("%w: sweep trial %d: %v", ErrInvalidConfig, i, err)
		}
	}
	if c.Sweep.Repeats < 0 || c.Sweep.Workers < 0 {
		return fmt.Errorf("%w: sweep repeats and workers must be non-negative", ErrInvalidConfig)
	}
	return nil
}

// Table builds the distance table for the configured cities.
func (c Config) Table() (*distance.Table, error) {
	cities := make([]distance.City, len(c.Cities))
	for i, city := range c.Cities {
		cities[i] = distance.City{ID: city.ID, X: city.X, Y: city.Y}
	}
	return distance.New(cities)
}

// Params returns the single-run solver parameters.
func (c Config) Params() ga.Params {
	return ga.Params{
		PopulationSize: c.GA.PopulationSize,
		MutationRate:   c.GA.MutationRate,
		Generations:    c.GA.Generations,
		TournamentK:    c.GA.TournamentK,
	}
}

// Trials returns the sweep grid with the configured repeat count.
func (c Config) Trials() []experiment.Trial {
	out := make([]experiment.Trial, len(c.Sweep.Trials))
	for i, t := range c.Sweep.Trials {
		out[i] = experiment.Trial{
			Params: ga.Params{
				PopulationSize: t.PopulationSize,
				MutationRate:   t.MutationRate,
				Generations:    t.Generations,
				TournamentK:    t.TournamentK,
			},
			Repeats: c.Sweep.Repeats,
		}
	}
	return out
}
