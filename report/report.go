package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/gatsp/experiment"
	"github.com/katalvlaran/gatsp/ga"
)

// ErrNoTour is returned when a result holds no tour to report.
var ErrNoTour = errors.New("report: result has no tour")

// tourSep joins city identifiers in the tour notation.
const tourSep = " -> "

// distanceFormat is the humanize pattern for distances: thousands separator,
// two decimals.
const distanceFormat = "#,###.##"

// CSVHeader is the header row written by WriteCSV.
var CSVHeader = []string{
	"Mutation Rate", "Population Size", "Generations", "Best Distance", "Best Tour",
	"Runs", "Mean Distance", "StdDev Distance", "Median Distance", "Worst Distance",
}

// FormatTour joins ids as "A -> B -> C -> A".
func FormatTour(ids []string) string {
	return strings.Join(ids, tourSep)
}

// FormatDistance renders d with a thousands separator and two decimals.
func FormatDistance(d float64) string {
	return humanize.FormatFloat(distanceFormat, d)
}

// WriteSummary writes the two-line result block:
//
//	Shortest distance: 2,345.67 miles
//	Sequence: A -> ... -> A
func WriteSummary(w io.Writer, res ga.Result) error {
	if !res.Found() {
		return ErrNoTour
	}
	_, err := fmt.Fprintf(w, "Shortest distance: %s miles\nSequence: %s\n",
		FormatDistance(res.Distance), FormatTour(res.Tour))
	return err
}

// WriteCSV writes CSVHeader followed by one row per outcome.
func WriteCSV(w io.Writer, outcomes []experiment.Outcome) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, o := range outcomes {
		if !o.Best.Found() {
			return ErrNoTour
		}
		p := o.Trial.Params
		row := []string{
			strconv.FormatFloat(p.MutationRate, 'g', -1, 64),
			strconv.Itoa(p.PopulationSize),
			strconv.Itoa(p.Generations),
			fixed2(o.Best.Distance),
			FormatTour(o.Best.Tour),
			strconv.Itoa(o.Summary.Runs),
			fixed2(o.Summary.Mean),
			fixed2(o.Summary.StdDev),
			fixed2(o.Summary.Median),
			fixed2(o.Summary.Max),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveFile creates (or truncates) path and streams write into it.
func SaveFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("report: close %s: %w", path, cerr)
		}
	}()

	if err = write(f); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return nil
}

func fixed2(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
