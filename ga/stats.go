package ga

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// summarize builds the population part of GenerationStats from fit.
// len(fit) must be > 0.
func summarize(generation int, fit []float64) GenerationStats {
	st := GenerationStats{
		Generation: generation,
		Best:       floats.Min(fit),
		Worst:      floats.Max(fit),
	}
	if len(fit) == 1 {
		st.Mean = fit[0]
		return st
	}
	st.Mean, st.StdDev = stat.MeanStdDev(fit, nil)
	return st
}
