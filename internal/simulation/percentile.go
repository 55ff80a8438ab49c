package simulation

import (
	"math"
	"slices"
)

// Bands holds per-day percentile series across simulated paths.
type Bands struct {
	P5  []float64
	P25 []float64
	P50 []float64
	P75 []float64
	P95 []float64
}

// Percentile returns the p-th percentile (0..100) of sorted using linear
// interpolation between closest ranks. sorted must be ascending and non-empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// PercentileBands computes the 5/25/50/75/95 percentiles of every day index.
// All paths must have equal length.
func PercentileBands(paths [][]float64) Bands {
	if len(paths) == 0 {
		return Bands{}
	}
	days := len(paths[0])
	b := Bands{
		P5:  make([]float64, days),
		P25: make([]float64, days),
		P50: make([]float64, days),
		P75: make([]float64, days),
		P95: make([]float64, days),
	}

	column := make([]float64, len(paths))
	for d := 0; d < days; d++ {
		for i, path := range paths {
			column[i] = path[d]
		}
		slices.Sort(column)
		b.P5[d] = Percentile(column, 5)
		b.P25[d] = Percentile(column, 25)
		b.P50[d] = Percentile(column, 50)
		b.P75[d] = Percentile(column, 75)
		b.P95[d] = Percentile(column, 95)
	}
	return b
}
