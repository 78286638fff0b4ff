package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// SummaryStats holds basic summary statistics for a sample.
//
// N counts the values the summary was computed over. Mean, SD, Skew, and
// ExKurtosis are NaN below their minimum sample sizes (0, 1, 2, and 3
// observations respectively). SD is the sample standard deviation (divisor
// n-1); Skew and ExKurtosis use population central moments.
type SummaryStats struct {
	N          int
	Mean       float64
	SD         float64
	Skew       float64
	ExKurtosis float64
	Min        float64
	Max        float64
}

// Mean returns the arithmetic mean of x, or NaN for an empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return floats.Sum(x) / float64(len(x))
}

// Stdev returns the sample standard deviation of x (divisor n-1), or NaN
// when fewer than two values are present.
func Stdev(x []float64) float64 {
	n := len(x)
	if n <= 1 {
		return math.NaN()
	}
	m := Mean(x)
	ss := 0.0
	for _, v := range x {
		d := v - m
		ss += d * d
	}
	v := ss / float64(n-1)
	if !(v >= 0) {
		return math.NaN()
	}
	return math.Sqrt(v)
}

// Skew returns the population-moment skewness m3 / m2^1.5, or NaN when fewer
// than three values are present or the variance is zero.
func Skew(x []float64) float64 {
	n := len(x)
	if n <= 2 {
		return math.NaN()
	}
	m := Mean(x)
	var m2, m3 float64
	for _, v := range x {
		d := v - m
		d2 := d * d
		m2 += d2
		m3 += d2 * d
	}
	m2 /= float64(n)
	m3 /= float64(n)
	if !(m2 > 0) {
		return math.NaN()
	}
	return m3 / math.Pow(m2, 1.5)
}

// ExcessKurtosis returns the population-moment excess kurtosis m4/m2^2 - 3,
// or NaN when fewer than four values are present or the variance is zero.
func ExcessKurtosis(x []float64) float64 {
	n := len(x)
	if n <= 3 {
		return math.NaN()
	}
	m := Mean(x)
	var m2, m4 float64
	for _, v := range x {
		d := v - m
		d2 := d * d
		m2 += d2
		m4 += d2 * d2
	}
	m2 /= float64(n)
	m4 /= float64(n)
	if !(m2 > 0) {
		return math.NaN()
	}
	return m4/(m2*m2) - 3.0
}

// Median returns the median of x (the average of the two central order
// statistics when the count is even), or NaN for an empty slice. The input
// is not modified.
func Median(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return 0.5 * (sorted[mid-1] + sorted[mid])
	}
	return sorted[mid]
}

// Summary computes N, mean, sample sd, skewness, excess kurtosis, min, and
// max over the non-NaN values in x. Every statistic is NaN when no values
// survive filtering.
func Summary(x []float64) SummaryStats {
	filtered := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			filtered = append(filtered, v)
		}
	}
	s := SummaryStats{N: len(filtered)}
	if s.N == 0 {
		nan := math.NaN()
		s.Mean, s.SD, s.Skew, s.ExKurtosis, s.Min, s.Max = nan, nan, nan, nan, nan, nan
		return s
	}
	s.Mean = Mean(filtered)
	s.SD = Stdev(filtered)
	s.Skew = Skew(filtered)
	s.ExKurtosis = ExcessKurtosis(filtered)
	s.Min = floats.Min(filtered)
	s.Max = floats.Max(filtered)
	return s
}

// StandardizeReturns returns elementwise returns[i]/condSD[i]. Positions
// where condSD is nonpositive or non-finite take fill instead. The two
// slices must have equal length.
func StandardizeReturns(returns, condSD []float64, fill float64) ([]float64, error) {
	if len(condSD) != len(returns) {
		return nil, errSizeMismatch
	}
	out := make([]float64, len(returns))
	for i, r := range returns {
		s := condSD[i]
		if s > 0 && !math.IsInf(s, 0) && !math.IsNaN(s) {
			out[i] = r / s
		} else {
			out[i] = fill
		}
	}
	return out, nil
}
