// Package stats provides slice-level statistics used by the frame engine.
//
// The functions here operate on plain []float64 values. Missing values are
// the caller's concern: frame filters NaN cells before calling in, and the
// moment functions return NaN below their minimum sample sizes rather than
// guessing.
//
// # Summary Statistics
//
// Compute the full summary in one pass:
//
//	s := stats.Summary(values)
//	fmt.Println(s.N, s.Mean, s.SD, s.Skew, s.ExKurtosis, s.Min, s.Max)
//
// Individual moments are available directly:
//
//	m := stats.Mean(values)
//	sd := stats.Stdev(values)         // sample sd, divisor n-1; NaN if n <= 1
//	sk := stats.Skew(values)          // population third moment; NaN if n <= 2
//	k := stats.ExcessKurtosis(values) // NaN if n <= 3
//
// # Autocorrelation
//
// Sample autocorrelations for lags 1..k, mean-centered and normalized by the
// total sum of squared deviations:
//
//	acf := stats.Autocorrelations(returns, 10)
//
// # AR(1) Simulation
//
// Simulate an autoregressive process with burn-in:
//
//	xs, err := stats.SimulateAR1(1000, 0.8, 1.0, 0.0, 200, 42)
//
// A seed of 0 draws the seed from entropy; any other seed makes the output
// deterministic.
package stats
