// Package goframe provides an in-memory labeled tabular data engine.
//
// GoFrame is a Go package for working with matrices of float64 values
// addressed by an ordered, typed row index and an ordered set of named
// columns. It supports elementwise transforms, statistical aggregation,
// rolling-window analytics, resampling, and text/binary serialization.
//
// # Features
//
//   - Generic Frame type indexed by int, int64, float64, string, or
//     calendar dates and date-times
//   - CSV and binary codecs with exact round-trip semantics
//   - Elementwise scalar, unary, and aligned binary arithmetic
//   - Row/column selection by position, value, and ordered range
//   - Stable sorting with explicit NaN placement
//   - Summary statistics, Pearson/Spearman/Kendall correlation,
//     covariance, and percentile matrices
//   - Rolling mean/std/RMS, exponential moving average, differences,
//     log and proportional changes
//   - Bootstrap resampling and correlated synthetic data generation
//
// # Quick Start
//
// Load a frame from CSV and compute daily returns:
//
//	f, err := frame.ReadCSV[calendar.Date](input, true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	returns, _ := f.ProportionalChanges()
//	summary := returns.ColumnStats()
//
// Generate correlated synthetic data:
//
//	f, err := frame.RandomNormal[int](1000, []string{"a", "b", "c"},
//	    &frame.NormalOptions{Stddev: 1, Seed: 42, TargetCorr: 0.6})
//
// # Packages
//
// The library is organized into the following packages:
//
//   - frame: the Frame data structure and all table operations
//   - stats: slice-level statistics, autocorrelation, AR(1) simulation
//   - calendar: Date and DateTime index value types
//   - render: console pretty-printing for frames
//   - samples: loaders for the bundled sample CSV layouts
package goframe
