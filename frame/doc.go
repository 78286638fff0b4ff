// Package frame implements a labeled in-memory table of float64 values.
//
// A Frame pairs a row-major float64 matrix with an ordered, typed row index
// and an ordered list of named columns. The index type is a generic
// parameter restricted at runtime to int, int64, float64, string,
// calendar.Date, and calendar.DateTime. Missing values are represented by
// NaN and every operation documents how it treats them.
//
// # Basic Usage
//
// Build a frame and inspect it:
//
//	f, err := frame.New(
//	    []calendar.Date{{2024, 1, 2}, {2024, 1, 3}},
//	    []string{"open", "close"},
//	    [][]float64{{187.15, 185.64}, {184.22, 184.25}},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(f.Shape()) // 2 2
//
// # Transforms and Analytics
//
// Transforms return new frames and never mutate the receiver:
//
//	returns, err := f.ProportionalChanges()
//	vol, err := returns.RollingStd(20)
//	z := f.Standardize()
//
// Aggregations reduce a frame to a string-indexed result frame:
//
//	stats := f.ColumnStats()
//	corr, err := f.CorrelationMatrix()
//	pct, err := f.Percentiles([]float64{5, 50, 95})
//
// # Serialization
//
// Frames round-trip through a minimal CSV dialect and a fixed binary
// layout:
//
//	err = f.WriteCSVFile("prices.csv", nil)
//	g, err := frame.ReadCSVFile[calendar.Date]("prices.csv", true)
//
//	err = f.WriteBinaryFile("prices.bin")
//	g, err = frame.ReadBinaryFile[calendar.Date]("prices.bin")
//
// The CSV dialect does not quote or escape embedded commas.
//
// # Synthetic Data
//
// RandomNormal and RandomUniform generate frames for testing and
// simulation, and ResampleRows draws bootstrap samples:
//
//	f, err := frame.RandomNormal[int](1000, []string{"a", "b"},
//	    &frame.NormalOptions{Stddev: 1, Seed: 7, TargetCorr: 0.5})
//	boot, err := f.ResampleRows(0, true, 11)
package frame
