package frame

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/sartorproj/goframe/stats"
)

// statLabels is the row order of ColumnStats output.
var statLabels = []string{"n", "median", "mean", "sd", "skew", "ex_kurtosis", "min", "max"}

// stringFrame builds a string-indexed result frame with the given axis
// label, index, and columns, zero-filled.
func stringFrame(indexName string, index, columns []string) *Frame[string] {
	out := &Frame[string]{
		cols:      append([]string(nil), columns...),
		index:     append([]string(nil), index...),
		indexName: indexName,
		data:      make([][]float64, len(index)),
	}
	for r := range out.data {
		out.data[r] = make([]float64, len(columns))
	}
	return out
}

// columnValues collects the non-missing values of column c.
func (f *Frame[I]) columnValues(c int) []float64 {
	values := make([]float64, 0, f.Rows())
	for r := range f.data {
		if v := f.data[r][c]; !math.IsNaN(v) {
			values = append(values, v)
		}
	}
	return values
}

// completeRows returns the positions of rows with no missing cell in any
// column. Pearson correlation and covariance are computed over exactly
// these rows.
func (f *Frame[I]) completeRows() []int {
	positions := make([]int, 0, f.Rows())
	for r, row := range f.data {
		complete := true
		for _, v := range row {
			if math.IsNaN(v) {
				complete = false
				break
			}
		}
		if complete {
			positions = append(positions, r)
		}
	}
	return positions
}

// ColumnStats summarizes each column over its non-missing values. The
// result is a string-indexed frame with one row per statistic, in the order
// n, median, mean, sd, skew, ex_kurtosis, min, max.
func (f *Frame[I]) ColumnStats() *Frame[string] {
	out := stringFrame("statistic", statLabels, f.cols)
	for c := range f.cols {
		values := f.columnValues(c)
		s := stats.Summary(values)
		out.data[0][c] = float64(s.N)
		out.data[1][c] = stats.Median(values)
		out.data[2][c] = s.Mean
		out.data[3][c] = s.SD
		out.data[4][c] = s.Skew
		out.data[5][c] = s.ExKurtosis
		out.data[6][c] = s.Min
		out.data[7][c] = s.Max
	}
	return out
}

// momentsOverRows computes per-column means and sample standard deviations
// over the given row positions. A degenerate column gets sd 0.
func (f *Frame[I]) momentsOverRows(positions []int) (means, sds []float64) {
	cols := f.Cols()
	means = make([]float64, cols)
	for c := 0; c < cols; c++ {
		for _, r := range positions {
			means[c] += f.data[r][c]
		}
		means[c] /= float64(len(positions))
	}
	sds = make([]float64, cols)
	for c := 0; c < cols; c++ {
		accum := 0.0
		for _, r := range positions {
			d := f.data[r][c] - means[c]
			accum += d * d
		}
		variance := accum / float64(len(positions)-1)
		if variance > 0 {
			sds[c] = math.Sqrt(variance)
		}
	}
	return means, sds
}

// CorrelationMatrix computes the Pearson correlation of every column pair
// over the rows that are complete across all columns. At least two complete
// rows are required. The diagonal is exactly 1; a degenerate (zero sd)
// column yields NaN against every other column.
func (f *Frame[I]) CorrelationMatrix() (*Frame[string], error) {
	if f.Cols() == 0 {
		return nil, ErrNoColumns
	}
	if f.Rows() < 2 {
		return nil, fmt.Errorf("%w: need at least two rows", ErrInsufficientRows)
	}
	complete := f.completeRows()
	if len(complete) < 2 {
		return nil, fmt.Errorf("%w: need at least two rows without missing values", ErrInsufficientRows)
	}

	out := stringFrame("column", f.cols, f.cols)
	means, sds := f.momentsOverRows(complete)

	for i := range f.cols {
		for j := range f.cols {
			if i == j {
				out.data[i][j] = 1
				continue
			}
			accum := 0.0
			for _, r := range complete {
				accum += (f.data[r][i] - means[i]) * (f.data[r][j] - means[j])
			}
			cov := accum / float64(len(complete)-1)
			if sds[i] <= 0 || sds[j] <= 0 {
				out.data[i][j] = math.NaN()
			} else {
				out.data[i][j] = cov / (sds[i] * sds[j])
			}
		}
	}
	return out, nil
}

// CovarianceMatrix computes the sample covariance of every column pair over
// the rows that are complete across all columns.
func (f *Frame[I]) CovarianceMatrix() (*Frame[string], error) {
	if f.Cols() == 0 {
		return nil, ErrNoColumns
	}
	if f.Rows() < 2 {
		return nil, fmt.Errorf("%w: need at least two rows", ErrInsufficientRows)
	}
	complete := f.completeRows()
	if len(complete) < 2 {
		return nil, fmt.Errorf("%w: need at least two rows without missing values", ErrInsufficientRows)
	}

	out := stringFrame("column", f.cols, f.cols)
	means, _ := f.momentsOverRows(complete)

	for i := range f.cols {
		for j := range f.cols {
			accum := 0.0
			for _, r := range complete {
				accum += (f.data[r][i] - means[i]) * (f.data[r][j] - means[j])
			}
			out.data[i][j] = accum / float64(len(complete)-1)
		}
	}
	return out, nil
}

// SpearmanMatrix computes the rank correlation of every column pair: each
// column's non-missing values are replaced by their 1-based ranks (ties get
// the mean of the ranks they occupy), then the ranked frame goes through
// Pearson correlation. Every column needs at least two non-missing values.
func (f *Frame[I]) SpearmanMatrix() (*Frame[string], error) {
	if f.Cols() == 0 {
		return nil, ErrNoColumns
	}
	if f.Rows() < 2 {
		return nil, fmt.Errorf("%w: need at least two rows", ErrInsufficientRows)
	}

	ranked := f.clone()
	for c := range f.cols {
		type valueRow struct {
			value float64
			row   int
		}
		values := make([]valueRow, 0, f.Rows())
		for r := range f.data {
			if v := f.data[r][c]; !math.IsNaN(v) {
				values = append(values, valueRow{v, r})
			}
		}
		if len(values) < 2 {
			return nil, fmt.Errorf("%w: column %q has fewer than two observations", ErrInsufficientRows, f.cols[c])
		}
		sort.SliceStable(values, func(a, b int) bool {
			return values[a].value < values[b].value
		})
		// Tied runs share the mean of the ranks they jointly occupy.
		i := 0
		for i < len(values) {
			j := i
			rankSum := 0.0
			for j < len(values) && values[j].value == values[i].value {
				rankSum += float64(j + 1)
				j++
			}
			avgRank := rankSum / float64(j-i)
			for k := i; k < j; k++ {
				ranked.data[values[k].row][c] = avgRank
			}
			i = j
		}
	}
	return ranked.CorrelationMatrix()
}

// KendallTauMatrix computes Kendall's tau for every column pair over the
// rows where both values are present, counting concordant and discordant
// row pairs and ignoring pairs tied in either dimension:
//
//	tau = (concordant - discordant) / (concordant + discordant)
//
// Fewer than two usable rows, or zero informative pairs, yields NaN for that
// cell. The diagonal is exactly 1.
func (f *Frame[I]) KendallTauMatrix() (*Frame[string], error) {
	if f.Cols() == 0 {
		return nil, ErrNoColumns
	}
	if f.Rows() < 2 {
		return nil, fmt.Errorf("%w: need at least two rows", ErrInsufficientRows)
	}

	out := stringFrame("column", f.cols, f.cols)
	for i := range f.cols {
		out.data[i][i] = 1
		for j := i + 1; j < len(f.cols); j++ {
			type pair struct{ x, y float64 }
			pairs := make([]pair, 0, f.Rows())
			for r := range f.data {
				xi, xj := f.data[r][i], f.data[r][j]
				if !math.IsNaN(xi) && !math.IsNaN(xj) {
					pairs = append(pairs, pair{xi, xj})
				}
			}
			if len(pairs) < 2 {
				out.data[i][j] = math.NaN()
				out.data[j][i] = math.NaN()
				continue
			}
			var concordant, discordant int64
			for a := 0; a < len(pairs); a++ {
				for b := a + 1; b < len(pairs); b++ {
					dx := pairs[a].x - pairs[b].x
					dy := pairs[a].y - pairs[b].y
					if dx == 0 || dy == 0 {
						continue
					}
					if (dx > 0) == (dy > 0) {
						concordant++
					} else {
						discordant++
					}
				}
			}
			total := concordant + discordant
			if total == 0 {
				out.data[i][j] = math.NaN()
				out.data[j][i] = math.NaN()
			} else {
				tau := float64(concordant-discordant) / float64(total)
				out.data[i][j] = tau
				out.data[j][i] = tau
			}
		}
	}
	return out, nil
}

// Percentiles computes the requested percentiles (in [0, 100]) of each
// column over its non-missing values, linearly interpolating between order
// statistics. Percentile 0 is the column minimum and 100 the maximum; an
// empty column yields NaN for every requested percentile. The result is
// indexed by the percentile labels.
func (f *Frame[I]) Percentiles(percentiles []float64) (*Frame[string], error) {
	if f.Cols() == 0 {
		return nil, ErrNoColumns
	}
	if len(percentiles) == 0 {
		return nil, fmt.Errorf("%w: no percentiles requested", ErrInvalidParameter)
	}
	for _, p := range percentiles {
		if p < 0 || p > 100 || math.IsNaN(p) {
			return nil, fmt.Errorf("%w: percentile %v outside [0, 100]", ErrInvalidParameter, p)
		}
	}

	labels := make([]string, len(percentiles))
	for i, p := range percentiles {
		labels[i] = strconv.FormatFloat(p, 'g', -1, 64)
	}
	out := stringFrame("percentile", labels, f.cols)

	for c := range f.cols {
		values := f.columnValues(c)
		if len(values) == 0 {
			for p := range percentiles {
				out.data[p][c] = math.NaN()
			}
			continue
		}
		sort.Float64s(values)
		for p, percentile := range percentiles {
			switch {
			case percentile <= 0:
				out.data[p][c] = values[0]
			case percentile >= 100:
				out.data[p][c] = values[len(values)-1]
			default:
				rank := percentile / 100 * float64(len(values)-1)
				lower := int(math.Floor(rank))
				upper := int(math.Ceil(rank))
				fraction := rank - float64(lower)
				out.data[p][c] = values[lower] + fraction*(values[upper]-values[lower])
			}
		}
	}
	return out, nil
}
