package frame

import (
	"fmt"
	"math"
	"slices"
)

// Differences returns row-over-row first differences. The output has one
// fewer row than the input and keeps the index values of the later row of
// each pair. At least two input rows are required.
func (f *Frame[I]) Differences() (*Frame[I], error) {
	return f.pairwise(func(prev, curr float64) (float64, error) {
		return curr - prev, nil
	})
}

// LogChanges returns row-over-row log differences ln(curr) - ln(prev),
// failing on any non-positive operand.
func (f *Frame[I]) LogChanges() (*Frame[I], error) {
	return f.pairwise(func(prev, curr float64) (float64, error) {
		if !(prev > 0) || !(curr > 0) {
			return 0, fmt.Errorf("%w: log change of non-positive pair (%v, %v)", ErrNonPositiveLog, prev, curr)
		}
		return math.Log(curr) - math.Log(prev), nil
	})
}

// ProportionalChanges returns row-over-row proportional changes
// (curr-prev)/prev, failing on any zero denominator.
func (f *Frame[I]) ProportionalChanges() (*Frame[I], error) {
	return f.pairwise(func(prev, curr float64) (float64, error) {
		if prev == 0 {
			return 0, fmt.Errorf("%w: zero base value in proportional change", ErrDivisionByZero)
		}
		return (curr - prev) / prev, nil
	})
}

// pairwise derives output row r-1 from input rows r-1 and r.
func (f *Frame[I]) pairwise(fn func(prev, curr float64) (float64, error)) (*Frame[I], error) {
	if f.Rows() < 2 {
		return nil, fmt.Errorf("%w: need at least two rows", ErrInsufficientRows)
	}
	out := f.zeroFilled(f.Rows() - 1)
	out.index = slices.Clone(f.index[1:])
	for r := 1; r < f.Rows(); r++ {
		for c := 0; c < f.Cols(); c++ {
			v, err := fn(f.data[r-1][c], f.data[r][c])
			if err != nil {
				return nil, err
			}
			out.data[r-1][c] = v
		}
	}
	return out, nil
}

// checkWindow validates a rolling window size against the row count.
func (f *Frame[I]) checkWindow(window int) error {
	if window <= 0 {
		return fmt.Errorf("%w: window must be positive", ErrInvalidParameter)
	}
	if window > f.Rows() {
		return fmt.Errorf("%w: window %d exceeds row count %d", ErrInvalidParameter, window, f.Rows())
	}
	return nil
}

// rollingShell prepares the output frame for a window of the given size:
// rows-window+1 rows labeled with the index of each window's last row.
func (f *Frame[I]) rollingShell(window int) *Frame[I] {
	out := f.zeroFilled(f.Rows() - window + 1)
	out.index = slices.Clone(f.index[window-1:])
	return out
}

// RollingMean computes the mean over a sliding window of the given size,
// maintained incrementally. A window position yields a value only when all
// of its cells are non-missing; otherwise the output cell is NaN.
func (f *Frame[I]) RollingMean(window int) (*Frame[I], error) {
	if err := f.checkWindow(window); err != nil {
		return nil, err
	}
	out := f.rollingShell(window)

	cols := f.Cols()
	sums := make([]float64, cols)
	counts := make([]int, cols)
	for r := 0; r < f.Rows(); r++ {
		for c := 0; c < cols; c++ {
			if v := f.data[r][c]; !math.IsNaN(v) {
				sums[c] += v
				counts[c]++
			}
			if r >= window {
				if old := f.data[r-window][c]; !math.IsNaN(old) {
					sums[c] -= old
					counts[c]--
				}
			}
			if r+1 >= window {
				if counts[c] == window {
					out.data[r+1-window][c] = sums[c] / float64(window)
				} else {
					out.data[r+1-window][c] = math.NaN()
				}
			}
		}
	}
	return out, nil
}

// RollingStd computes the sample standard deviation (divisor n-1) over a
// sliding window, maintained via running sums and sums of squares. Small
// negative rounding residues of the variance (within 1e-12) are clamped to
// zero before the square root. A window of size 1 yields 0 wherever the
// single cell is present.
func (f *Frame[I]) RollingStd(window int) (*Frame[I], error) {
	if err := f.checkWindow(window); err != nil {
		return nil, err
	}
	out := f.rollingShell(window)

	cols := f.Cols()
	sums := make([]float64, cols)
	sumsSq := make([]float64, cols)
	counts := make([]int, cols)
	for r := 0; r < f.Rows(); r++ {
		for c := 0; c < cols; c++ {
			if v := f.data[r][c]; !math.IsNaN(v) {
				sums[c] += v
				sumsSq[c] += v * v
				counts[c]++
			}
			if r >= window {
				if old := f.data[r-window][c]; !math.IsNaN(old) {
					sums[c] -= old
					sumsSq[c] -= old * old
					counts[c]--
				}
			}
			if r+1 >= window {
				result := math.NaN()
				if counts[c] == window {
					if window == 1 {
						result = 0
					} else {
						mean := sums[c] / float64(window)
						variance := (sumsSq[c] - sums[c]*mean) / float64(window-1)
						if variance < 0 && variance > -1e-12 {
							variance = 0
						}
						if variance > 0 {
							result = math.Sqrt(variance)
						} else {
							result = 0
						}
					}
				}
				out.data[r+1-window][c] = result
			}
		}
	}
	return out, nil
}

// RollingRMS computes the root mean square over a sliding window, maintained
// via a running sum of squares.
func (f *Frame[I]) RollingRMS(window int) (*Frame[I], error) {
	if err := f.checkWindow(window); err != nil {
		return nil, err
	}
	out := f.rollingShell(window)
	if f.Cols() == 0 {
		return out, nil
	}

	cols := f.Cols()
	sumsSq := make([]float64, cols)
	counts := make([]int, cols)
	for r := 0; r < f.Rows(); r++ {
		for c := 0; c < cols; c++ {
			if v := f.data[r][c]; !math.IsNaN(v) {
				sumsSq[c] += v * v
				counts[c]++
			}
			if r >= window {
				if old := f.data[r-window][c]; !math.IsNaN(old) {
					sumsSq[c] -= old * old
					counts[c]--
				}
			}
			if r+1 >= window {
				if counts[c] == window {
					out.data[r+1-window][c] = math.Sqrt(sumsSq[c] / float64(window))
				} else {
					out.data[r+1-window][c] = math.NaN()
				}
			}
		}
	}
	return out, nil
}

// EMA computes the exponential moving average of each column with smoothing
// factor alpha in (0, 1). The average seeds on the first non-missing value;
// a missing value emits NaN for its row and leaves the running average
// untouched for the next observation.
func (f *Frame[I]) EMA(alpha float64) (*Frame[I], error) {
	if !(alpha > 0) || !(alpha < 1) {
		return nil, fmt.Errorf("%w: alpha must be in (0, 1)", ErrInvalidParameter)
	}
	out := f.zeroFilled(f.Rows())
	out.index = slices.Clone(f.index)
	for c := 0; c < f.Cols(); c++ {
		ema := math.NaN()
		seeded := false
		for r := 0; r < f.Rows(); r++ {
			v := f.data[r][c]
			if math.IsNaN(v) {
				out.data[r][c] = math.NaN()
				continue
			}
			if !seeded {
				ema = v
				seeded = true
			} else {
				ema = alpha*v + (1-alpha)*ema
			}
			out.data[r][c] = ema
		}
	}
	return out, nil
}
