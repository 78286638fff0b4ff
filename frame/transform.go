package frame

import (
	"fmt"
	"math"
	"slices"
)

// applyScalar maps a total function over every cell of a copy of f.
func (f *Frame[I]) applyScalar(fn func(float64) float64) *Frame[I] {
	out := f.clone()
	for _, row := range out.data {
		for c, v := range row {
			row[c] = fn(v)
		}
	}
	return out
}

// applyUnary maps a partial function over every cell, failing the whole
// operation on the first cell the function rejects.
func (f *Frame[I]) applyUnary(fn func(float64) (float64, error)) (*Frame[I], error) {
	out := f.clone()
	for _, row := range out.data {
		for c, v := range row {
			mapped, err := fn(v)
			if err != nil {
				return nil, err
			}
			row[c] = mapped
		}
	}
	return out, nil
}

// applyBinary combines two aligned frames cellwise. The operands must have
// identical shape, column sequence, and index sequence, checked in that
// order.
func (f *Frame[I]) applyBinary(other *Frame[I], fn func(a, b float64) (float64, error)) (*Frame[I], error) {
	if f.Rows() != other.Rows() || f.Cols() != other.Cols() {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, f.Rows(), f.Cols(), other.Rows(), other.Cols())
	}
	if !slices.Equal(f.cols, other.cols) {
		return nil, ErrColumnMismatch
	}
	if !slices.Equal(f.index, other.index) {
		return nil, ErrIndexMismatch
	}
	out := f.zeroFilled(f.Rows())
	out.index = slices.Clone(f.index)
	for r := range f.data {
		for c := range f.data[r] {
			v, err := fn(f.data[r][c], other.data[r][c])
			if err != nil {
				return nil, err
			}
			out.data[r][c] = v
		}
	}
	return out, nil
}

// AddScalar adds value to every cell.
func (f *Frame[I]) AddScalar(value float64) *Frame[I] {
	return f.applyScalar(func(v float64) float64 { return v + value })
}

// SubtractScalar subtracts value from every cell.
func (f *Frame[I]) SubtractScalar(value float64) *Frame[I] {
	return f.applyScalar(func(v float64) float64 { return v - value })
}

// MultiplyScalar multiplies every cell by value.
func (f *Frame[I]) MultiplyScalar(value float64) *Frame[I] {
	return f.applyScalar(func(v float64) float64 { return v * value })
}

// DivideScalar divides every cell by value, failing on a zero divisor before
// any cell is touched.
func (f *Frame[I]) DivideScalar(value float64) (*Frame[I], error) {
	if value == 0 {
		return nil, ErrDivisionByZero
	}
	return f.applyScalar(func(v float64) float64 { return v / value }), nil
}

// Add combines two aligned frames cellwise with addition.
func (f *Frame[I]) Add(other *Frame[I]) (*Frame[I], error) {
	return f.applyBinary(other, func(a, b float64) (float64, error) { return a + b, nil })
}

// Subtract combines two aligned frames cellwise with subtraction.
func (f *Frame[I]) Subtract(other *Frame[I]) (*Frame[I], error) {
	return f.applyBinary(other, func(a, b float64) (float64, error) { return a - b, nil })
}

// Multiply combines two aligned frames cellwise with multiplication.
func (f *Frame[I]) Multiply(other *Frame[I]) (*Frame[I], error) {
	return f.applyBinary(other, func(a, b float64) (float64, error) { return a * b, nil })
}

// Divide combines two aligned frames cellwise with division, failing on any
// zero divisor element.
func (f *Frame[I]) Divide(other *Frame[I]) (*Frame[I], error) {
	return f.applyBinary(other, func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, fmt.Errorf("%w: zero divisor element", ErrDivisionByZero)
		}
		return a / b, nil
	})
}

// Log takes the natural log of every cell. NaN propagates; a non-positive
// real cell fails the whole operation so data-quality problems surface
// instead of silently becoming NaN.
func (f *Frame[I]) Log() (*Frame[I], error) {
	return f.applyUnary(func(v float64) (float64, error) {
		if math.IsNaN(v) {
			return math.NaN(), nil
		}
		if !(v > 0) {
			return 0, fmt.Errorf("%w: %v", ErrNonPositiveLog, v)
		}
		return math.Log(v), nil
	})
}

// Exp exponentiates every cell.
func (f *Frame[I]) Exp() *Frame[I] {
	return f.applyScalar(math.Exp)
}

// Power raises every cell to the given exponent.
func (f *Frame[I]) Power(exponent float64) *Frame[I] {
	return f.applyScalar(func(v float64) float64 { return math.Pow(v, exponent) })
}

// PowerInt raises every cell to an integer exponent.
func (f *Frame[I]) PowerInt(exponent int) *Frame[I] {
	e := float64(exponent)
	return f.applyScalar(func(v float64) float64 { return math.Pow(v, e) })
}

// Standardize z-scores each column over its non-missing values using the
// sample standard deviation. Cells in columns with fewer than two
// observations or zero variance become NaN, as do missing cells.
func (f *Frame[I]) Standardize() *Frame[I] {
	out := f.zeroFilled(f.Rows())
	out.index = slices.Clone(f.index)
	if f.Rows() == 0 || f.Cols() == 0 {
		return out
	}

	cols := f.Cols()
	means := make([]float64, cols)
	counts := make([]int, cols)
	for _, row := range f.data {
		for c, v := range row {
			if math.IsNaN(v) {
				continue
			}
			means[c] += v
			counts[c]++
		}
	}
	for c := range means {
		if counts[c] > 0 {
			means[c] /= float64(counts[c])
		} else {
			means[c] = math.NaN()
		}
	}

	sds := make([]float64, cols)
	for c := range sds {
		if counts[c] <= 1 {
			sds[c] = math.NaN()
			continue
		}
		accum := 0.0
		for _, row := range f.data {
			v := row[c]
			if math.IsNaN(v) {
				continue
			}
			d := v - means[c]
			accum += d * d
		}
		variance := accum / float64(counts[c]-1)
		if variance > 0 {
			sds[c] = math.Sqrt(variance)
		} else {
			sds[c] = math.NaN()
		}
	}

	for r, row := range f.data {
		for c, v := range row {
			if math.IsNaN(v) || math.IsNaN(means[c]) || math.IsNaN(sds[c]) || sds[c] == 0 {
				out.data[r][c] = math.NaN()
			} else {
				out.data[r][c] = (v - means[c]) / sds[c]
			}
		}
	}
	return out
}

// Normalize rescales each column to [0, 1] by its non-missing min and max.
// A column with zero spread maps to 0; missing cells and all-NaN columns
// stay NaN.
func (f *Frame[I]) Normalize() *Frame[I] {
	out := f.zeroFilled(f.Rows())
	out.index = slices.Clone(f.index)
	if f.Rows() == 0 || f.Cols() == 0 {
		return out
	}

	cols := f.Cols()
	mins := make([]float64, cols)
	maxs := make([]float64, cols)
	for c := range mins {
		mins[c] = math.Inf(1)
		maxs[c] = math.Inf(-1)
	}
	for _, row := range f.data {
		for c, v := range row {
			if math.IsNaN(v) {
				continue
			}
			mins[c] = math.Min(mins[c], v)
			maxs[c] = math.Max(maxs[c], v)
		}
	}

	for r, row := range f.data {
		for c, v := range row {
			if math.IsNaN(v) || math.IsInf(mins[c], 0) || math.IsInf(maxs[c], 0) {
				out.data[r][c] = math.NaN()
				continue
			}
			spread := maxs[c] - mins[c]
			if spread > 0 {
				out.data[r][c] = (v - mins[c]) / spread
			} else {
				out.data[r][c] = 0
			}
		}
	}
	return out
}
