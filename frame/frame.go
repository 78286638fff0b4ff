package frame

import (
	"fmt"
	"math"
	"slices"
)

// DefaultIndexName labels the index axis of frames that were built without
// an explicit label.
const DefaultIndexName = "index"

// Frame is an in-memory table of float64 cells addressed by an ordered,
// typed row index and an ordered set of named columns. NaN cells mean
// "missing". A Frame exclusively owns its columns, index, and cells; every
// operation returns a new Frame except AddColumn, the single in-place
// mutator.
type Frame[I comparable] struct {
	cols      []string
	index     []I
	data      [][]float64
	indexName string
}

// New constructs a Frame from parallel vectors. The column set must be
// non-empty with no empty names, the index must have one value per data row,
// and every row must have one cell per column. All inputs are copied.
func New[I comparable](index []I, columns []string, data [][]float64) (*Frame[I], error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	for _, name := range columns {
		if name == "" {
			return nil, ErrEmptyColumnName
		}
	}
	if len(index) != len(data) {
		return nil, fmt.Errorf("%w: %d index values for %d rows", ErrLengthMismatch, len(index), len(data))
	}
	f := &Frame[I]{
		cols:      slices.Clone(columns),
		index:     slices.Clone(index),
		data:      make([][]float64, 0, len(data)),
		indexName: DefaultIndexName,
	}
	for _, row := range data {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row has %d cells for %d columns", ErrLengthMismatch, len(row), len(columns))
		}
		f.data = append(f.data, slices.Clone(row))
	}
	return f, nil
}

// emptyLike returns a new frame sharing f's column names and index label but
// holding no rows. Used internally by operations that rebuild the row set.
func (f *Frame[I]) emptyLike() *Frame[I] {
	return &Frame[I]{
		cols:      slices.Clone(f.cols),
		indexName: f.indexName,
	}
}

// zeroFilled returns a new frame with f's columns and index label and a
// rows x len(cols) matrix of zeros, with the index left for the caller.
func (f *Frame[I]) zeroFilled(rows int) *Frame[I] {
	out := f.emptyLike()
	out.data = make([][]float64, rows)
	for r := range out.data {
		out.data[r] = make([]float64, len(f.cols))
	}
	return out
}

// Rows returns the number of rows.
func (f *Frame[I]) Rows() int { return len(f.data) }

// Cols returns the number of columns.
func (f *Frame[I]) Cols() int { return len(f.cols) }

// Shape returns {rows, cols}.
func (f *Frame[I]) Shape() [2]int { return [2]int{f.Rows(), f.Cols()} }

// Columns returns a copy of the ordered column names.
func (f *Frame[I]) Columns() []string { return slices.Clone(f.cols) }

// Index returns a copy of the ordered index values.
func (f *Frame[I]) Index() []I { return slices.Clone(f.index) }

// IndexName returns the display label of the index axis.
func (f *Frame[I]) IndexName() string { return f.indexName }

// SetIndexName sets the display label of the index axis.
func (f *Frame[I]) SetIndexName(name string) { f.indexName = name }

// Value returns the cell at row r, column c, failing on out-of-range
// positions.
func (f *Frame[I]) Value(r, c int) (float64, error) {
	if r < 0 || r >= f.Rows() || c < 0 || c >= f.Cols() {
		return 0, fmt.Errorf("%w: cell (%d, %d) in %dx%d frame", ErrOutOfRange, r, c, f.Rows(), f.Cols())
	}
	return f.data[r][c], nil
}

// Column returns a copy of the named column's cells.
func (f *Frame[I]) Column(name string) ([]float64, error) {
	c, err := f.findColumn(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, f.Rows())
	for r := range f.data {
		out[r] = f.data[r][c]
	}
	return out, nil
}

// Row returns a copy of the cells of the first row labeled with value.
func (f *Frame[I]) Row(value I) ([]float64, error) {
	r, err := f.findRow(value)
	if err != nil {
		return nil, err
	}
	return slices.Clone(f.data[r]), nil
}

// AddColumn appends a column in place. This is the only mutating operation
// on a Frame. The name must be new, and values must match the current row
// count exactly; a frame with no rows accepts only an empty value slice.
func (f *Frame[I]) AddColumn(name string, values []float64) error {
	if name == "" {
		return ErrEmptyColumnName
	}
	if slices.Contains(f.cols, name) {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
	}
	if f.Rows() == 0 {
		if len(values) != 0 {
			return fmt.Errorf("%w: cannot add %d values to a frame with no rows", ErrLengthMismatch, len(values))
		}
		f.cols = append(f.cols, name)
		return nil
	}
	if len(values) != f.Rows() {
		return fmt.Errorf("%w: %d values for %d rows", ErrLengthMismatch, len(values), f.Rows())
	}
	f.cols = append(f.cols, name)
	for r := range f.data {
		f.data[r] = append(f.data[r], values[r])
	}
	return nil
}

// RowMajor copies the cell matrix into out in row-major order. rowStride of
// 0 means tightly packed; a stride smaller than the column count fails. out
// must hold rows*stride values.
func (f *Frame[I]) RowMajor(out []float64, rowStride int) error {
	rows, cols := f.Rows(), f.Cols()
	if rows == 0 || cols == 0 {
		return nil
	}
	stride := rowStride
	if stride == 0 {
		stride = cols
	}
	if stride < cols {
		return fmt.Errorf("%w: row stride %d smaller than column count %d", ErrInvalidParameter, stride, cols)
	}
	if len(out) < rows*stride {
		return fmt.Errorf("%w: output holds %d values, need %d", ErrLengthMismatch, len(out), rows*stride)
	}
	for r := 0; r < rows; r++ {
		copy(out[r*stride:r*stride+cols], f.data[r])
	}
	return nil
}

// ColumnMajor copies the cell matrix into out in column-major order.
// columnStride of 0 means tightly packed; a stride smaller than the row
// count fails. out must hold cols*stride values.
func (f *Frame[I]) ColumnMajor(out []float64, columnStride int) error {
	rows, cols := f.Rows(), f.Cols()
	if rows == 0 || cols == 0 {
		return nil
	}
	stride := columnStride
	if stride == 0 {
		stride = rows
	}
	if stride < rows {
		return fmt.Errorf("%w: column stride %d smaller than row count %d", ErrInvalidParameter, stride, rows)
	}
	if len(out) < cols*stride {
		return fmt.Errorf("%w: output holds %d values, need %d", ErrLengthMismatch, len(out), cols*stride)
	}
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			out[c*stride+r] = f.data[r][c]
		}
	}
	return nil
}

// DropNaNRows returns a frame keeping only rows with no missing cells.
func (f *Frame[I]) DropNaNRows() *Frame[I] {
	keep := make([]int, 0, f.Rows())
	for r, row := range f.data {
		hasNaN := false
		for _, v := range row {
			if math.IsNaN(v) {
				hasNaN = true
				break
			}
		}
		if !hasNaN {
			keep = append(keep, r)
		}
	}
	out, _ := f.selectRowsByPositions(keep)
	return out
}

// DropNaNColumns returns a frame keeping only columns with no missing cells.
func (f *Frame[I]) DropNaNColumns() *Frame[I] {
	keep := make([]int, 0, f.Cols())
	for c := range f.cols {
		hasNaN := false
		for r := range f.data {
			if math.IsNaN(f.data[r][c]) {
				hasNaN = true
				break
			}
		}
		if !hasNaN {
			keep = append(keep, c)
		}
	}
	out, _ := f.selectColumnsByPositions(keep)
	return out
}

// clone returns a deep copy of f.
func (f *Frame[I]) clone() *Frame[I] {
	out := f.emptyLike()
	out.index = slices.Clone(f.index)
	out.data = make([][]float64, len(f.data))
	for r, row := range f.data {
		out.data[r] = slices.Clone(row)
	}
	return out
}

// findColumn returns the position of the first column with the given name.
func (f *Frame[I]) findColumn(name string) (int, error) {
	for i, col := range f.cols {
		if col == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

// findRow returns the position of the first row labeled with value.
func (f *Frame[I]) findRow(value I) (int, error) {
	for i, v := range f.index {
		if v == value {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w", ErrIndexNotFound)
}
