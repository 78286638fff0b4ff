package frame

import (
	"math"
	"slices"
	"sort"
)

// sortOrder builds the stable permutation for a key sequence. NaN keys sort
// after all real values ascending and before them descending; equal and
// both-NaN keys keep their original relative order.
func sortOrder(keys []float64, ascending bool) []int {
	order := make([]int, len(keys))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		left, right := keys[order[a]], keys[order[b]]
		leftNaN, rightNaN := math.IsNaN(left), math.IsNaN(right)
		if leftNaN || rightNaN {
			if leftNaN && rightNaN {
				return false
			}
			if ascending {
				return !leftNaN
			}
			return leftNaN
		}
		if ascending {
			return left < right
		}
		return left > right
	})
	return order
}

// SortRowsByColumn returns a frame with the rows stably reordered by the
// values in the named column.
func (f *Frame[I]) SortRowsByColumn(name string, ascending bool) (*Frame[I], error) {
	if f.Cols() == 0 {
		return nil, ErrNoColumns
	}
	col, err := f.findColumn(name)
	if err != nil {
		return nil, err
	}
	keys := make([]float64, f.Rows())
	for r := range f.data {
		keys[r] = f.data[r][col]
	}
	order := sortOrder(keys, ascending)

	out := f.emptyLike()
	out.index = make([]I, 0, len(order))
	out.data = make([][]float64, 0, len(order))
	for _, pos := range order {
		out.index = append(out.index, f.index[pos])
		out.data = append(out.data, slices.Clone(f.data[pos]))
	}
	return out, nil
}

// SortColumnsByRow returns a frame with the columns stably reordered by the
// values in the row labeled with value.
func (f *Frame[I]) SortColumnsByRow(value I, ascending bool) (*Frame[I], error) {
	if f.Cols() == 0 {
		return nil, ErrNoColumns
	}
	if f.Rows() == 0 {
		return nil, ErrInsufficientRows
	}
	row, err := f.findRow(value)
	if err != nil {
		return nil, err
	}
	order := sortOrder(f.data[row], ascending)

	out := &Frame[I]{
		index:     slices.Clone(f.index),
		indexName: f.indexName,
		cols:      make([]string, len(order)),
	}
	for i, pos := range order {
		out.cols[i] = f.cols[pos]
	}
	out.data = make([][]float64, f.Rows())
	for r := range out.data {
		rowOut := make([]float64, len(order))
		for c, pos := range order {
			rowOut[c] = f.data[r][pos]
		}
		out.data[r] = rowOut
	}
	return out, nil
}
