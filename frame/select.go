package frame

import (
	"fmt"
	"slices"
)

// SelectRows returns the rows labeled with the given index values, in the
// requested order. Every value must exist; the first matching row wins when
// labels repeat.
func (f *Frame[I]) SelectRows(values []I) (*Frame[I], error) {
	positions := make([]int, 0, len(values))
	for _, v := range values {
		pos, err := f.findRow(v)
		if err != nil {
			return nil, err
		}
		positions = append(positions, pos)
	}
	return f.selectRowsByPositions(positions)
}

// SelectColumns returns the named columns, in the requested order. Every
// name must exist.
func (f *Frame[I]) SelectColumns(names []string) (*Frame[I], error) {
	positions := make([]int, 0, len(names))
	for _, name := range names {
		pos, err := f.findColumn(name)
		if err != nil {
			return nil, err
		}
		positions = append(positions, pos)
	}
	return f.selectColumnsByPositions(positions)
}

// SelectRowPositions returns the rows at the given positions, in the
// requested order. Out-of-range positions fail.
func (f *Frame[I]) SelectRowPositions(positions []int) (*Frame[I], error) {
	return f.selectRowsByPositions(positions)
}

// SelectColumnPositions returns the columns at the given positions, in the
// requested order. Out-of-range positions fail.
func (f *Frame[I]) SelectColumnPositions(positions []int) (*Frame[I], error) {
	return f.selectColumnsByPositions(positions)
}

// SliceRange returns the rows whose index values fall between start and end,
// preserving original row order. The bounds are normalized if given in
// reverse; inclusiveEnd controls whether the upper bound itself qualifies.
func (f *Frame[I]) SliceRange(start, end I, inclusiveEnd bool) (*Frame[I], error) {
	lo, hi := start, end
	swapped, err := lessIndex(hi, lo)
	if err != nil {
		return nil, err
	}
	if swapped {
		lo, hi = hi, lo
	}
	positions := make([]int, 0)
	for i, v := range f.index {
		belowLo, err := lessIndex(v, lo)
		if err != nil {
			return nil, err
		}
		if belowLo {
			continue
		}
		aboveHi, err := lessIndex(hi, v)
		if err != nil {
			return nil, err
		}
		if aboveHi {
			continue
		}
		if !inclusiveEnd && v == hi {
			continue
		}
		positions = append(positions, i)
	}
	return f.selectRowsByPositions(positions)
}

// HeadRows returns the first count rows. A count of at least the row count
// returns a copy of the whole frame; zero returns an empty frame with the
// metadata preserved.
func (f *Frame[I]) HeadRows(count int) *Frame[I] {
	if count >= f.Rows() {
		return f.clone()
	}
	if count < 0 {
		count = 0
	}
	positions := make([]int, count)
	for i := range positions {
		positions[i] = i
	}
	out, _ := f.selectRowsByPositions(positions)
	return out
}

// TailRows returns the last count rows, original order preserved.
func (f *Frame[I]) TailRows(count int) *Frame[I] {
	if count >= f.Rows() {
		return f.clone()
	}
	if count < 0 {
		count = 0
	}
	positions := make([]int, count)
	start := f.Rows() - count
	for i := range positions {
		positions[i] = start + i
	}
	out, _ := f.selectRowsByPositions(positions)
	return out
}

// HeadColumns returns the first count columns.
func (f *Frame[I]) HeadColumns(count int) *Frame[I] {
	if count >= f.Cols() {
		return f.clone()
	}
	if count < 0 {
		count = 0
	}
	positions := make([]int, count)
	for i := range positions {
		positions[i] = i
	}
	out, _ := f.selectColumnsByPositions(positions)
	return out
}

// TailColumns returns the last count columns, original order preserved.
func (f *Frame[I]) TailColumns(count int) *Frame[I] {
	if count >= f.Cols() {
		return f.clone()
	}
	if count < 0 {
		count = 0
	}
	positions := make([]int, count)
	start := f.Cols() - count
	for i := range positions {
		positions[i] = start + i
	}
	out, _ := f.selectColumnsByPositions(positions)
	return out
}

func (f *Frame[I]) selectRowsByPositions(positions []int) (*Frame[I], error) {
	out := f.emptyLike()
	out.index = make([]I, 0, len(positions))
	out.data = make([][]float64, 0, len(positions))
	for _, pos := range positions {
		if pos < 0 || pos >= f.Rows() {
			return nil, fmt.Errorf("%w: row position %d of %d", ErrOutOfRange, pos, f.Rows())
		}
		out.index = append(out.index, f.index[pos])
		out.data = append(out.data, slices.Clone(f.data[pos]))
	}
	return out, nil
}

func (f *Frame[I]) selectColumnsByPositions(positions []int) (*Frame[I], error) {
	out := &Frame[I]{
		index:     slices.Clone(f.index),
		indexName: f.indexName,
		cols:      make([]string, 0, len(positions)),
	}
	for _, pos := range positions {
		if pos < 0 || pos >= f.Cols() {
			return nil, fmt.Errorf("%w: column position %d of %d", ErrOutOfRange, pos, f.Cols())
		}
		out.cols = append(out.cols, f.cols[pos])
	}
	out.data = make([][]float64, f.Rows())
	for r := range out.data {
		row := make([]float64, len(positions))
		for c, pos := range positions {
			row[c] = f.data[r][pos]
		}
		out.data[r] = row
	}
	return out, nil
}
