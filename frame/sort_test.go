package frame

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortRowsByColumn(t *testing.T) {
	f := mustFrame(t, []int{1, 2, 3}, []string{"a", "b"},
		[][]float64{{3, 10}, {1, 20}, {2, 30}})

	out, err := f.SortRowsByColumn("a", true)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 1}, out.Index())
	col, err := out.Column("b")
	require.NoError(t, err)
	assert.Equal(t, []float64{20, 30, 10}, col)

	out, err = f.SortRowsByColumn("a", false)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2}, out.Index())

	_, err = f.SortRowsByColumn("z", true)
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestSortRowsNaNPlacement(t *testing.T) {
	nan := math.NaN()
	f := mustFrame(t, []int{1, 2, 3, 4}, []string{"a"},
		[][]float64{{nan}, {2}, {nan}, {1}})

	// Ascending puts NaN keys last, preserving their relative order.
	out, err := f.SortRowsByColumn("a", true)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 1, 3}, out.Index())

	// Descending puts NaN keys first.
	out, err = f.SortRowsByColumn("a", false)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2, 4}, out.Index())
}

func TestSortRowsStability(t *testing.T) {
	f := mustFrame(t, []int{1, 2, 3, 4}, []string{"a"},
		[][]float64{{5}, {5}, {5}, {1}})

	out, err := f.SortRowsByColumn("a", true)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 1, 2, 3}, out.Index())
}

func TestSortColumnsByRow(t *testing.T) {
	f := mustFrame(t, []int{1, 2}, []string{"a", "b", "c"},
		[][]float64{{3, 1, 2}, {10, 20, 30}})

	out, err := f.SortColumnsByRow(1, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, out.Columns())
	row, err := out.Row(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{20, 30, 10}, row)

	_, err = f.SortColumnsByRow(99, true)
	assert.ErrorIs(t, err, ErrIndexNotFound)
}

func TestSortColumnsByRowEmpty(t *testing.T) {
	f, err := New([]int{}, []string{"a"}, [][]float64{})
	require.NoError(t, err)
	_, err = f.SortColumnsByRow(1, true)
	assert.ErrorIs(t, err, ErrInsufficientRows)
}
