package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goframe/stats"
)

func TestRandomNormalShape(t *testing.T) {
	f, err := RandomNormal[int](100, []string{"a", "b"}, &NormalOptions{Stddev: 1, Seed: 3})
	require.NoError(t, err)
	assert.Equal(t, [2]int{100, 2}, f.Shape())
	assert.Equal(t, DefaultIndexName, f.IndexName())

	index := f.Index()
	assert.Equal(t, 0, index[0])
	assert.Equal(t, 99, index[99])
}

func TestRandomNormalDeterministicSeed(t *testing.T) {
	a, err := RandomNormal[int64](50, []string{"x"}, &NormalOptions{Stddev: 1, Seed: 42})
	require.NoError(t, err)
	b, err := RandomNormal[int64](50, []string{"x"}, &NormalOptions{Stddev: 1, Seed: 42})
	require.NoError(t, err)

	av, err := a.Column("x")
	require.NoError(t, err)
	bv, err := b.Column("x")
	require.NoError(t, err)
	assert.Equal(t, av, bv)
}

func TestRandomNormalMoments(t *testing.T) {
	f, err := RandomNormal[int](20000, []string{"x"},
		&NormalOptions{Mean: 5, Stddev: 2, Seed: 9})
	require.NoError(t, err)

	col, err := f.Column("x")
	require.NoError(t, err)
	assert.InDelta(t, 5, stats.Mean(col), 0.1)
	assert.InDelta(t, 2, stats.Stdev(col), 0.1)
}

func TestRandomNormalTargetCorr(t *testing.T) {
	f, err := RandomNormal[int](20000, []string{"a", "b"},
		&NormalOptions{Stddev: 1, Seed: 17, TargetCorr: 0.6})
	require.NoError(t, err)

	corr, err := f.CorrelationMatrix()
	require.NoError(t, err)
	v, err := corr.Value(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, v, 0.05)
}

func TestRandomNormalValidation(t *testing.T) {
	_, err := RandomNormal[int](10, nil, nil)
	assert.ErrorIs(t, err, ErrNoColumns)

	_, err = RandomNormal[int](10, []string{""}, nil)
	assert.ErrorIs(t, err, ErrEmptyColumnName)

	_, err = RandomNormal[int](-1, []string{"a"}, nil)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = RandomNormal[int](10, []string{"a"}, &NormalOptions{Stddev: 0})
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = RandomNormal[int](10, []string{"a"}, &NormalOptions{Stddev: 1, TargetCorr: 1.5})
	assert.ErrorIs(t, err, ErrInvalidParameter)

	// Non-integral index kinds cannot label generated rows.
	_, err = RandomNormal[string](10, []string{"a"}, nil)
	assert.ErrorIs(t, err, ErrUnsupportedIndex)
	_, err = RandomNormal[float64](10, []string{"a"}, nil)
	assert.ErrorIs(t, err, ErrUnsupportedIndex)
}

func TestRandomUniform(t *testing.T) {
	f, err := RandomUniform[int](500, []string{"u"}, &UniformOptions{Min: 2, Max: 3, Seed: 5})
	require.NoError(t, err)

	col, err := f.Column("u")
	require.NoError(t, err)
	for _, v := range col {
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 3.0)
	}

	_, err = RandomUniform[int](10, []string{"u"}, &UniformOptions{Min: 1, Max: 1})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestResampleRows(t *testing.T) {
	f := mustFrame(t, []int{10, 20, 30}, []string{"a"}, [][]float64{{1}, {2}, {3}})

	boot, err := f.ResampleRows(0, false, 7)
	require.NoError(t, err)
	assert.Equal(t, 3, boot.Rows())
	assert.Equal(t, DefaultIndexName, boot.IndexName())

	// Without reset, labels come from the sampled source rows.
	for _, v := range boot.Index() {
		assert.Contains(t, []int{10, 20, 30}, v)
	}

	sized, err := f.ResampleRows(5, false, 7)
	require.NoError(t, err)
	assert.Equal(t, 5, sized.Rows())
}

func TestResampleRowsDeterministicSeed(t *testing.T) {
	f := mustFrame(t, []int{1, 2, 3, 4}, []string{"a"},
		[][]float64{{1}, {2}, {3}, {4}})

	a, err := f.ResampleRows(10, false, 99)
	require.NoError(t, err)
	b, err := f.ResampleRows(10, false, 99)
	require.NoError(t, err)
	assert.Equal(t, a.Index(), b.Index())
}

func TestResampleRowsResetIndex(t *testing.T) {
	f := mustFrame(t, []int{10, 20, 30}, []string{"a"}, [][]float64{{1}, {2}, {3}})

	boot, err := f.ResampleRows(4, true, 7)
	require.NoError(t, err)
	assert.Equal(t, ResampleIndexName, boot.IndexName())
	assert.Equal(t, []int{0, 1, 2, 3}, boot.Index())
}

func TestResampleRowsResetNonGenerableIndex(t *testing.T) {
	f, err := New([]string{"x", "y"}, []string{"a"}, [][]float64{{1}, {2}})
	require.NoError(t, err)

	// A string index cannot be regenerated, so labels and label name carry
	// over even when a reset was requested.
	boot, err := f.ResampleRows(3, true, 5)
	require.NoError(t, err)
	assert.Equal(t, DefaultIndexName, boot.IndexName())
	for _, v := range boot.Index() {
		assert.Contains(t, []string{"x", "y"}, v)
	}
}

func TestResampleRowsValidation(t *testing.T) {
	empty, err := New([]int{}, []string{"a"}, [][]float64{})
	require.NoError(t, err)
	_, err = empty.ResampleRows(2, false, 1)
	assert.ErrorIs(t, err, ErrInsufficientRows)

	f := mustFrame(t, []int{1}, []string{"a"}, [][]float64{{1}})
	_, err = f.ResampleRows(-1, false, 1)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestResampleRowsFloatIndexReset(t *testing.T) {
	f, err := New([]float64{1.5, 2.5}, []string{"a"}, [][]float64{{1}, {2}})
	require.NoError(t, err)

	boot, err := f.ResampleRows(3, true, 5)
	require.NoError(t, err)
	assert.Equal(t, ResampleIndexName, boot.IndexName())
	assert.Equal(t, []float64{0, 1, 2}, boot.Index())
}

func TestResampleValuesComeFromSource(t *testing.T) {
	f := mustFrame(t, []int{1, 2}, []string{"a"}, [][]float64{{1.25}, {2.5}})

	boot, err := f.ResampleRows(20, true, 3)
	require.NoError(t, err)
	col, err := boot.Column("a")
	require.NoError(t, err)
	for _, v := range col {
		assert.True(t, v == 1.25 || v == 2.5)
	}
}
