package frame

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarArithmetic(t *testing.T) {
	f := mustFrame(t, []int{1, 2}, []string{"a"}, [][]float64{{2}, {4}})

	col, err := f.AddScalar(1).Column("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 5}, col)

	col, err = f.SubtractScalar(2).Column("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2}, col)

	col, err = f.MultiplyScalar(3).Column("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 12}, col)

	half, err := f.DivideScalar(2)
	require.NoError(t, err)
	col, err = half.Column("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, col)

	_, err = f.DivideScalar(0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestScalarArithmeticLeavesReceiver(t *testing.T) {
	f := mustFrame(t, []int{1}, []string{"a"}, [][]float64{{2}})
	f.AddScalar(10)
	v, err := f.Value(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestFrameArithmetic(t *testing.T) {
	a := mustFrame(t, []int{1, 2}, []string{"x", "y"}, [][]float64{{1, 2}, {3, 4}})
	b := mustFrame(t, []int{1, 2}, []string{"x", "y"}, [][]float64{{10, 20}, {30, 40}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	row, err := sum.Row(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{33, 44}, row)

	diff, err := b.Subtract(a)
	require.NoError(t, err)
	row, err = diff.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 18}, row)

	prod, err := a.Multiply(b)
	require.NoError(t, err)
	row, err = prod.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 40}, row)

	quot, err := b.Divide(a)
	require.NoError(t, err)
	row, err = quot.Row(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 10}, row)
}

func TestFrameArithmeticAlignment(t *testing.T) {
	a := mustFrame(t, []int{1, 2}, []string{"x"}, [][]float64{{1}, {2}})

	shorter := mustFrame(t, []int{1}, []string{"x"}, [][]float64{{1}})
	_, err := a.Add(shorter)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	renamed := mustFrame(t, []int{1, 2}, []string{"y"}, [][]float64{{1}, {2}})
	_, err = a.Add(renamed)
	assert.ErrorIs(t, err, ErrColumnMismatch)

	relabeled := mustFrame(t, []int{1, 3}, []string{"x"}, [][]float64{{1}, {2}})
	_, err = a.Add(relabeled)
	assert.ErrorIs(t, err, ErrIndexMismatch)

	zeros := mustFrame(t, []int{1, 2}, []string{"x"}, [][]float64{{1}, {0}})
	_, err = a.Divide(zeros)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestLogExp(t *testing.T) {
	f := mustFrame(t, []int{1, 2}, []string{"a"}, [][]float64{{1}, {math.E}})

	logged, err := f.Log()
	require.NoError(t, err)
	col, err := logged.Column("a")
	require.NoError(t, err)
	assert.InDelta(t, 0, col[0], 1e-12)
	assert.InDelta(t, 1, col[1], 1e-12)

	back, err := logged.Exp().Column("a")
	require.NoError(t, err)
	assert.InDelta(t, 1, back[0], 1e-12)
	assert.InDelta(t, math.E, back[1], 1e-12)

	bad := mustFrame(t, []int{1}, []string{"a"}, [][]float64{{0}})
	_, err = bad.Log()
	assert.ErrorIs(t, err, ErrNonPositiveLog)

	negative := mustFrame(t, []int{1}, []string{"a"}, [][]float64{{-1}})
	_, err = negative.Log()
	assert.ErrorIs(t, err, ErrNonPositiveLog)
}

func TestLogPropagatesNaN(t *testing.T) {
	f := mustFrame(t, []int{1, 2}, []string{"a"}, [][]float64{{math.NaN()}, {1}})
	out, err := f.Log()
	require.NoError(t, err)
	col, err := out.Column("a")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(col[0]))
	assert.InDelta(t, 0, col[1], 1e-12)
}

func TestPower(t *testing.T) {
	f := mustFrame(t, []int{1, 2}, []string{"a"}, [][]float64{{2}, {3}})

	col, err := f.Power(2).Column("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 9}, col)

	col, err = f.PowerInt(3).Column("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{8, 27}, col)
}

func TestStandardize(t *testing.T) {
	f := mustFrame(t, []int{1, 2, 3}, []string{"a"}, [][]float64{{1}, {2}, {3}})

	col, err := f.Standardize().Column("a")
	require.NoError(t, err)
	assert.InDelta(t, -1, col[0], 1e-12)
	assert.InDelta(t, 0, col[1], 1e-12)
	assert.InDelta(t, 1, col[2], 1e-12)
}

func TestStandardizeDegenerateColumns(t *testing.T) {
	nan := math.NaN()
	f := mustFrame(t, []int{1, 2, 3}, []string{"const", "sparse", "ok"},
		[][]float64{
			{5, nan, 1},
			{5, 7, 2},
			{5, nan, 3},
		})

	out := f.Standardize()
	constCol, err := out.Column("const")
	require.NoError(t, err)
	for _, v := range constCol {
		assert.True(t, math.IsNaN(v))
	}

	// A single observation cannot be scaled.
	sparse, err := out.Column("sparse")
	require.NoError(t, err)
	for _, v := range sparse {
		assert.True(t, math.IsNaN(v))
	}

	ok, err := out.Column("ok")
	require.NoError(t, err)
	assert.InDelta(t, -1, ok[0], 1e-12)
}

func TestNormalize(t *testing.T) {
	nan := math.NaN()
	f := mustFrame(t, []int{1, 2, 3}, []string{"a", "flat", "gone"},
		[][]float64{
			{10, 4, nan},
			{20, 4, nan},
			{30, 4, nan},
		})

	out := f.Normalize()

	a, err := out.Column("a")
	require.NoError(t, err)
	assert.InDelta(t, 0, a[0], 1e-12)
	assert.InDelta(t, 0.5, a[1], 1e-12)
	assert.InDelta(t, 1, a[2], 1e-12)

	flat, err := out.Column("flat")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, flat)

	gone, err := out.Column("gone")
	require.NoError(t, err)
	for _, v := range gone {
		assert.True(t, math.IsNaN(v))
	}
}
