package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	assert.InDelta(t, 2.5, Mean([]float64{1, 2, 3, 4}), 1e-12)
	assert.InDelta(t, -1, Mean([]float64{-1}), 1e-12)
	assert.True(t, math.IsNaN(Mean(nil)))
}

func TestStdev(t *testing.T) {
	// Sample variance of {2, 4, 4, 4, 5, 5, 7, 9} is 32/7.
	got := Stdev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, math.Sqrt(32.0/7.0), got, 1e-12)

	assert.True(t, math.IsNaN(Stdev([]float64{3})))
	assert.True(t, math.IsNaN(Stdev(nil)))
	assert.InDelta(t, 0, Stdev([]float64{5, 5, 5}), 1e-12)
}

func TestSkew(t *testing.T) {
	// Symmetric sample has zero skewness.
	assert.InDelta(t, 0, Skew([]float64{1, 2, 3}), 1e-12)
	// Right tail pulls skewness positive.
	assert.Greater(t, Skew([]float64{1, 1, 1, 10}), 0.0)
	assert.True(t, math.IsNaN(Skew([]float64{1, 2})))
	assert.True(t, math.IsNaN(Skew([]float64{4, 4, 4})))
}

func TestExcessKurtosis(t *testing.T) {
	// Two-point symmetric distribution has m4/m2^2 = 1, excess -2.
	assert.InDelta(t, -2, ExcessKurtosis([]float64{-1, 1, -1, 1}), 1e-12)
	assert.True(t, math.IsNaN(ExcessKurtosis([]float64{1, 2, 3})))
	assert.True(t, math.IsNaN(ExcessKurtosis([]float64{2, 2, 2, 2})))
}

func TestMedian(t *testing.T) {
	assert.InDelta(t, 3, Median([]float64{5, 1, 3}), 1e-12)
	assert.InDelta(t, 2.5, Median([]float64{4, 1, 2, 3}), 1e-12)
	assert.True(t, math.IsNaN(Median(nil)))

	// Input order preserved.
	x := []float64{3, 1, 2}
	Median(x)
	assert.Equal(t, []float64{3, 1, 2}, x)
}

func TestSummaryFiltersNaN(t *testing.T) {
	nan := math.NaN()
	s := Summary([]float64{1, nan, 2, 3, nan, 4})
	assert.Equal(t, 4, s.N)
	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	assert.InDelta(t, 1, s.Min, 1e-12)
	assert.InDelta(t, 4, s.Max, 1e-12)

	empty := Summary([]float64{nan, nan})
	assert.Equal(t, 0, empty.N)
	assert.True(t, math.IsNaN(empty.Mean))
	assert.True(t, math.IsNaN(empty.Min))
}

func TestAutocorrelations(t *testing.T) {
	assert.Nil(t, Autocorrelations([]float64{1, 2, 3}, 0))
	assert.Nil(t, Autocorrelations([]float64{1}, 2))

	// Lag clamped to n-1.
	r := Autocorrelations([]float64{1, 2, 3}, 10)
	assert.Len(t, r, 2)

	// Constant series has zero denominator.
	r = Autocorrelations([]float64{2, 2, 2, 2}, 2)
	require.Len(t, r, 2)
	assert.True(t, math.IsNaN(r[0]))
	assert.True(t, math.IsNaN(r[1]))

	// Alternating series is perfectly negatively autocorrelated at lag 1
	// up to the finite-sample normalization.
	r = Autocorrelations([]float64{1, -1, 1, -1, 1, -1}, 1)
	require.Len(t, r, 1)
	assert.Less(t, r[0], 0.0)
}

func TestSimulateAR1(t *testing.T) {
	_, err := SimulateAR1(0, 0.5, 1, 0, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidAR1)
	_, err = SimulateAR1(10, 0.5, -1, 0, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidAR1)
	_, err = SimulateAR1(10, 0.5, 1, 0, -1, 1)
	assert.ErrorIs(t, err, ErrInvalidAR1)

	a, err := SimulateAR1(50, 0.6, 1, 2, 100, 7)
	require.NoError(t, err)
	b, err := SimulateAR1(50, 0.6, 1, 2, 100, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 50)

	// Zero noise collapses onto the mean.
	c, err := SimulateAR1(5, 0.9, 0, 3, 10, 1)
	require.NoError(t, err)
	for _, v := range c {
		assert.InDelta(t, 3, v, 1e-9)
	}
}

func TestStandardizeReturns(t *testing.T) {
	out, err := StandardizeReturns([]float64{2, 3, 4}, []float64{2, 0, math.NaN()}, -1)
	require.NoError(t, err)
	assert.InDelta(t, 1, out[0], 1e-12)
	assert.InDelta(t, -1, out[1], 1e-12)
	assert.InDelta(t, -1, out[2], 1e-12)

	_, err = StandardizeReturns([]float64{1, 2}, []float64{1}, 0)
	assert.Error(t, err)
}
