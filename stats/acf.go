package stats

// Autocorrelations returns the sample autocorrelations of x for lags 1..k,
// mean-centered and normalized by the total sum of squared deviations.
// The requested lag is clamped to len(x)-1. The result is nil when k <= 0 or
// fewer than two observations are available; every lag is NaN when the
// denominator is not positive.
func Autocorrelations(x []float64, k int) []float64 {
	n := len(x)
	if k <= 0 || n <= 1 {
		return nil
	}
	if k > n-1 {
		k = n - 1
	}

	r := make([]float64, k)
	m := Mean(x)

	denom := 0.0
	for _, v := range x {
		d := v - m
		denom += d * d
	}
	if !(denom > 0) {
		for i := range r {
			r[i] = nan()
		}
		return r
	}

	for lag := 1; lag <= k; lag++ {
		num := 0.0
		for t := lag; t < n; t++ {
			num += (x[t] - m) * (x[t-lag] - m)
		}
		r[lag-1] = num / denom
	}
	return r
}
