package stats

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

var (
	errSizeMismatch = errors.New("stats: returns and conditional sd slices must have the same length")

	// ErrInvalidAR1 reports an out-of-range AR(1) simulation parameter.
	ErrInvalidAR1 = errors.New("stats: invalid AR(1) parameter")
)

func nan() float64 { return math.NaN() }

// newSource returns a PRNG source for the given seed; a seed of 0 draws the
// seed from the process entropy stream.
func newSource(seed uint64) rand.Source {
	if seed == 0 {
		return rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return rand.NewPCG(seed, seed)
}

// SimulateAR1 simulates n observations from the AR(1) process
//
//	x_t = mu + phi*(x_{t-1} - mu) + sigma*e_t
//
// with standard normal innovations e_t, discarding the first burnin draws.
// The chain starts at mu. n must be positive, burnin non-negative, and sigma
// non-negative. A seed of 0 draws from entropy; any other seed is
// deterministic.
func SimulateAR1(n int, phi, sigma, mu float64, burnin int, seed uint64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n must be positive", ErrInvalidAR1)
	}
	if burnin < 0 {
		return nil, fmt.Errorf("%w: burnin must be >= 0", ErrInvalidAR1)
	}
	if !(sigma >= 0) {
		return nil, fmt.Errorf("%w: sigma must be >= 0", ErrInvalidAR1)
	}

	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: newSource(seed)}
	out := make([]float64, 0, n)
	x := mu
	total := burnin + n
	for t := 0; t < total; t++ {
		x = mu + phi*(x-mu) + sigma*dist.Rand()
		if t >= burnin {
			out = append(out, x)
		}
	}
	return out, nil
}
