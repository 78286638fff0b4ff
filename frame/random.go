package frame

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/stat/distuv"
)

// ResampleIndexName labels the index axis of resampled frames whose index
// was regenerated positionally.
const ResampleIndexName = "resample_index"

// NormalOptions holds options for RandomNormal.
type NormalOptions struct {
	Mean       float64 // distribution mean (default 0)
	Stddev     float64 // distribution standard deviation (default 1)
	Seed       uint64  // PRNG seed; 0 draws from entropy
	TargetCorr float64 // pairwise correlation of later columns with column 0, in [0, 1]
}

// DefaultNormalOptions returns the standard-normal defaults.
func DefaultNormalOptions() *NormalOptions {
	return &NormalOptions{Stddev: 1}
}

// UniformOptions holds options for RandomUniform.
type UniformOptions struct {
	Min  float64 // inclusive lower bound (default 0)
	Max  float64 // exclusive upper bound (default 1)
	Seed uint64  // PRNG seed; 0 draws from entropy
}

// DefaultUniformOptions returns the unit-interval defaults.
func DefaultUniformOptions() *UniformOptions {
	return &UniformOptions{Max: 1}
}

// newSource returns a PRNG source local to one generating call.
func newSource(seed uint64) rand.Source {
	if seed == 0 {
		return rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return rand.NewPCG(seed, seed)
}

// checkGeneratedShape validates the row count and column names shared by the
// synthetic generators, including that the index kind is integral and can
// label every generated row.
func checkGeneratedShape[I comparable](rows int, columns []string) error {
	if len(columns) == 0 {
		return ErrNoColumns
	}
	for _, name := range columns {
		if name == "" {
			return ErrEmptyColumnName
		}
	}
	if rows < 0 {
		return fmt.Errorf("%w: negative row count", ErrInvalidParameter)
	}
	capacity, integral := indexCapacity[I]()
	if !integral {
		var zero I
		return fmt.Errorf("%w: synthetic generation requires an integral index, got %T", ErrUnsupportedIndex, zero)
	}
	if uint64(rows) > capacity {
		return fmt.Errorf("%w: row count %d exceeds index capacity", ErrInvalidParameter, rows)
	}
	return nil
}

// RandomNormal generates a frame of independent normal draws, one per cell.
// With a positive TargetCorr and at least two columns, column 0 is an
// independent draw and every other column mixes the shared component with an
// independent one as sqrt(c)*common + sqrt(1-c)*independent, giving each
// later column pairwise correlation close to c with column 0. The index is
// the positional sequence 0..rows-1 and requires an integral index type.
func RandomNormal[I comparable](rows int, columns []string, opts *NormalOptions) (*Frame[I], error) {
	if opts == nil {
		opts = DefaultNormalOptions()
	}
	if err := checkGeneratedShape[I](rows, columns); err != nil {
		return nil, err
	}
	if !(opts.Stddev > 0) {
		return nil, fmt.Errorf("%w: standard deviation must be positive", ErrInvalidParameter)
	}
	if opts.TargetCorr < 0 || opts.TargetCorr > 1 {
		return nil, fmt.Errorf("%w: target correlation must be in [0, 1]", ErrInvalidParameter)
	}

	f, err := generatedShell[I](rows, columns)
	if err != nil {
		return nil, err
	}
	dist := distuv.Normal{Mu: opts.Mean, Sigma: opts.Stddev, Src: newSource(opts.Seed)}

	if len(columns) <= 1 || opts.TargetCorr == 0 {
		for _, row := range f.data {
			for c := range row {
				row[c] = dist.Rand()
			}
		}
		return f, nil
	}

	shared := math.Sqrt(opts.TargetCorr)
	independent := math.Sqrt(1 - opts.TargetCorr)
	for _, row := range f.data {
		common := dist.Rand()
		row[0] = common
		for c := 1; c < len(row); c++ {
			row[c] = shared*common + independent*dist.Rand()
		}
	}
	return f, nil
}

// RandomUniform generates a frame of independent uniform draws on
// [Min, Max). The index is the positional sequence 0..rows-1 and requires an
// integral index type.
func RandomUniform[I comparable](rows int, columns []string, opts *UniformOptions) (*Frame[I], error) {
	if opts == nil {
		opts = DefaultUniformOptions()
	}
	if err := checkGeneratedShape[I](rows, columns); err != nil {
		return nil, err
	}
	if opts.Min >= opts.Max {
		return nil, fmt.Errorf("%w: min must be less than max", ErrInvalidParameter)
	}

	f, err := generatedShell[I](rows, columns)
	if err != nil {
		return nil, err
	}
	dist := distuv.Uniform{Min: opts.Min, Max: opts.Max, Src: newSource(opts.Seed)}
	for _, row := range f.data {
		for c := range row {
			row[c] = dist.Rand()
		}
	}
	return f, nil
}

// generatedShell builds a zero-filled frame with a positional index.
func generatedShell[I comparable](rows int, columns []string) (*Frame[I], error) {
	f := &Frame[I]{
		cols:      slices.Clone(columns),
		indexName: DefaultIndexName,
		index:     make([]I, rows),
		data:      make([][]float64, rows),
	}
	for r := 0; r < rows; r++ {
		v, err := generateIndex[I](r)
		if err != nil {
			return nil, err
		}
		f.index[r] = v
		f.data[r] = make([]float64, len(columns))
	}
	return f, nil
}

// ResampleRows draws sampleSize rows uniformly with replacement (a bootstrap
// sample); sampleSize 0 means the current row count. When resetIndex is true
// and the index kind supports positional generation, the result gets a fresh
// 0..n-1 index labeled "resample_index"; for other index kinds the sampled
// rows keep their original labels and the original index label. A seed of 0
// draws from entropy.
func (f *Frame[I]) ResampleRows(sampleSize int, resetIndex bool, seed uint64) (*Frame[I], error) {
	if f.Rows() == 0 {
		return nil, fmt.Errorf("%w: no rows to sample", ErrInsufficientRows)
	}
	if sampleSize < 0 {
		return nil, fmt.Errorf("%w: negative sample size", ErrInvalidParameter)
	}
	if sampleSize == 0 {
		sampleSize = f.Rows()
	}

	_, generable := indexCapacity[I]()
	if !generable {
		// float64 can still label a positional sequence even though the
		// synthetic generators reject it.
		var zero I
		_, isFloat := any(zero).(float64)
		generable = isFloat
	}

	out := f.emptyLike()
	if resetIndex && generable {
		out.indexName = ResampleIndexName
	}
	out.index = make([]I, 0, sampleSize)
	out.data = make([][]float64, 0, sampleSize)

	rng := rand.New(newSource(seed))
	for i := 0; i < sampleSize; i++ {
		pick := rng.IntN(f.Rows())
		out.data = append(out.data, slices.Clone(f.data[pick]))
		if resetIndex && generable {
			v, err := generateIndex[I](i)
			if err != nil {
				return nil, err
			}
			out.index = append(out.index, v)
		} else {
			out.index = append(out.index, f.index[pick])
		}
	}
	return out, nil
}
