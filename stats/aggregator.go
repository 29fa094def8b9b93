package stats

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// New returns an empty Aggregator for t trials on an n×n grid.
// Returns ErrInvalidSize if n < 1 and ErrInvalidTrials if t < 1.
func New(n, t int) (*Aggregator, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	if t < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrials, t)
	}
	return &Aggregator{n: n, t: t, results: make([]float64, 0, t)}, nil
}

// N returns the grid dimension.
func (a *Aggregator) N() int { return a.n }

// T returns the trial count fixed at construction.
func (a *Aggregator) T() int { return a.t }

// Len returns the number of recorded results.
func (a *Aggregator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.results)
}

// Results returns a copy of the recorded results in insertion order.
func (a *Aggregator) Results() []float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.results)
}

// Record appends one trial result.
// Returns ErrInvalidResult for NaN or values outside [0,1], and
// ErrCapacityExceeded once T results are held.
func (a *Aggregator) Record(v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidResult, v)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.results) >= a.t {
		return fmt.Errorf("%w: T=%d", ErrCapacityExceeded, a.t)
	}
	a.results = append(a.results, v)
	return nil
}

// Mean returns Σx / T.
// Returns ErrNoResults if nothing was recorded.
func (a *Aggregator) Mean() (float64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mean()
}

// Variance returns the Bessel-corrected sample variance Σ(x-μ)² / (T-1),
// or exactly 0 when T == 1.
// Returns ErrNoResults if nothing was recorded.
func (a *Aggregator) Variance() (float64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.variance()
}

// StdDev returns the sample standard deviation √Variance.
// Returns ErrNoResults if nothing was recorded.
func (a *Aggregator) StdDev() (float64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	v, err := a.variance()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// ConfidenceLow returns μ - 1.96·s/√T.
// Returns ErrNoResults if nothing was recorded.
func (a *Aggregator) ConfidenceLow() (float64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	lo, _, err := a.interval(Z95)
	return lo, err
}

// ConfidenceHigh returns μ + 1.96·s/√T.
// Returns ErrNoResults if nothing was recorded.
func (a *Aggregator) ConfidenceHigh() (float64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, hi, err := a.interval(Z95)
	return hi, err
}

// ConfidenceInterval returns the two-sided normal-approximation interval on
// the mean at the given level, e.g. 0.99.
// Returns ErrInvalidLevel unless 0 < level < 1, and ErrNoResults if nothing
// was recorded.
func (a *Aggregator) ConfidenceInterval(level float64) (lo, hi float64, err error) {
	if !(level > 0 && level < 1) {
		return 0, 0, fmt.Errorf("%w: got %v", ErrInvalidLevel, level)
	}
	z := distuv.UnitNormal.Quantile(1 - (1-level)/2)
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.interval(z)
}

// Summary computes every statistic in one pass under a single lock.
// Returns ErrNoResults if nothing was recorded.
func (a *Aggregator) Summary() (Summary, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	mean, err := a.mean()
	if err != nil {
		return Summary{}, err
	}
	variance, _ := a.variance()
	lo, hi, _ := a.interval(Z95)

	sorted := slices.Clone(a.results)
	slices.Sort(sorted)

	return Summary{
		N:              a.n,
		T:              a.t,
		Recorded:       len(a.results),
		Mean:           mean,
		StdDev:         math.Sqrt(variance),
		Variance:       variance,
		ConfidenceLow:  lo,
		ConfidenceHigh: hi,
		Min:            sorted[0],
		Median:         stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Max:            sorted[len(sorted)-1],
	}, nil
}

func (a *Aggregator) mean() (float64, error) {
	if len(a.results) == 0 {
		return 0, ErrNoResults
	}
	return floats.Sum(a.results) / float64(a.t), nil
}

func (a *Aggregator) variance() (float64, error) {
	mean, err := a.mean()
	if err != nil {
		return 0, err
	}
	if a.t == 1 {
		return 0, nil
	}
	var ss float64
	for _, x := range a.results {
		d := x - mean
		ss += d * d
	}
	return ss / float64(a.t-1), nil
}

// interval returns μ ∓ z·s/√T. Caller holds a.mu.
func (a *Aggregator) interval(z float64) (lo, hi float64, err error) {
	mean, err := a.mean()
	if err != nil {
		return 0, 0, err
	}
	v, _ := a.variance()
	half := z * math.Sqrt(v) / math.Sqrt(float64(a.t))
	return mean - half, mean + half, nil
}
