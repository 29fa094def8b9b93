package simulation

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/percolate/percolation"
)

// RunTrial executes one trial on a fresh n×n grid: it opens sites in a
// uniformly random order until the grid percolates and returns the open
// fraction at that moment. obs may be nil.
//
// Returns ErrInvalidSize if n < 1.
// Complexity: O(N²·α(N²)) time, O(N²) memory.
func RunTrial(n int, rng *rand.Rand, obs Observer) (TrialResult, error) {
	return runTrial(0, n, rng, obs)
}

func runTrial(index, n int, rng *rand.Rand, obs Observer) (TrialResult, error) {
	if n < 1 {
		return TrialResult{}, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	g, err := percolation.New(n)
	if err != nil {
		return TrialResult{}, err
	}

	// Opening along a random permutation draws each step uniformly from the
	// sites that are still closed.
	order := make([]int, n*n)
	for i := range order {
		order[i] = i
	}
	shuffleInPlace(order, rng)

	state := Running
	for _, site := range order {
		if err := g.Open(site/n+1, site%n); err != nil {
			return TrialResult{}, err
		}
		if obs != nil {
			obs.Observe(index, g)
		}
		if g.Percolates() {
			state = Percolated
			break
		}
	}
	if state != Percolated {
		return TrialResult{}, ErrNotPercolated
	}

	return TrialResult{
		Index:    index,
		N:        n,
		Opened:   g.OpenCount(),
		Fraction: g.OpenFraction(),
	}, nil
}
