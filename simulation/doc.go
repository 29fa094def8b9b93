// Package simulation runs Monte Carlo percolation trials and aggregates them.
//
// A single trial (RunTrial) is a two-state machine:
//
//	Running ──open random closed site──▶ Running
//	Running ──Percolates() == true────▶ Percolated (terminal)
//
// On entering Percolated the trial yields the grid's open fraction.
// Sites are drawn from a uniformly random permutation of the N² sites, so
// every step opens a site that is still closed and each trial ends after at
// most N² opens.
//
// Run schedules T trials and records their results into a stats.Aggregator.
// Every trial draws from its own RNG stream derived from (Seed, trial index),
// so a run is reproducible for a fixed seed whatever the worker count. With
// Workers > 1 trials are fanned out over goroutines; each goroutine owns its
// grid, and only the scalar results are shared.
//
// Determinism:
//
//   - Seed == 0 selects a fixed default seed.
//   - math/rand.Rand is not goroutine-safe; streams are never shared.
package simulation
