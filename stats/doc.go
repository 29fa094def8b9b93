// Package stats aggregates the outcomes of T independent percolation trials
// into an estimate of the percolation threshold p*.
//
// The Aggregator holds up to T results and derives:
//
//	Mean      μ  = Σx / T
//	Variance  s² = Σ(x-μ)² / (T-1)          (0 when T == 1)
//	StdDev    s  = √s²
//	95% CI       = μ ∓ 1.96·s / √T
//
// ConfidenceInterval generalizes the interval to any level using the normal
// quantile from gonum's distuv.UnitNormal.
//
// All derived values are computed on demand; nothing but the result sequence
// is stored. An Aggregator is safe for concurrent use.
package stats
