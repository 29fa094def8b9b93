// Package percolate estimates the site-percolation threshold p* of an N×N
// grid by Monte Carlo simulation.
//
// The work is split into small packages, leaves first:
//
//	unionfind/   — weighted quick-union over grid sites plus Top/Bottom sentinels
//	percolation/ — open/closed site grid; Open, Percolates, IsFull, OpenFraction
//	simulation/  — one trial (open random closed sites until percolation) and
//	               an orchestrator running T trials across workers
//	stats/       — mean, variance, standard deviation and confidence interval
//
// The percolate command (cmd/percolate) wires these together with YAML
// configuration, slog logging, PNG heatmaps and an optional SQLite run log.
//
// Quick ASCII example (# closed, . open, ~ full):
//
//	~##
//	~~#
//	#~#
//
// is a 3×3 grid that percolates through the left and middle columns.
//
//	go install github.com/katalvlaran/percolate/cmd/percolate@latest
package percolate
