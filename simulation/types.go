package simulation

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/percolate/percolation"
)

var (
	// ErrInvalidSize indicates a grid dimension below 1.
	ErrInvalidSize = errors.New("simulation: grid size must be at least 1")
	// ErrInvalidTrials indicates a trial count below 1.
	ErrInvalidTrials = errors.New("simulation: trial count must be at least 1")
	// ErrInvalidWorkers indicates a worker count below 1.
	ErrInvalidWorkers = errors.New("simulation: worker count must be at least 1")
	// ErrNotPercolated indicates every site was opened without the grid
	// percolating, which a correct grid never allows.
	ErrNotPercolated = errors.New("simulation: grid exhausted without percolating")
)

// State is the phase of a single trial.
type State int

const (
	// Running trials keep opening sites.
	Running State = iota
	// Percolated is terminal.
	Percolated
)

// String returns the state name.
func (s State) String() string {
	if s == Percolated {
		return "percolated"
	}
	return "running"
}

// Observer is notified after every Open of a trial. It may inspect the grid
// but must not retain it past the call or mutate it. Observers run on the
// goroutine executing the trial.
type Observer interface {
	Observe(trial int, g *percolation.Grid)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(trial int, g *percolation.Grid)

// Observe calls f(trial, g).
func (f ObserverFunc) Observe(trial int, g *percolation.Grid) { f(trial, g) }

// TrialResult is the outcome of one trial.
type TrialResult struct {
	// Index is the trial's position within its run.
	Index int
	// N is the grid dimension.
	N int
	// Opened is the number of sites open at percolation.
	Opened int
	// Fraction is Opened / N², the trial's estimate of p*.
	Fraction float64
}

// Options configures Run.
//
// Fields:
//
//	N        — grid dimension (≥ 1).
//	Trials   — number of independent trials T (≥ 1).
//	Seed     — base seed; 0 selects the fixed default.
//	Workers  — goroutines executing trials (≥ 1).
//	Observer — optional per-open hook; forces Workers to 1 when set.
//	OnTrial  — optional callback after each trial, called in completion order.
//	Logger   — optional structured logger; nil disables logging.
type Options struct {
	N        int
	Trials   int
	Seed     int64
	Workers  int
	Observer Observer
	OnTrial  func(TrialResult)
	Logger   *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a sequential 200×200, 100-trial run with the
// default seed.
func DefaultOptions() Options {
	return Options{
		N:       200,
		Trials:  100,
		Seed:    0,
		Workers: 1,
	}
}

// WithSize sets the grid dimension.
func WithSize(n int) Option {
	return func(o *Options) { o.N = n }
}

// WithTrials sets the trial count.
func WithTrials(t int) Option {
	return func(o *Options) { o.Trials = t }
}

// WithSeed sets the base seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers sets the number of concurrent trial goroutines.
func WithWorkers(w int) Option {
	return func(o *Options) { o.Workers = w }
}

// WithObserver installs a per-open observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// WithOnTrial installs a per-trial completion callback.
func WithOnTrial(fn func(TrialResult)) Option {
	return func(o *Options) { o.OnTrial = fn }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
