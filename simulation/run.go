package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/percolate/stats"
)

// Run executes opts.Trials trials on opts.N×opts.N grids and returns the
// aggregated results, recorded in trial-index order.
//
// Cancellation of ctx stops scheduling new trials; Run then returns ctx.Err().
//
// Returns ErrInvalidSize, ErrInvalidTrials or ErrInvalidWorkers for bad options.
func Run(ctx context.Context, opts Options) (*stats.Aggregator, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	agg, err := stats.New(opts.N, opts.Trials)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if opts.Observer != nil {
		// Observers see one grid at a time.
		workers = 1
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	log.Info("simulation started",
		slog.Int("n", opts.N),
		slog.Int("trials", opts.Trials),
		slog.Int64("seed", opts.Seed),
		slog.Int("workers", workers))
	start := time.Now()

	results := make([]TrialResult, opts.Trials)
	if workers == 1 {
		err = runSequential(ctx, opts, results, log)
	} else {
		err = runParallel(ctx, opts, workers, results, log)
	}
	if err != nil {
		return nil, err
	}

	for _, r := range results {
		if err := agg.Record(r.Fraction); err != nil {
			return nil, err
		}
	}

	if mean, err := agg.Mean(); err == nil {
		log.Info("simulation finished",
			slog.Float64("mean", mean),
			slog.Duration("elapsed", time.Since(start)))
	}
	return agg, nil
}

// RunWith is Run with DefaultOptions modified by opts.
func RunWith(ctx context.Context, opts ...Option) (*stats.Aggregator, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return Run(ctx, o)
}

func runSequential(ctx context.Context, opts Options, out []TrialResult, log *slog.Logger) error {
	for i := range out {
		if err := ctx.Err(); err != nil {
			return err
		}
		r, err := runTrial(i, opts.N, trialRNG(opts.Seed, i), opts.Observer)
		if err != nil {
			return fmt.Errorf("trial %d: %w", i, err)
		}
		out[i] = r
		finish(opts, r, log)
	}
	return nil
}

func runParallel(ctx context.Context, opts Options, workers int, out []TrialResult, log *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	results := make(chan TrialResult)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for r := range results {
			out[r.Index] = r
			finish(opts, r, log)
		}
	}()

	for i := range out {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := runTrial(i, opts.N, trialRNG(opts.Seed, i), nil)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			select {
			case results <- r:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}
	err := g.Wait()
	close(results)
	<-done
	if err != nil {
		return err
	}
	return ctx.Err()
}

func finish(opts Options, r TrialResult, log *slog.Logger) {
	log.Debug("trial complete",
		slog.Int("trial", r.Index),
		slog.Int("opened", r.Opened),
		slog.Float64("fraction", r.Fraction))
	if opts.OnTrial != nil {
		opts.OnTrial(r)
	}
}

func (o Options) validate() error {
	switch {
	case o.N < 1:
		return fmt.Errorf("%w: got %d", ErrInvalidSize, o.N)
	case o.Trials < 1:
		return fmt.Errorf("%w: got %d", ErrInvalidTrials, o.Trials)
	case o.Workers < 1:
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, o.Workers)
	}
	return nil
}
