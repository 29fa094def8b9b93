package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolate/internal/render"
	"github.com/katalvlaran/percolate/internal/store"
	"github.com/katalvlaran/percolate/simulation"
	"github.com/katalvlaran/percolate/stats"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run T percolation trials on an N×N grid",
		Example: `  percolate run --n 200 --trials 100
  percolate run --n 64 --trials 500 --workers 8 --seed 42 --output json
  percolate run --n 50 --trials 10 --plot grid.png --show`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			show, _ := cmd.Flags().GetBool("show")
			log := newLogger(cmd, cfg)

			opts := simulation.Options{
				N:       cfg.N,
				Trials:  cfg.Trials,
				Seed:    cfg.Seed,
				Workers: cfg.Workers,
				Logger:  log,
			}
			var rec *render.Recorder
			if cfg.Plot != "" || show {
				rec = &render.Recorder{}
				opts.Observer = rec
			}

			start := time.Now()
			agg, err := simulation.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			var runID string
			if cfg.DB != "" {
				db, err := store.Open(cfg.DB)
				if err != nil {
					return err
				}
				defer db.Close()
				runID, err = db.RecordRun(cmd.Context(), agg, cfg.Seed, cfg.Workers, elapsed)
				if err != nil {
					return err
				}
				log.Info("run recorded", "run_id", runID, "db", cfg.DB)
			}

			if rec != nil {
				trial, snap, ok := rec.Last()
				if ok && cfg.Plot != "" {
					title := fmt.Sprintf("%d×%d grid, trial %d", cfg.N, cfg.N, trial)
					if err := render.SavePNG(cfg.Plot, snap, title); err != nil {
						return err
					}
					log.Info("plot written", "path", cfg.Plot)
				}
				if ok && show {
					if err := render.Text(cmd.OutOrStdout(), snap); err != nil {
						return err
					}
				}
			}

			sum, err := agg.Summary()
			if err != nil {
				return err
			}
			if cfg.Output == "json" {
				return writeJSON(cmd.OutOrStdout(), runID, sum)
			}
			return writeText(cmd.OutOrStdout(), sum)
		},
	}

	cmd.Flags().Int("n", 200, "Grid dimension N")
	cmd.Flags().Int("trials", 100, "Number of trials T")
	cmd.Flags().Int64("seed", 0, "Base RNG seed (0 selects the fixed default)")
	cmd.Flags().Int("workers", 1, "Concurrent trial workers")
	cmd.Flags().String("output", "text", "Output format: text or json")
	cmd.Flags().String("plot", "", "Write a PNG heatmap of the last trial's grid")
	cmd.Flags().String("db", "", "Record the run in this SQLite database")
	cmd.Flags().Bool("show", false, "Print the last trial's grid as text")
	return cmd
}

func writeText(w io.Writer, s stats.Summary) error {
	_, err := fmt.Fprintf(w,
		"Sample Mean             = %.6f\n"+
			"Standard Deviation      = %.6f\n"+
			"Variance                = %.6f\n"+
			"95%% Confidence Interval = [%.6f, %.6f]\n"+
			"%d X %d Grid\n"+
			"Number of Trials: %d\n",
		s.Mean, s.StdDev, s.Variance, s.ConfidenceLow, s.ConfidenceHigh, s.N, s.N, s.T)
	return err
}

func writeJSON(w io.Writer, runID string, s stats.Summary) error {
	out := struct {
		RunID string `json:"run_id,omitempty"`
		stats.Summary
	}{runID, s}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
