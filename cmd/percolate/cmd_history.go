package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolate/internal/store"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List runs recorded with --db",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.DB == "" {
				return errors.New("history: --db is required")
			}
			limit, _ := cmd.Flags().GetInt("limit")

			db, err := store.Open(cfg.DB)
			if err != nil {
				return err
			}
			defer db.Close()

			runs, err := db.Runs(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if cfg.Output == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(runs)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RUN\tCREATED\tN\tTRIALS\tSEED\tMEAN\tSTDDEV\t95% CI")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%.6f\t%.6f\t[%.6f, %.6f]\n",
					r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"),
					r.Summary.N, r.Summary.T, r.Seed,
					r.Summary.Mean, r.Summary.StdDev,
					r.Summary.ConfidenceLow, r.Summary.ConfidenceHigh)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().String("db", "", "SQLite database written by run --db")
	cmd.Flags().Int("limit", 20, "Maximum runs to list (0 for all)")
	cmd.Flags().String("output", "text", "Output format: text or json")
	return cmd
}
