package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolate/internal/config"
	"github.com/katalvlaran/percolate/internal/logging"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "percolate",
		Short: "Monte Carlo estimate of the percolation threshold",
		Long: `percolate opens random sites of an N×N grid until an open path spans it
from top to bottom, repeats this for T independent trials, and reports the
mean open fraction with a 95% confidence interval.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json")

	rootCmd.AddCommand(
		newRunCmd(),
		newHistoryCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "percolate version %s\n", version)
		},
	}
}

// loadConfig resolves configuration from file, environment and the flags
// explicitly set on cmd, in increasing precedence.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format, _ = flags.GetString("log-format")
	}
	if f := flags.Lookup("n"); f != nil && f.Changed {
		cfg.N, _ = flags.GetInt("n")
	}
	if f := flags.Lookup("trials"); f != nil && f.Changed {
		cfg.Trials, _ = flags.GetInt("trials")
	}
	if f := flags.Lookup("seed"); f != nil && f.Changed {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if f := flags.Lookup("workers"); f != nil && f.Changed {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if f := flags.Lookup("output"); f != nil && f.Changed {
		cfg.Output, _ = flags.GetString("output")
	}
	if f := flags.Lookup("plot"); f != nil && f.Changed {
		cfg.Plot, _ = flags.GetString("plot")
	}
	if f := flags.Lookup("db"); f != nil && f.Changed {
		cfg.DB, _ = flags.GetString("db")
	}
	return cfg, cfg.Validate()
}

func newLogger(cmd *cobra.Command, cfg config.Config) *slog.Logger {
	return logging.NewLogger(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())
}
