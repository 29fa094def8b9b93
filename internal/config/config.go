// Package config loads percolate run settings from defaults, an optional
// YAML file and PERCOLATE_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/percolate/internal/logging"
)

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config contains every setting of a percolate run.
type Config struct {
	// N is the grid dimension.
	N int `yaml:"n"`
	// Trials is the number of independent trials T.
	Trials int `yaml:"trials"`
	// Seed is the base RNG seed; 0 selects the fixed default.
	Seed int64 `yaml:"seed"`
	// Workers is the number of concurrent trial goroutines.
	Workers int `yaml:"workers"`
	// Output selects the result format: "text" or "json".
	Output string `yaml:"output"`
	// Plot, if set, is the PNG path for a heatmap of the last trial's grid.
	Plot string `yaml:"plot,omitempty"`
	// DB, if set, is the SQLite path that records run summaries.
	DB string `yaml:"db,omitempty"`
	// Logging configures the operational logger.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the stderr logger.
type LoggingConfig struct {
	// Level is "debug", "info", "warn" or "error".
	Level string `yaml:"level"`
	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		N:       200,
		Trials:  100,
		Workers: 1,
		Output:  "text",
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load starts from Default, overlays the YAML file at path (skipped when
// path is empty) and then environment overrides. It does not validate.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.N < 1:
		return fmt.Errorf("%w: n must be at least 1, got %d", ErrInvalid, c.N)
	case c.Trials < 1:
		return fmt.Errorf("%w: trials must be at least 1, got %d", ErrInvalid, c.Trials)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, c.Workers)
	case c.Output != "text" && c.Output != "json":
		return fmt.Errorf("%w: output must be text or json, got %q", ErrInvalid, c.Output)
	case c.Logging.Format != "text" && c.Logging.Format != "json":
		return fmt.Errorf("%w: logging.format must be text or json, got %q", ErrInvalid, c.Logging.Format)
	}
	if _, ok := logging.ParseLevel(c.Logging.Level); !ok {
		return fmt.Errorf("%w: unknown logging.level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) applyEnv() error {
	ints := []struct {
		key string
		dst *int
	}{
		{"PERCOLATE_N", &c.N},
		{"PERCOLATE_TRIALS", &c.Trials},
		{"PERCOLATE_WORKERS", &c.Workers},
	}
	for _, e := range ints {
		if v, ok := os.LookupEnv(e.key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%w: %s=%q", ErrInvalid, e.key, v)
			}
			*e.dst = n
		}
	}
	if v, ok := os.LookupEnv("PERCOLATE_SEED"); ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: PERCOLATE_SEED=%q", ErrInvalid, v)
		}
		c.Seed = seed
	}
	strs := []struct {
		key string
		dst *string
	}{
		{"PERCOLATE_OUTPUT", &c.Output},
		{"PERCOLATE_PLOT", &c.Plot},
		{"PERCOLATE_DB", &c.DB},
		{"PERCOLATE_LOG_LEVEL", &c.Logging.Level},
		{"PERCOLATE_LOG_FORMAT", &c.Logging.Format},
	}
	for _, e := range strs {
		if v, ok := os.LookupEnv(e.key); ok {
			*e.dst = v
		}
	}
	return nil
}
