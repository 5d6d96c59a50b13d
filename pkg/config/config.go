// Package config manages algorithm and runtime configuration using Viper,
// the same pattern the teacher's louvain and scar packages use: a typed
// getter surface wrapping a *viper.Viper with every default populated in
// the constructor.
package config

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config wraps a *viper.Viper with typed accessors for the optimizer,
// parallel search, and logging knobs.
type Config struct {
	v *viper.Viper
}

// New creates a Config with sensible defaults for every setting.
func New() *Config {
	v := viper.New()

	v.SetDefault("algorithm.objective", "modularity")
	v.SetDefault("algorithm.resolution", 1.0)
	v.SetDefault("algorithm.min_gain", 1e-6)
	v.SetDefault("algorithm.max_passes", 1000)
	v.SetDefault("algorithm.random_seed", int64(-1)) // -1 means time-seeded

	v.SetDefault("performance.parallel", false)
	v.SetDefault("performance.num_workers", runtime.NumCPU())

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.enable_progress", true)

	return &Config{v: v}
}

// LoadFromFile merges settings from a config file (YAML/JSON/TOML, by
// extension) on top of the defaults.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("loading config from %q: %w", path, err)
	}
	return nil
}

// Objective returns the configured objective name ("modularity" or "cpm").
func (c *Config) Objective() string { return c.v.GetString("algorithm.objective") }

// Resolution returns γ, the CPM resolution parameter.
func (c *Config) Resolution() float64 { return c.v.GetFloat64("algorithm.resolution") }

// MinGain returns the minimum-gain threshold for accepting a move.
func (c *Config) MinGain() float64 { return c.v.GetFloat64("algorithm.min_gain") }

// MaxPasses returns a soft cap on local-optimization passes, for callers
// that want to bound running time externally (spec §5: not provided by
// the core itself).
func (c *Config) MaxPasses() int { return c.v.GetInt("algorithm.max_passes") }

// RandomSeed returns the configured RNG seed, or a time-derived seed if
// none was set (< 0).
func (c *Config) RandomSeed() int64 {
	seed := c.v.GetInt64("algorithm.random_seed")
	if seed < 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// Parallel reports whether the bounded-parallel CPM search is enabled.
func (c *Config) Parallel() bool { return c.v.GetBool("performance.parallel") }

// NumWorkers returns the configured worker count for parallel search.
func (c *Config) NumWorkers() int { return c.v.GetInt("performance.num_workers") }

// LogLevel returns the configured zerolog level name.
func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }

// EnableProgress reports whether progress events should be logged.
func (c *Config) EnableProgress() bool { return c.v.GetBool("logging.enable_progress") }

// Set allows dynamic configuration changes, e.g. from CLI flags.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// CreateLogger builds a zerolog.Logger from the configured level, writing
// to stdout with a console-friendly layout.
func (c *Config) CreateLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "community").Logger()
}
