// internal/config/env.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"go-astar-visualizer/pkg/gridmap"

	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the runtime settings. Values come from the environment
// (optionally a .env file) and may be overridden by command line flags.
type Config struct {
	Rows          int     // Cells per side of the square grid
	Width         int     // Board width in pixels
	Heuristic     string  // Heuristic policy name
	StepsPerFrame int     // Search expansions released per rendered frame
	Seed          int64   // Seed for random barriers, 0 means time based
	Density       float64 // Barrier probability for random scatter
	LogLevel      string  // debug, info, warn or error
	LogFormat     string  // text or json
	MetricsAddr   string  // Debug server address for pprof and /metrics, empty disables it
}

// Defaults returns the settings of the classic 50x50, 800 pixel board.
func Defaults() Config {
	return Config{
		Rows:          DefaultRows,
		Width:         ScreenWidth,
		Heuristic:     DefaultHeuristic,
		StepsPerFrame: DefaultStepsPerFrame,
		Density:       DefaultDensity,
		LogLevel:      "info",
		LogFormat:     "text",
		MetricsAddr:   DefaultMetricsAddr,
	}
}

// Load reads ASTAR_* variables on top of Defaults. A missing .env file is
// not an error. Only parse errors are reported; ranges are checked by
// Validate, after any command line overrides.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		slog.Debug("[CONFIG] .env file not loaded", "error", err)
	}

	cfg := Defaults()
	var err error
	if cfg.Rows, err = getEnvAsInt("ASTAR_ROWS", cfg.Rows); err != nil {
		return Config{}, err
	}
	if cfg.Width, err = getEnvAsInt("ASTAR_WIDTH", cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.StepsPerFrame, err = getEnvAsInt("ASTAR_STEPS_PER_FRAME", cfg.StepsPerFrame); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = getEnvAsInt64("ASTAR_SEED", cfg.Seed); err != nil {
		return Config{}, err
	}
	if cfg.Density, err = getEnvAsFloat("ASTAR_DENSITY", cfg.Density); err != nil {
		return Config{}, err
	}
	cfg.Heuristic = getEnvWithDefault("ASTAR_HEURISTIC", cfg.Heuristic)
	cfg.LogLevel = getEnvWithDefault("ASTAR_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvWithDefault("ASTAR_LOG_FORMAT", cfg.LogFormat)
	cfg.MetricsAddr = getEnvWithDefault("ASTAR_METRICS_ADDR", cfg.MetricsAddr)

	return cfg, nil
}

// LoadWith runs Load, lets override adjust the result, and validates once.
// Values set by override win over invalid environment values.
func LoadWith(override func(*Config), files ...string) (Config, error) {
	cfg, err := Load(files...)
	if err != nil {
		return Config{}, err
	}
	if override != nil {
		override(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and that the heuristic is registered.
func (c Config) Validate() error {
	if c.Rows < 2 {
		return fmt.Errorf("%w: rows must be at least 2, got %d", ErrInvalidConfig, c.Rows)
	}
	if c.Width < c.Rows {
		return fmt.Errorf("%w: width %d is smaller than rows %d", ErrInvalidConfig, c.Width, c.Rows)
	}
	if c.StepsPerFrame < 1 {
		return fmt.Errorf("%w: steps per frame must be positive, got %d", ErrInvalidConfig, c.StepsPerFrame)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("%w: density %.2f outside [0,1]", ErrInvalidConfig, c.Density)
	}
	if _, err := gridmap.HeuristicByName(c.Heuristic); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// CellSize is the pixel side of one cell.
func (c Config) CellSize() int {
	return c.Width / c.Rows
}

// BoardWidth is Width rounded down to a whole number of cells.
func (c Config) BoardWidth() int {
	return c.CellSize() * c.Rows
}

func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	return n, nil
}

func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	return n, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number: %v", ErrInvalidConfig, key, err)
	}
	return f, nil
}
