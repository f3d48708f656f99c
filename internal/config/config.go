// Package config loads the process-wide numeric settings.
package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/dimension/internal/core/observability/log"
	"github.com/zeusync/dimension/pkg/quantity"
)

var (
	ErrInvalidPrecision = errors.New("invalid precision")
	ErrInvalidLevel     = errors.New("invalid log level")
)

// Config is read from YAML first; environment variables override it.
type Config struct {
	// Precision is the number of significant decimal digits used by quantity
	// equality, ordering and hashing.
	Precision int    `yaml:"precision" env:"DIMENSION_PRECISION"`
	LogLevel  string `yaml:"log_level" env:"DIMENSION_LOG_LEVEL"`
}

func Default() Config {
	return Config{
		Precision: quantity.DefaultPrecision,
		LogLevel:  log.LevelInfo.String(),
	}
}

// LoadYAML decodes r over the defaults. An empty document keeps them.
func LoadYAML(r io.Reader) (Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode yaml: %w", err)
	}
	return cfg, nil
}

// Load reads r, applies environment overrides and validates the result.
func Load(r io.Reader) (Config, error) {
	cfg, err := LoadYAML(r)
	if err != nil {
		return Config{}, err
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Precision < quantity.MinPrecision || c.Precision > quantity.MaxPrecision {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidPrecision, c.Precision, quantity.MinPrecision, quantity.MaxPrecision)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.LevelInfo, fmt.Errorf("%w: %w", ErrInvalidLevel, err)
	}
	return level, nil
}

// Apply installs the precision process-wide and sets the logger level. It
// returns the precision that was in effect before.
func Apply(c Config, logger log.Log) (int, error) {
	if err := c.Validate(); err != nil {
		return quantity.Precision(), err
	}
	level, _ := c.Level()
	logger.SetLevel(level)

	previous := quantity.SetPrecision(c.Precision)
	logger.Info("precision applied",
		log.Int("digits", c.Precision),
		log.Int("previous", previous),
		log.Float64("tolerance", quantity.Tolerance()),
		log.String("level", level.String()),
	)
	return previous, nil
}
