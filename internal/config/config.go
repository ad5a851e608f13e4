// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds settings shared by every command.
type Config struct {
	// ChartsDir is a directory of chart YAML files used instead of the
	// embedded charts. Empty means embedded.
	ChartsDir string `env:"DNDTREASURE_CHARTS_DIR"`

	// Seed for random number generation. Used for reproducible hoards.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"DNDTREASURE_SEED" envDefault:"0"`

	Format    string     `env:"DNDTREASURE_FORMAT" envDefault:"text"`
	LogLevel  slog.Level `env:"DNDTREASURE_LOG_LEVEL" envDefault:"WARN"`
	Telemetry bool       `env:"DNDTREASURE_TELEMETRY" envDefault:"false"`
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
