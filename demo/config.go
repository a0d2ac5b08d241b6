package main

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

// Config holds demo configuration, read from the environment.
type Config struct {
	// Data is a CSV with x, y and optional yerr columns. Empty uses the
	// built-in sample.
	Data      string `envconfig:"SCIERROR_DATA"`
	SkipRows  int    `envconfig:"SCIERROR_SKIP_ROWS" default:"1"`
	Output    string `envconfig:"SCIERROR_OUTPUT"` // JSON fit overlay; empty disables
	FitCSV    string `envconfig:"SCIERROR_FIT_CSV"`
	TableHere bool   `envconfig:"SCIERROR_TABLE_HERE" default:"true"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogDev   bool   `envconfig:"LOG_DEV" default:"false"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// newLogger builds a zap logger writing to stderr so stdout carries only
// results.
func newLogger(cfg *Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.LogDev {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = level
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.DisableStacktrace = !cfg.LogDev

	return zapCfg.Build()
}
