// SPDX-License-Identifier: MIT

// Package config loads the csrgraph CLI configuration file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/csrgraph/builder"
)

// Config holds CLI defaults. Command-line flags override every field.
type Config struct {
	// Workers bounds build parallelism; 0 means GOMAXPROCS.
	Workers int `yaml:"workers,omitempty"`

	// Validate toggles input validation; nil means enabled.
	Validate *bool `yaml:"validate,omitempty"`

	// LogLevel is one of debug, info, warn, error; empty means info.
	LogLevel string `yaml:"log_level,omitempty"`

	// Undirected makes build symmetrize its input by default.
	Undirected bool `yaml:"undirected,omitempty"`
}

// Load reads the config at path. An empty path yields the zero Config.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("config %s: workers must be ≥ 0, got %d", path, cfg.Workers)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}

	return lvl, nil
}

// ValidationEnabled reports whether builds validate their input.
func (c *Config) ValidationEnabled() bool {
	return c.Validate == nil || *c.Validate
}

// BuilderOptions translates the config into builder options.
func (c *Config) BuilderOptions() []builder.Option {
	opts := []builder.Option{builder.WithValidation(c.ValidationEnabled())}
	if c.Workers > 0 {
		opts = append(opts, builder.WithWorkers(c.Workers))
	}

	return opts
}
