// SPDX-License-Identifier: MIT
// Package: csrgraph/builder
//
// config.go — resolved configuration and deterministic defaults.
//
// Defaults:
//   • validate = true
//   • logger   = slog.Default()
//   • pool     = parallel.Default() (GOMAXPROCS workers, parallel.DefaultGrain)

package builder

import (
	"log/slog"

	"github.com/katalvlaran/csrgraph/internal/parallel"
)

// builderConfig aggregates all knobs; passed by value.
type builderConfig struct {
	validate bool
	logger   *slog.Logger
	pool     parallel.Pool
}

// newBuilderConfig applies opts in order over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		validate: true,
		logger:   slog.Default(),
		pool:     parallel.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
