// SPDX-License-Identifier: MIT
// Package: csrgraph/builder
//
// options.go — functional options for Validate, BuildDirected and BuildUndirected.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors PANIC on meaningless inputs (nil logger, workers < 1);
//     the build functions themselves never panic on user data.
//   • Later options override earlier ones.

package builder

import "log/slog"

// Option customizes a build or validation call.
type Option func(*builderConfig)

const (
	panicNilLogger  = "builder: WithLogger: logger must not be nil"
	panicBadWorkers = "builder: WithWorkers: workers must be ≥ 1"
	panicBadGrain   = "builder: WithGrain: grain must be ≥ 1"
)

// WithoutValidation skips the value checks of Validate. Length guards that
// keep co-indexed arrays addressable still run.
func WithoutValidation() Option {
	return WithValidation(false)
}

// WithValidation turns input validation on (the default) or off.
func WithValidation(enabled bool) Option {
	return func(c *builderConfig) { c.validate = enabled }
}

// WithLogger routes diagnostic logging to l.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(c *builderConfig) { c.logger = l }
}

// WithWorkers bounds the number of goroutines used by the parallel passes.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicBadWorkers)
	}
	return func(c *builderConfig) { c.pool.Workers = n }
}

// WithGrain sets the minimum number of elements handed to one goroutine.
// Small values force parallel execution on small inputs.
// Panics if n < 1.
func WithGrain(n int) Option {
	if n < 1 {
		panic(panicBadGrain)
	}
	return func(c *builderConfig) { c.pool.Grain = n }
}
