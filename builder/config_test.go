// SPDX-License-Identifier: MIT

// Package builder contains unit tests for the configuration primitives
// (builderConfig and Option) to ensure correct defaults and override behavior.
package builder

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csrgraph/internal/parallel"
)

// TestConfigDefaults verifies the documented defaults.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.True(t, cfg.validate, "validation must be on by default")
	assert.Same(t, slog.Default(), cfg.logger)
	assert.Equal(t, parallel.Default(), cfg.pool)
}

// TestConfigOverrides verifies that later options win and nil options are skipped.
func TestConfigOverrides(t *testing.T) {
	t.Parallel()

	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := newBuilderConfig(
		WithoutValidation(),
		nil,
		WithLogger(l),
		WithWorkers(3),
		WithGrain(5),
		WithWorkers(2),
	)
	assert.False(t, cfg.validate)
	assert.Same(t, l, cfg.logger)
	assert.Equal(t, parallel.Pool{Workers: 2, Grain: 5}, cfg.pool)

	cfg = newBuilderConfig(WithoutValidation(), WithValidation(true))
	assert.True(t, cfg.validate)
}

// TestOptionPanics verifies that nonsensical option values panic at construction.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, panicNilLogger, func() { WithLogger(nil) })
	require.PanicsWithValue(t, panicBadWorkers, func() { WithWorkers(0) })
	require.PanicsWithValue(t, panicBadGrain, func() { WithGrain(-1) })
}
