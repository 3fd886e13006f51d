// SPDX-License-Identifier: MIT
package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csrgraph/builder"
	"github.com/katalvlaran/csrgraph/core"
)

const fixture = `
nodes: [alice, bob, carol]
edges:
  sources: [0, 0, 1, 2]
  destinations: [1, 2, 2, 2]
  weights: [1, 2, 3, 4]
  types: [0, 1, 0, 0]
edge_types:
  names: [knows, likes]
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// run executes the command tree with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate", "-f", writeTemp(t, "g.yaml", fixture))
	require.NoError(t, err)
	assert.Contains(t, out, "valid")
}

func TestValidate_Rejects(t *testing.T) {
	bad := writeTemp(t, "bad.yaml", `
nodes: [a, b]
edges:
  sources: [0]
  destinations: [1]
  weights: [0]
`)
	_, err := run(t, "validate", "-f", bad)
	require.ErrorIs(t, err, builder.ErrZeroWeight)
}

func TestValidate_RequiresFile(t *testing.T) {
	_, err := run(t, "validate")
	require.Error(t, err)
}

func TestBuild_StatsAndSnapshot(t *testing.T) {
	dir := t.TempDir()
	snap := filepath.Join(dir, "g.msgpack")
	out, err := run(t, "build", "-f", writeTemp(t, "g.yaml", fixture), "--workers", "2", "-o", snap)
	require.NoError(t, err)
	assert.Contains(t, out, "self loops")
	assert.Contains(t, out, "trap nodes")

	f, err := os.Open(snap)
	require.NoError(t, err)
	defer f.Close()
	g, err := core.ReadSnapshot(f)
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []core.EdgeT{2, 3, 4}, g.Offsets())
}

func TestBuild_Undirected(t *testing.T) {
	snap := filepath.Join(t.TempDir(), "g.msgpack")
	_, err := run(t, "build", "-f", writeTemp(t, "g.yaml", fixture), "--undirected", "-o", snap)
	require.NoError(t, err)

	g, err := readSnapshot(snap)
	require.NoError(t, err)
	assert.False(t, g.Directed())
	// Three non-loop edges mirrored, one self-loop kept once.
	assert.Equal(t, 7, g.EdgeCount())
	assert.True(t, g.HasEdge(2, 0))
}

func TestBuild_ConfigDefaults(t *testing.T) {
	cfg := writeTemp(t, "config.yaml", "undirected: true\nvalidate: false\nworkers: 2\n")
	bad := writeTemp(t, "g.yaml", `
nodes: [a, b]
edges:
  sources: [0]
  destinations: [1]
  weights: [-1]
`)
	snap := filepath.Join(t.TempDir(), "g.msgpack")
	_, err := run(t, "--config", cfg, "build", "-f", bad, "-o", snap)
	require.NoError(t, err)

	g, err := readSnapshot(snap)
	require.NoError(t, err)
	assert.False(t, g.Directed())

	// An explicit flag overrides the config file.
	_, err = run(t, "--config", cfg, "build", "-f", bad, "--no-validate=false")
	require.ErrorIs(t, err, builder.ErrNegativeWeight)
}

func TestBuild_BadWorkers(t *testing.T) {
	_, err := run(t, "build", "-f", writeTemp(t, "g.yaml", fixture), "--workers", "0")
	require.Error(t, err)
}

func TestInspect(t *testing.T) {
	snap := filepath.Join(t.TempDir(), "g.msgpack")
	_, err := run(t, "build", "-f", writeTemp(t, "g.yaml", fixture), "-o", snap)
	require.NoError(t, err)

	out, err := run(t, "inspect", "-f", snap)
	require.NoError(t, err)
	assert.Contains(t, out, "unique edges")

	out, err = run(t, "inspect", "-f", snap, "--node", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "alice (2 out)")
	assert.Contains(t, out, "bob")
	assert.Contains(t, out, "carol")
	assert.Contains(t, out, "likes")

	_, err = run(t, "inspect", "-f", snap, "--node", "mallory")
	require.Error(t, err)
}

func TestInspect_CorruptSnapshot(t *testing.T) {
	_, err := run(t, "inspect", "-f", writeTemp(t, "g.msgpack", "not msgpack"))
	require.Error(t, err)
}

func TestVerboseAndBadConfig(t *testing.T) {
	_, err := run(t, "-v", "validate", "-f", writeTemp(t, "g.yaml", fixture))
	require.NoError(t, err)

	_, err = run(t, "--config", writeTemp(t, "c.yaml", "log_level: loud\n"), "validate", "-f", writeTemp(t, "g.yaml", fixture))
	require.Error(t, err)
}
