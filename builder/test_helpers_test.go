// SPDX-License-Identifier: MIT
// Package builder_test contains fixtures shared by the builder tests.
package builder_test

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csrgraph/builder"
	"github.com/katalvlaran/csrgraph/core"
)

// parallelOpts forces the forked code paths on tiny inputs.
var parallelOpts = []builder.Option{builder.WithWorkers(4), builder.WithGrain(1)}

// nodes returns a consistent vocabulary for the given names.
func nodes(t testing.TB, names ...string) core.Vocabulary[core.NodeT] {
	t.Helper()
	v, err := core.NewVocabulary[core.NodeT](names)
	require.NoError(t, err)
	return v
}

// numberedNodes returns a vocabulary "n0".."n{count-1}".
func numberedNodes(t testing.TB, count int) core.Vocabulary[core.NodeT] {
	t.Helper()
	names := make([]string, count)
	for i := range names {
		names[i] = fmt.Sprintf("n%d", i)
	}
	return nodes(t, names...)
}

// abcInput is the end-to-end fixture: A,B,C with edges C→A, A→B, B→C.
func abcInput(t testing.TB) builder.Input {
	return builder.Input{
		Sources:      []core.NodeT{2, 0, 1},
		Destinations: []core.NodeT{0, 1, 2},
		Nodes:        nodes(t, "A", "B", "C"),
		Weights:      []core.WeightT{1.0, 2.0, 3.0},
	}
}

// randomInput returns a weighted, edge-typed input with duplicates and loops.
func randomInput(t testing.TB, nodeCount, edgeCount int, seed int64) builder.Input {
	rng := rand.New(rand.NewSource(seed))
	in := builder.Input{
		Sources:      make([]core.NodeT, edgeCount),
		Destinations: make([]core.NodeT, edgeCount),
		Nodes:        numberedNodes(t, nodeCount),
		Weights:      make([]core.WeightT, edgeCount),
		EdgeTypes:    make([]core.EdgeTypeT, edgeCount),
	}
	for i := 0; i < edgeCount; i++ {
		in.Sources[i] = core.NodeT(rng.Intn(nodeCount))
		in.Destinations[i] = core.NodeT(rng.Intn(nodeCount))
		in.Weights[i] = 1 + float64(rng.Intn(100))
		in.EdgeTypes[i] = core.EdgeTypeT(rng.Intn(4))
	}
	return in
}

// edgeRecord is one stored edge with its side data.
type edgeRecord struct {
	Src, Dst core.NodeT
	Weight   core.WeightT
	Type     core.EdgeTypeT
}

// records returns the stored edges of g as a sorted multiset.
func records(t testing.TB, g *core.Graph) []edgeRecord {
	t.Helper()
	out := make([]edgeRecord, 0, g.EdgeCount())
	for pos, e := range g.EdgesSeq() {
		r := edgeRecord{Src: e.Src, Dst: e.Dst}
		if g.HasWeights() {
			w, err := g.Weight(pos)
			require.NoError(t, err)
			r.Weight = w
		}
		if g.HasEdgeTypes() {
			et, err := g.EdgeType(pos)
			require.NoError(t, err)
			r.Type = et
		}
		out = append(out, r)
	}
	sortRecords(out)
	return out
}

// inputRecords returns the edges of in as a sorted multiset.
func inputRecords(in builder.Input) []edgeRecord {
	out := make([]edgeRecord, len(in.Sources))
	for i := range in.Sources {
		out[i] = edgeRecord{Src: in.Sources[i], Dst: in.Destinations[i]}
		if in.Weights != nil {
			out[i].Weight = in.Weights[i]
		}
		if in.EdgeTypes != nil {
			out[i].Type = in.EdgeTypes[i]
		}
	}
	sortRecords(out)
	return out
}

func sortRecords(rs []edgeRecord) {
	slices.SortFunc(rs, func(a, b edgeRecord) int {
		switch {
		case a.Src != b.Src:
			return int(a.Src) - int(b.Src)
		case a.Dst != b.Dst:
			return int(a.Dst) - int(b.Dst)
		case a.Type != b.Type:
			return int(a.Type) - int(b.Type)
		case a.Weight < b.Weight:
			return -1
		case a.Weight > b.Weight:
			return 1
		}
		return 0
	})
}

// requireCSR asserts the layout invariants every built graph must satisfy.
func requireCSR(t *testing.T, g *core.Graph) {
	t.Helper()
	src := g.Sources()
	require.True(t, slices.IsSorted(src), "sources must be ascending")

	offsets := g.Offsets()
	require.Len(t, offsets, g.NodeCount())
	prev := 0
	for i := range offsets {
		lo, hi, err := g.NeighborRange(core.NodeT(i))
		require.NoError(t, err)
		require.Equal(t, prev, lo)
		require.Equal(t, offsets[i], hi)
		for pos := lo; pos < hi; pos++ {
			require.EqualValues(t, i, src[pos], "position %d outside node %d range", pos, i)
		}
		prev = hi
	}
}
