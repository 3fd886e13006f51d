// SPDX-License-Identifier: MIT
// Package core_test provides benchmarks for read paths of core.Graph.
package core_test

import (
	"bytes"
	"math/rand"
	"slices"
	"strconv"
	"testing"

	"github.com/katalvlaran/csrgraph/core"
)

// benchGraph assembles a random graph with n nodes and m edges.
func benchGraph(b *testing.B, n, m int) *core.Graph {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	names := make([]string, n)
	for i := range names {
		names[i] = "n" + strconv.Itoa(i)
	}
	nodes, err := core.NewVocabulary[core.NodeT](names)
	if err != nil {
		b.Fatal(err)
	}
	src := make([]core.NodeT, m)
	dst := make([]core.NodeT, m)
	for i := range src {
		src[i] = core.NodeT(rng.Intn(n))
		dst[i] = core.NodeT(rng.Intn(n))
	}
	slices.Sort(src)

	return core.Assemble(core.Parts{
		Directed:     true,
		Nodes:        nodes,
		Sources:      src,
		Destinations: dst,
		Index:        core.LastWinsIndex(src, dst),
		Offsets:      core.CountOffsets(src, n),
	})
}

func BenchmarkNeighbors(b *testing.B) {
	g := benchGraph(b, 10_000, 100_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(core.NodeT(i % 10_000))
	}
}

func BenchmarkHasEdge(b *testing.B) {
	g := benchGraph(b, 10_000, 100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.HasEdge(core.NodeT(i%10_000), core.NodeT((i*7)%10_000))
	}
}

func BenchmarkEdgesSeq(b *testing.B) {
	g := benchGraph(b, 10_000, 100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range g.EdgesSeq() {
		}
	}
}

func BenchmarkSnapshotRoundTrip(b *testing.B) {
	g := benchGraph(b, 10_000, 100_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var buf bytes.Buffer
		if err := core.WriteSnapshot(&buf, g); err != nil {
			b.Fatal(err)
		}
		if _, err := core.ReadSnapshot(&buf); err != nil {
			b.Fatal(err)
		}
	}
}
