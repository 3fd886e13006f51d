// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for csrgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures assembled directly from sorted
//     arrays, so core tests do not depend on the builder package.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csrgraph/core"
)

// Node ids of the fixture graph.
const (
	NodeA core.NodeT = iota
	NodeB
	NodeC
	NodeD
)

// fixtureParts returns a 4-node directed graph in sorted layout:
//
//	A→B (1.5, knows)  A→C (2, knows)  B→C (3, likes)  D→D (4, likes)  D→A (5, knows)
//
// C is a trap node; D carries a self-loop.
func fixtureParts(t testing.TB) core.Parts {
	t.Helper()
	nodes, err := core.NewVocabulary[core.NodeT]([]string{"A", "B", "C", "D"})
	require.NoError(t, err)
	ntv, err := core.NewVocabulary[core.NodeTypeT]([]string{"person", "place"})
	require.NoError(t, err)
	etv, err := core.NewVocabulary[core.EdgeTypeT]([]string{"knows", "likes"})
	require.NoError(t, err)

	src := []core.NodeT{NodeA, NodeA, NodeB, NodeD, NodeD}
	dst := []core.NodeT{NodeB, NodeC, NodeC, NodeD, NodeA}

	return core.Parts{
		Directed:           true,
		Nodes:              nodes,
		NodeTypes:          []core.NodeTypeT{0, 0, 1, 0},
		NodeTypeVocabulary: &ntv,
		Sources:            src,
		Destinations:       dst,
		Weights:            []core.WeightT{1.5, 2, 3, 4, 5},
		EdgeTypes:          []core.EdgeTypeT{0, 0, 1, 1, 0},
		EdgeTypeVocabulary: &etv,
		Index:              core.LastWinsIndex(src, dst),
		Offsets:            core.CountOffsets(src, nodes.Len()),
	}
}

// fixtureGraph assembles fixtureParts.
func fixtureGraph(t testing.TB) *core.Graph {
	t.Helper()
	return core.Assemble(fixtureParts(t))
}

// bareGraph returns a graph without any optional side data.
func bareGraph(t testing.TB) *core.Graph {
	t.Helper()
	p := fixtureParts(t)
	p.NodeTypes, p.NodeTypeVocabulary = nil, nil
	p.Weights = nil
	p.EdgeTypes, p.EdgeTypeVocabulary = nil, nil
	return core.Assemble(p)
}
