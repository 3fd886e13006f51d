// SPDX-License-Identifier: MIT
//
// File: assemble.go
// Role: The single construction path for Graph values.
// Policy:
//   - Assemble takes ownership of every slice and map in Parts; callers must not
//     touch them afterwards.
//   - Assemble does not sort or validate. builder.BuildDirected and ReadSnapshot
//     establish the invariants before calling it.

package core

// Parts carries the already-ordered arrays of a Graph.
type Parts struct {
	// Directed is false for graphs produced by symmetrization.
	Directed bool

	Nodes              Vocabulary[NodeT]
	NodeTypes          []NodeTypeT
	NodeTypeVocabulary *Vocabulary[NodeTypeT]

	// Sources must be sorted ascending; the other edge arrays are co-indexed.
	Sources            []NodeT
	Destinations       []NodeT
	Weights            []WeightT
	EdgeTypes          []EdgeTypeT
	EdgeTypeVocabulary *Vocabulary[EdgeTypeT]

	// Index maps each (src,dst) pair to an edge position in the sorted arrays.
	Index map[EdgeKey]EdgeT
	// Offsets has len(Nodes.Names) cumulative counts over Sources.
	Offsets []EdgeT
}

// Assemble wraps p into an immutable Graph.
// Complexity: O(1).
func Assemble(p Parts) *Graph {
	index := p.Index
	if index == nil {
		index = make(map[EdgeKey]EdgeT)
	}
	offsets := p.Offsets
	if offsets == nil {
		offsets = []EdgeT{}
	}

	return &Graph{
		directed:      p.Directed,
		nodes:         p.Nodes,
		nodeTypes:     p.NodeTypes,
		nodeTypeVocab: p.NodeTypeVocabulary,
		sources:       p.Sources,
		destinations:  p.Destinations,
		weights:       p.Weights,
		edgeTypes:     p.EdgeTypes,
		edgeTypeVocab: p.EdgeTypeVocabulary,
		index:         index,
		offsets:       offsets,
	}
}

// CountOffsets returns the cumulative per-node edge counts of sorted sources:
// out[i] is the number of entries with source ≤ i. Sources ≥ nodeCount are not
// counted. It is the sequential reference for builder's parallel pass.
// Complexity: O(V + E).
func CountOffsets(sortedSources []NodeT, nodeCount int) []EdgeT {
	out := make([]EdgeT, nodeCount)
	for _, s := range sortedSources {
		if int(s) < nodeCount {
			out[s]++
		}
	}
	for i := 1; i < nodeCount; i++ {
		out[i] += out[i-1]
	}

	return out
}

// LastWinsIndex maps each (src,dst) pair to its last position in the given
// co-indexed endpoint arrays.
// Complexity: O(E).
func LastWinsIndex(sources, destinations []NodeT) map[EdgeKey]EdgeT {
	index := make(map[EdgeKey]EdgeT, len(sources))
	for i := range sources {
		index[EdgeKey{Src: sources[i], Dst: destinations[i]}] = i
	}

	return index
}
