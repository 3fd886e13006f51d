// SPDX-License-Identifier: MIT
// Package core defines the identifier types, the name↔id Vocabulary, and the
// immutable CSR-style Graph produced by the builder package.
//
// This file declares the identifier aliases, EdgeKey, Graph, and the sentinel
// errors returned by read-only queries.
//
// Errors:
//
//	ErrNodeOutOfRange  - node id is not in [0, NodeCount()).
//	ErrEdgeOutOfRange  - edge position is not in [0, EdgeCount()).
//	ErrEdgeNotFound    - (source, destination) pair is not in the dedup index.
//	ErrNoWeights       - weight requested from an unweighted graph.
//	ErrNoNodeTypes     - node type requested from a graph without node types.
//	ErrNoEdgeTypes     - edge type requested from a graph without edge types.
//	ErrDuplicateName   - a vocabulary was constructed with a repeated name.
//	ErrVocabularyOverflow - more names than the vocabulary's id type can address.
//	ErrCorruptSnapshot - a snapshot failed structural verification.
package core

import "errors"

// Sentinel errors for core graph queries.
var (
	// ErrNodeOutOfRange indicates a node id outside [0, NodeCount()).
	ErrNodeOutOfRange = errors.New("core: node id out of range")

	// ErrEdgeOutOfRange indicates an edge position outside [0, EdgeCount()).
	ErrEdgeOutOfRange = errors.New("core: edge position out of range")

	// ErrEdgeNotFound indicates that no edge with the requested endpoints exists.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNoWeights indicates that the graph was built without weights.
	ErrNoWeights = errors.New("core: graph has no weights")

	// ErrNoNodeTypes indicates that the graph was built without node types.
	ErrNoNodeTypes = errors.New("core: graph has no node types")

	// ErrNoEdgeTypes indicates that the graph was built without edge types.
	ErrNoEdgeTypes = errors.New("core: graph has no edge types")

	// ErrDuplicateName indicates a repeated name while building a Vocabulary.
	ErrDuplicateName = errors.New("core: duplicate vocabulary name")

	// ErrVocabularyOverflow indicates more names than distinct ids of the
	// vocabulary's index type.
	ErrVocabularyOverflow = errors.New("core: vocabulary overflows id type")

	// ErrCorruptSnapshot indicates a snapshot whose arrays are inconsistent.
	ErrCorruptSnapshot = errors.New("core: corrupt snapshot")
)

// NodeT is a dense node identifier in [0, NodeCount()).
type NodeT = uint32

// NodeTypeT is an optional per-node type tag.
type NodeTypeT = uint16

// EdgeTypeT is an optional per-edge type tag.
type EdgeTypeT = uint16

// WeightT is an optional per-edge weight. Validated weights are finite and > 0.
type WeightT = float64

// EdgeT is an edge position: an index into the sorted edge arrays.
type EdgeT = int

// EdgeKey identifies a directed edge by its endpoints.
type EdgeKey struct {
	Src NodeT
	Dst NodeT
}

// IsSelfLoop reports whether the edge starts and ends at the same node.
func (k EdgeKey) IsSelfLoop() bool { return k.Src == k.Dst }

// Graph is an immutable, CSR-style graph.
//
// The edge arrays (sources, destinations, weights, edgeTypes) are co-indexed by
// edge position and sorted ascending by source id. offsets has one entry per
// node: offsets[i] is the number of edges whose source is ≤ i, so the outgoing
// range of node i is [offsets[i-1], offsets[i]) with offsets[-1] = 0.
//
// A Graph owns every slice and map it references. No method mutates it, so a
// *Graph may be shared across goroutines without synchronization.
type Graph struct {
	directed bool

	// Node side.
	nodes         Vocabulary[NodeT]
	nodeTypes     []NodeTypeT            // nil when absent
	nodeTypeVocab *Vocabulary[NodeTypeT] // pass-through, may be nil

	// Edge side, sorted by source.
	sources       []NodeT
	destinations  []NodeT
	weights       []WeightT              // nil when absent
	edgeTypes     []EdgeTypeT            // nil when absent
	edgeTypeVocab *Vocabulary[EdgeTypeT] // pass-through, may be nil

	// index maps (src,dst) to the position of its last input occurrence.
	index map[EdgeKey]EdgeT
	// offsets[i] = number of edges with source ≤ i; len == NodeCount().
	offsets []EdgeT
}
