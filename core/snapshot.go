// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: msgpack codec for built graphs, for bulk consumers that ship a Graph
//       between processes.
// Policy:
//   - The dedup index is not written; ReadSnapshot rebuilds it from the sorted
//     arrays with last-wins in position order.
//   - ReadSnapshot never trusts the payload: lengths, ordering and offsets are
//     re-verified before Assemble.

package core

import (
	"fmt"
	"io"
	"slices"

	"github.com/vmihailenco/msgpack/v5"
)

// SnapshotVersion is the format version written by WriteSnapshot.
const SnapshotVersion = 1

type snapshot struct {
	Version  int  `msgpack:"version"`
	Directed bool `msgpack:"directed"`

	Nodes         Vocabulary[NodeT]      `msgpack:"nodes"`
	HasNodeTypes  bool                   `msgpack:"has_node_types"`
	NodeTypes     []NodeTypeT            `msgpack:"node_types"`
	NodeTypeVocab *Vocabulary[NodeTypeT] `msgpack:"node_type_vocab"`

	Sources       []NodeT                `msgpack:"sources"`
	Destinations  []NodeT                `msgpack:"destinations"`
	HasWeights    bool                   `msgpack:"has_weights"`
	Weights       []WeightT              `msgpack:"weights"`
	HasEdgeTypes  bool                   `msgpack:"has_edge_types"`
	EdgeTypes     []EdgeTypeT            `msgpack:"edge_types"`
	EdgeTypeVocab *Vocabulary[EdgeTypeT] `msgpack:"edge_type_vocab"`

	Offsets []EdgeT `msgpack:"offsets"`
}

// WriteSnapshot encodes g to w.
//
// Complexity: O(V + E).
func WriteSnapshot(w io.Writer, g *Graph) error {
	snap := snapshot{
		Version:       SnapshotVersion,
		Directed:      g.directed,
		Nodes:         g.nodes,
		HasNodeTypes:  g.nodeTypes != nil,
		NodeTypes:     g.nodeTypes,
		NodeTypeVocab: g.nodeTypeVocab,
		Sources:       g.sources,
		Destinations:  g.destinations,
		HasWeights:    g.weights != nil,
		Weights:       g.weights,
		HasEdgeTypes:  g.edgeTypes != nil,
		EdgeTypes:     g.edgeTypes,
		EdgeTypeVocab: g.edgeTypeVocab,
		Offsets:       g.offsets,
	}
	if err := msgpack.NewEncoder(w).Encode(&snap); err != nil {
		return fmt.Errorf("WriteSnapshot: %w", err)
	}

	return nil
}

// ReadSnapshot decodes and verifies a Graph written by WriteSnapshot.
//
// Errors:
//   - ErrCorruptSnapshot (wrapped) when the version is unknown, co-indexed
//     arrays disagree in length, sources are not ascending, or the stored
//     offsets differ from the ones implied by the sources.
//   - msgpack decoding errors, wrapped.
//
// Complexity: O(V + E).
func ReadSnapshot(r io.Reader) (*Graph, error) {
	var snap snapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("ReadSnapshot: %w", err)
	}
	if err := snap.verify(); err != nil {
		return nil, fmt.Errorf("ReadSnapshot: %w", err)
	}

	p := Parts{
		Directed:           snap.Directed,
		Nodes:              snap.Nodes,
		NodeTypeVocabulary: snap.NodeTypeVocab,
		Sources:            nonNil(snap.Sources),
		Destinations:       nonNil(snap.Destinations),
		EdgeTypeVocabulary: snap.EdgeTypeVocab,
		Offsets:            snap.Offsets,
	}
	if snap.HasNodeTypes {
		p.NodeTypes = nonNil(snap.NodeTypes)
	}
	if snap.HasWeights {
		p.Weights = nonNil(snap.Weights)
	}
	if snap.HasEdgeTypes {
		p.EdgeTypes = nonNil(snap.EdgeTypes)
	}
	p.Index = LastWinsIndex(p.Sources, p.Destinations)

	return Assemble(p), nil
}

func (s *snapshot) verify() error {
	if s.Version != SnapshotVersion {
		return fmt.Errorf("version %d, want %d: %w", s.Version, SnapshotVersion, ErrCorruptSnapshot)
	}
	e := len(s.Sources)
	if len(s.Destinations) != e {
		return fmt.Errorf("%d destinations for %d sources: %w", len(s.Destinations), e, ErrCorruptSnapshot)
	}
	if s.HasWeights && len(s.Weights) != e {
		return fmt.Errorf("%d weights for %d edges: %w", len(s.Weights), e, ErrCorruptSnapshot)
	}
	if s.HasEdgeTypes && len(s.EdgeTypes) != e {
		return fmt.Errorf("%d edge types for %d edges: %w", len(s.EdgeTypes), e, ErrCorruptSnapshot)
	}
	if !slices.IsSorted(s.Sources) {
		return fmt.Errorf("sources not ascending: %w", ErrCorruptSnapshot)
	}
	want := CountOffsets(s.Sources, len(s.Nodes.Names))
	if !slices.Equal(s.Offsets, want) {
		return fmt.Errorf("offsets disagree with sources: %w", ErrCorruptSnapshot)
	}

	return nil
}

// nonNil keeps "present but empty" distinct from "absent" after decoding.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
