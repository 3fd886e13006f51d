// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only facade over an immutable Graph: counts, flags, bulk arrays.
// Policy:
//   - No locks: a Graph is never mutated after Assemble.
//   - Bulk getters return copies so callers cannot alias internal storage.
//     Use EdgesSeq or the per-position getters for zero-copy access.

package core

import "slices"

// Directed reports whether the graph was built with directed semantics.
// Graphs from builder.BuildUndirected report false; their edge arrays hold
// both orientations of every non-loop edge.
// Complexity: O(1).
func (g *Graph) Directed() bool { return g.directed }

// NodeCount returns the number of nodes declared by the node vocabulary.
// Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes.Names) }

// EdgeCount returns the number of stored directed edges, duplicates included.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.sources) }

// UniqueEdgeCount returns the number of distinct (source, destination) pairs.
// Complexity: O(1).
func (g *Graph) UniqueEdgeCount() int { return len(g.index) }

// HasWeights reports whether the graph carries per-edge weights.
func (g *Graph) HasWeights() bool { return g.weights != nil }

// HasNodeTypes reports whether the graph carries per-node types.
func (g *Graph) HasNodeTypes() bool { return g.nodeTypes != nil }

// HasEdgeTypes reports whether the graph carries per-edge types.
func (g *Graph) HasEdgeTypes() bool { return g.edgeTypes != nil }

// Sources returns a copy of the source array, sorted ascending.
//
// Complexity: O(E) time and space.
func (g *Graph) Sources() []NodeT { return slices.Clone(g.sources) }

// Destinations returns a copy of the destination array, co-indexed with Sources.
//
// Complexity: O(E) time and space.
func (g *Graph) Destinations() []NodeT { return slices.Clone(g.destinations) }

// Weights returns a copy of the weight array, or nil if the graph is unweighted.
func (g *Graph) Weights() []WeightT { return slices.Clone(g.weights) }

// EdgeTypes returns a copy of the edge type array, or nil if absent.
func (g *Graph) EdgeTypes() []EdgeTypeT { return slices.Clone(g.edgeTypes) }

// NodeTypes returns a copy of the node type array, or nil if absent.
func (g *Graph) NodeTypes() []NodeTypeT { return slices.Clone(g.nodeTypes) }

// Offsets returns a copy of the offset table (length NodeCount()).
func (g *Graph) Offsets() []EdgeT { return slices.Clone(g.offsets) }

// NodeVocabulary returns a deep copy of the node name↔id mapping.
func (g *Graph) NodeVocabulary() Vocabulary[NodeT] { return g.nodes.Clone() }

// NodeTypeVocabulary returns a deep copy of the node type dictionary, or nil.
func (g *Graph) NodeTypeVocabulary() *Vocabulary[NodeTypeT] { return cloneVocab(g.nodeTypeVocab) }

// EdgeTypeVocabulary returns a deep copy of the edge type dictionary, or nil.
func (g *Graph) EdgeTypeVocabulary() *Vocabulary[EdgeTypeT] { return cloneVocab(g.edgeTypeVocab) }
