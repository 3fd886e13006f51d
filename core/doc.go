// SPDX-License-Identifier: MIT

// Package core provides the immutable, CSR-style Graph produced by the builder
// package, together with its identifier types and name↔id Vocabulary.
//
// Layout G = (V,E):
//
//   - Nodes are dense ids in [0, NodeCount()), named through Vocabulary[NodeT].
//   - Edges are stored as co-indexed arrays sources/destinations (+ optional
//     weights and edge types), sorted ascending by source.
//   - offsets[i] counts the edges whose source is ≤ i, so the outgoing edges
//     of node i occupy positions [offsets[i-1], offsets[i]) with offsets[-1] = 0.
//   - A dedup index maps each (source, destination) pair to one edge position,
//     the last occurrence of the pair in the builder's input. Duplicate edges
//     stay in the arrays; only the lookup collapses.
//
// Why immutable?
//
//   - A Graph is created in one call (builder.BuildDirected / BuildUndirected
//     or ReadSnapshot) and never changes afterwards. Reads need no locks and a
//     *Graph can be shared freely across goroutines.
//   - To reflect a change, build a new Graph.
//
// Core Methods:
//
//	// Counts & flags
//	NodeCount() int                               // O(1)
//	EdgeCount() int                               // O(1)
//	Directed() bool                               // O(1)
//
//	// Neighborhoods
//	NeighborRange(n NodeT) (lo, hi EdgeT, err)    // O(1)
//	Neighbors(n NodeT) ([]NodeT, error)           // O(deg)
//
//	// Edge lookup
//	HasEdge(src, dst NodeT) bool                  // O(1) avg
//	EdgeID(src, dst NodeT) (EdgeT, error)         // O(1) avg
//
//	// Bulk access
//	Sources(), Destinations(), Weights(), EdgeTypes(), Offsets() // copies
//	EdgesSeq() iter.Seq2[EdgeT, EdgeKey]                          // zero-copy
//
//	// Serialization
//	WriteSnapshot(w, g) / ReadSnapshot(r)
//
// Errors are package sentinels wrapped with method context; branch with errors.Is.
package core
