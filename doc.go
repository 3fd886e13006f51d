// SPDX-License-Identifier: MIT

// Package csrgraph turns raw, unordered edge lists into compact, immutable
// graphs in compressed sparse row (CSR) layout.
//
// The pipeline is raw arrays → Validate (optional) → sort + index → Graph:
//
//	builder/          — Input, Validate, BuildDirected, BuildUndirected, options
//	core/             — Graph, Vocabulary, query API, Stats, msgpack snapshots
//	internal/parallel — fork-join sort, gather and filter helpers
//	cmd/csrgraph      — CLI: validate, build and inspect YAML fixtures
//
// Layout of a built graph with nodes A, B, C and edges C→A, A→B, B→C:
//
//	sources      [0 1 2]
//	destinations [1 2 0]
//	offsets      [1 2 3]   // edges of node i live in [offsets[i-1], offsets[i])
//
// Graphs never change after construction and are safe for concurrent reads.
//
//	go get github.com/katalvlaran/csrgraph
package csrgraph
