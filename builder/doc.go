// SPDX-License-Identifier: MIT
// Package builder turns raw, unordered edge and node arrays into an immutable
// core.Graph.
//
// Pipeline:
//
//	Input ──Validate──▶ dedup index ∥ sort by source ──▶ gather ──▶ offsets ──▶ core.Graph
//
// Entry points:
//
//	Validate(in, opts...) error                    // fixed-order checks, first failure wins
//	BuildDirected(in, opts...) (*core.Graph, error)
//	BuildUndirected(in, opts...) (*core.Graph, error) // mirrors every non-loop edge, then BuildDirected
//
// Rebuilding from an existing graph (the source is never modified):
//
//	FilterEdges(g, keep, opts...)           // keep(pos, edge) decides per stored edge
//	DropSelfLoops(g, opts...)
//	FilterEdgeTypes(g, types, opts...)
//	FilterWeightRange(g, lo, hi, opts...)
//	DropSingletons(g, opts...)              // removes nodes without edges, renumbers the rest
//
// Options:
//
//	WithoutValidation() / WithValidation(bool)  // default: validation on
//	WithLogger(*slog.Logger)                    // default: slog.Default()
//	WithWorkers(n), WithGrain(n)                // fan-out of the parallel passes
//
// Semantics worth knowing:
//
//   - Duplicate (src,dst) rows are all stored; the dedup index keeps the last
//     one in input order.
//   - Relative order of edges sharing a source is unspecified.
//   - Without node types, endpoints are not range-checked against the node
//     mapping. Ids ≥ NodeCount are stored but fall outside every offset range.
//   - Validation errors are *ValidationError values wrapping ErrLengthMismatch,
//     ErrDanglingNodeReference, ErrZeroWeight, ErrNegativeWeight, ErrNaNWeight
//     or ErrInfiniteWeight.
//
// Concurrency: sorting, gathering, filtering and offset computation fork
// across workers that own disjoint output ranges. The call itself is
// synchronous; the returned Graph is safe for concurrent reads.
package builder
