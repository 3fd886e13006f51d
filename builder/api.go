// SPDX-License-Identifier: MIT
// Package: csrgraph/builder
//
// api.go — public entry points: BuildDirected and BuildUndirected.
//
// Design contract:
//   • One pipeline: validate → dedup index ∥ sort permutation → gather → offsets → Assemble.
//   • BuildUndirected only rewrites its input (symmetrize.go) and delegates.
//   • Either a complete *core.Graph or an error; never both, never a partial graph.
//   • The returned Graph shares no memory with the Input.

package builder

import (
	"slices"
	"sync"
	"time"

	"github.com/katalvlaran/csrgraph/core"
	"github.com/katalvlaran/csrgraph/internal/parallel"
)

// Input is the raw material of a Graph as produced by a loader.
//
// Optional arrays are absent when nil; a non-nil empty slice is "present with
// zero entries". Node ids in Sources/Destinations must already be dense
// integers consistent with Nodes: the builder never translates names.
type Input struct {
	// Sources and Destinations are the edge endpoints, co-indexed.
	Sources      []core.NodeT
	Destinations []core.NodeT

	// Nodes is the name↔id mapping; NodeCount is len(Nodes.Names).
	Nodes core.Vocabulary[core.NodeT]

	// NodeTypes has one entry per node when present.
	NodeTypes          []core.NodeTypeT
	NodeTypeVocabulary *core.Vocabulary[core.NodeTypeT]

	// EdgeTypes has one entry per edge when present.
	EdgeTypes          []core.EdgeTypeT
	EdgeTypeVocabulary *core.Vocabulary[core.EdgeTypeT]

	// Weights has one entry per edge when present.
	Weights []core.WeightT
}

// BuildDirected builds an immutable directed Graph from in.
//
// Implementation:
//   - Stage 1: Validate (unless WithoutValidation); its error is returned unchanged.
//   - Stage 2: Concurrently build the dedup index (input order, last occurrence
//     wins) and the permutation sorting edges by source.
//   - Stage 3: Gather sources, destinations, weights and edge types through the
//     permutation; translate dedup entries to sorted positions.
//   - Stage 4: Compute the offset table; assemble.
//
// Ordering among edges sharing a source is not part of the contract.
//
// Complexity: O(E log E + V) work; parallel across the configured workers.
func BuildDirected(in Input, opts ...Option) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	if err := cfg.check(in); err != nil {
		return nil, err
	}

	return build(in, cfg, true), nil
}

// BuildUndirected builds an immutable undirected Graph from in.
//
// Every non-loop edge (s,d) is stored together with a mirrored (d,s) that
// inherits its weight and edge type; self-loops are stored once. Validation
// runs on the original, directed input.
//
// Complexity: O(E log E + V) work on the doubled edge set.
func BuildUndirected(in Input, opts ...Option) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	if err := cfg.check(in); err != nil {
		return nil, err
	}

	return build(symmetrize(cfg.pool, in), cfg, false), nil
}

// check runs full validation or, when disabled, the shape guard.
func (cfg builderConfig) check(in Input) error {
	var err error
	if cfg.validate {
		err = validate(in)
	} else {
		err = checkShape(in)
	}
	if err != nil {
		cfg.logger.Debug("builder: input rejected",
			"err", err,
			"validate", cfg.validate,
			"nodes", len(in.Nodes.Names),
			"edges", len(in.Sources))
	}

	return err
}

// build runs the sort-and-index pipeline on an input that passed check.
func build(in Input, cfg builderConfig, directed bool) *core.Graph {
	start := time.Now()
	pool := cfg.pool

	// The sort forks while the dedup index is built on this goroutine.
	var (
		perm []int
		wg   sync.WaitGroup
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		perm = parallel.SortPermutation(pool, in.Sources)
	}()
	index := core.LastWinsIndex(in.Sources, in.Destinations)
	wg.Wait()

	p := core.Parts{
		Directed:           directed,
		Nodes:              in.Nodes.Clone(),
		NodeTypes:          slices.Clone(in.NodeTypes),
		NodeTypeVocabulary: cloneVocab(in.NodeTypeVocabulary),
		Sources:            parallel.Gather(pool, in.Sources, perm),
		Destinations:       parallel.Gather(pool, in.Destinations, perm),
		EdgeTypeVocabulary: cloneVocab(in.EdgeTypeVocabulary),
	}
	if in.Weights != nil {
		p.Weights = parallel.Gather(pool, in.Weights, perm)
	}
	if in.EdgeTypes != nil {
		p.EdgeTypes = parallel.Gather(pool, in.EdgeTypes, perm)
	}

	// where[i] is the sorted position of input edge i.
	where := make([]core.EdgeT, len(perm))
	parallel.For(pool, len(perm), func(lo, hi int) {
		for j := lo; j < hi; j++ {
			where[perm[j]] = j
		}
	})
	for k, i := range index {
		index[k] = where[i]
	}
	p.Index = index
	p.Offsets = computeOffsets(pool, p.Sources, len(in.Nodes.Names))

	g := core.Assemble(p)
	cfg.logger.Debug("builder: graph built",
		"directed", directed,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"unique_edges", g.UniqueEdgeCount(),
		"elapsed", time.Since(start))

	return g
}

func cloneVocab[T core.Index](v *core.Vocabulary[T]) *core.Vocabulary[T] {
	if v == nil {
		return nil
	}
	c := v.Clone()
	return &c
}
