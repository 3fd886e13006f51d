// SPDX-License-Identifier: MIT
// Package: csrgraph/builder
//
// filters.go — derive a new Graph from an existing one.
//
// Contract:
//   • The source Graph is never modified; every helper reads copies of its
//     arrays and runs them through the directed pipeline again.
//   • The result keeps the source's Directed flag. Edge filters that treat
//     (s,d) and (d,s) alike (self-loops, edge types, weights) keep an
//     undirected graph symmetric; FilterEdges leaves that to its predicate.
//   • Options apply as in BuildDirected: the filtered input is validated
//     unless WithoutValidation is given.
//   • Edges removed by a filter may leave nodes without edges. Nodes are only
//     removed by DropSingletons.

package builder

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/csrgraph/core"
	"github.com/katalvlaran/csrgraph/internal/parallel"
)

// FilterEdges rebuilds g keeping only the edges for which keep returns true.
// keep is called once per stored edge, possibly from several goroutines.
//
// Complexity: O(E log E + V).
func FilterEdges(g *core.Graph, keep func(pos core.EdgeT, e core.EdgeKey) bool, opts ...Option) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	in := inputOf(g)
	mask := parallel.Mask(cfg.pool, len(in.Sources), func(i int) bool {
		return keep(i, core.EdgeKey{Src: in.Sources[i], Dst: in.Destinations[i]})
	})

	return rebuild(filterEdges(cfg.pool, in, mask), cfg, g.Directed())
}

// DropSelfLoops rebuilds g without edges whose source equals their destination.
func DropSelfLoops(g *core.Graph, opts ...Option) (*core.Graph, error) {
	return FilterEdges(g, func(_ core.EdgeT, e core.EdgeKey) bool {
		return !e.IsSelfLoop()
	}, opts...)
}

// FilterEdgeTypes rebuilds g keeping only the edges whose type is in types.
//
// Errors:
//   - core.ErrNoEdgeTypes (wrapped) if g has no edge types.
func FilterEdgeTypes(g *core.Graph, types []core.EdgeTypeT, opts ...Option) (*core.Graph, error) {
	edgeTypes := g.EdgeTypes()
	if edgeTypes == nil {
		return nil, fmt.Errorf("FilterEdgeTypes: %w", core.ErrNoEdgeTypes)
	}

	return FilterEdges(g, func(pos core.EdgeT, _ core.EdgeKey) bool {
		return slices.Contains(types, edgeTypes[pos])
	}, opts...)
}

// FilterWeightRange rebuilds g keeping only the edges with lo ≤ weight ≤ hi.
//
// Errors:
//   - core.ErrNoWeights (wrapped) if g is unweighted.
func FilterWeightRange(g *core.Graph, lo, hi core.WeightT, opts ...Option) (*core.Graph, error) {
	weights := g.Weights()
	if weights == nil {
		return nil, fmt.Errorf("FilterWeightRange: %w", core.ErrNoWeights)
	}

	return FilterEdges(g, func(pos core.EdgeT, _ core.EdgeKey) bool {
		return weights[pos] >= lo && weights[pos] <= hi
	}, opts...)
}

// DropSingletons rebuilds g without nodes that have no incident edge, in
// either direction. A node whose only edges are self-loops is kept.
// Surviving nodes are renumbered densely in their original order; names and
// node types move with them.
//
// Errors:
//   - core.ErrNodeOutOfRange (wrapped) if an edge references a node id
//     ≥ NodeCount(), which only graphs built without node types can hold.
//
// Complexity: O(E log E + V).
func DropSingletons(g *core.Graph, opts ...Option) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	in := inputOf(g)
	n := len(in.Nodes.Names)

	touched := make([]bool, n)
	for i := range in.Sources {
		for _, end := range [2]core.NodeT{in.Sources[i], in.Destinations[i]} {
			if int(end) >= n {
				return nil, fmt.Errorf("DropSingletons: edge %d references node %d of %d: %w", i, end, n, core.ErrNodeOutOfRange)
			}
			touched[end] = true
		}
	}

	newID := make([]core.NodeT, n)
	names := make([]string, 0, n)
	var nodeTypes []core.NodeTypeT
	if in.NodeTypes != nil {
		nodeTypes = make([]core.NodeTypeT, 0, n)
	}
	for old := range n {
		if !touched[old] {
			continue
		}
		newID[old] = core.NodeT(len(names))
		names = append(names, in.Nodes.Names[old])
		if nodeTypes != nil && old < len(in.NodeTypes) {
			nodeTypes = append(nodeTypes, in.NodeTypes[old])
		}
	}

	nodes, err := core.NewVocabulary[core.NodeT](names)
	if err != nil {
		return nil, fmt.Errorf("DropSingletons: %w", err)
	}
	in.Nodes = nodes
	in.NodeTypes = nodeTypes
	parallel.For(cfg.pool, len(in.Sources), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			in.Sources[i] = newID[in.Sources[i]]
			in.Destinations[i] = newID[in.Destinations[i]]
		}
	})

	return rebuild(in, cfg, g.Directed())
}

// inputOf copies the arrays of g into a fresh Input.
func inputOf(g *core.Graph) Input {
	return Input{
		Sources:            g.Sources(),
		Destinations:       g.Destinations(),
		Nodes:              g.NodeVocabulary(),
		NodeTypes:          g.NodeTypes(),
		NodeTypeVocabulary: g.NodeTypeVocabulary(),
		EdgeTypes:          g.EdgeTypes(),
		EdgeTypeVocabulary: g.EdgeTypeVocabulary(),
		Weights:            g.Weights(),
	}
}

// filterEdges drops every edge i with keep[i] == false from the co-indexed arrays.
func filterEdges(p parallel.Pool, in Input, keep []bool) Input {
	out := in
	out.Sources = parallel.Filter(p, in.Sources, keep)
	out.Destinations = parallel.Filter(p, in.Destinations, keep)
	if in.Weights != nil {
		out.Weights = parallel.Filter(p, in.Weights, keep)
	}
	if in.EdgeTypes != nil {
		out.EdgeTypes = parallel.Filter(p, in.EdgeTypes, keep)
	}

	return out
}

// rebuild checks in and runs the directed pipeline, keeping the directed flag.
func rebuild(in Input, cfg builderConfig, directed bool) (*core.Graph, error) {
	if err := cfg.check(in); err != nil {
		return nil, err
	}

	return build(in, cfg, directed), nil
}
