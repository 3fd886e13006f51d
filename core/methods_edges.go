// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lookup by (source,destination) via the dedup index, and per-position access.
// Determinism:
//   - EdgesSeq yields positions in ascending order, i.e. grouped by source.

package core

import (
	"fmt"
	"iter"
)

// HasEdge reports whether at least one edge src→dst is stored.
// Complexity: O(1) average.
func (g *Graph) HasEdge(src, dst NodeT) bool {
	_, ok := g.index[EdgeKey{Src: src, Dst: dst}]
	return ok
}

// EdgeID returns the edge position recorded for src→dst in the dedup index.
// When the pair occurred several times in the input, the position is that of
// its last occurrence; every occurrence is still stored in the edge arrays.
// The value is a position in the sorted edge arrays, not an input row.
//
// Errors:
//   - ErrEdgeNotFound if the pair is absent.
//
// Complexity: O(1) average.
func (g *Graph) EdgeID(src, dst NodeT) (EdgeT, error) {
	pos, ok := g.index[EdgeKey{Src: src, Dst: dst}]
	if !ok {
		return 0, fmt.Errorf("EdgeID: %d->%d: %w", src, dst, ErrEdgeNotFound)
	}

	return pos, nil
}

// Edge returns the endpoints stored at position pos.
func (g *Graph) Edge(pos EdgeT) (EdgeKey, error) {
	if err := g.checkPos("Edge", pos); err != nil {
		return EdgeKey{}, err
	}

	return EdgeKey{Src: g.sources[pos], Dst: g.destinations[pos]}, nil
}

// Weight returns the weight stored at position pos.
func (g *Graph) Weight(pos EdgeT) (WeightT, error) {
	if g.weights == nil {
		return 0, fmt.Errorf("Weight: %w", ErrNoWeights)
	}
	if err := g.checkPos("Weight", pos); err != nil {
		return 0, err
	}

	return g.weights[pos], nil
}

// EdgeType returns the edge type stored at position pos.
func (g *Graph) EdgeType(pos EdgeT) (EdgeTypeT, error) {
	if g.edgeTypes == nil {
		return 0, fmt.Errorf("EdgeType: %w", ErrNoEdgeTypes)
	}
	if err := g.checkPos("EdgeType", pos); err != nil {
		return 0, err
	}

	return g.edgeTypes[pos], nil
}

// EdgesSeq iterates over every stored edge in position order without copying.
func (g *Graph) EdgesSeq() iter.Seq2[EdgeT, EdgeKey] {
	return func(yield func(EdgeT, EdgeKey) bool) {
		for i := range g.sources {
			if !yield(i, EdgeKey{Src: g.sources[i], Dst: g.destinations[i]}) {
				return
			}
		}
	}
}

func (g *Graph) checkPos(method string, pos EdgeT) error {
	if pos < 0 || pos >= len(g.sources) {
		return fmt.Errorf("%s: position %d of %d: %w", method, pos, len(g.sources), ErrEdgeOutOfRange)
	}
	return nil
}
