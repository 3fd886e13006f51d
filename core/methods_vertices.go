// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Per-node queries backed by the offset table.

package core

import "fmt"

// NeighborRange returns the half-open edge-position range [lo, hi) holding the
// outgoing edges of node n in the sorted arrays.
//
// Errors:
//   - ErrNodeOutOfRange if n ≥ NodeCount().
//
// Complexity: O(1).
func (g *Graph) NeighborRange(n NodeT) (lo, hi EdgeT, err error) {
	if int(n) >= len(g.offsets) {
		return 0, 0, fmt.Errorf("NeighborRange: node %d of %d: %w", n, len(g.offsets), ErrNodeOutOfRange)
	}
	if n > 0 {
		lo = g.offsets[n-1]
	}

	return lo, g.offsets[n], nil
}

// OutDegree returns the number of stored outgoing edges of n, duplicates included.
// Complexity: O(1).
func (g *Graph) OutDegree(n NodeT) (int, error) {
	lo, hi, err := g.NeighborRange(n)
	if err != nil {
		return 0, fmt.Errorf("OutDegree: %w", err)
	}

	return hi - lo, nil
}

// Neighbors returns a copy of the destinations reachable from n in one hop.
// Order among them is unspecified.
// Complexity: O(deg(n)).
func (g *Graph) Neighbors(n NodeT) ([]NodeT, error) {
	lo, hi, err := g.NeighborRange(n)
	if err != nil {
		return nil, fmt.Errorf("Neighbors: %w", err)
	}
	out := make([]NodeT, hi-lo)
	copy(out, g.destinations[lo:hi])

	return out, nil
}

// NodeName translates a node id back to its name.
func (g *Graph) NodeName(n NodeT) (string, error) {
	name, ok := g.nodes.Name(n)
	if !ok {
		return "", fmt.Errorf("NodeName: node %d of %d: %w", n, g.NodeCount(), ErrNodeOutOfRange)
	}

	return name, nil
}

// NodeID translates a node name to its id.
func (g *Graph) NodeID(name string) (NodeT, bool) { return g.nodes.ID(name) }

// NodeType returns the type tag of node n.
//
// Errors:
//   - ErrNoNodeTypes when the graph has no node types.
//   - ErrNodeOutOfRange when n has no entry in the node type array.
func (g *Graph) NodeType(n NodeT) (NodeTypeT, error) {
	if g.nodeTypes == nil {
		return 0, fmt.Errorf("NodeType: %w", ErrNoNodeTypes)
	}
	if int(n) >= len(g.nodeTypes) {
		return 0, fmt.Errorf("NodeType: node %d of %d: %w", n, len(g.nodeTypes), ErrNodeOutOfRange)
	}

	return g.nodeTypes[n], nil
}
