// SPDX-License-Identifier: MIT
//
// File: stats.go
// Role: One-pass structural summary of a Graph for diagnostics and CLIs.

package core

// Stats is a snapshot of structural counters.
type Stats struct {
	Nodes        int  `json:"nodes" yaml:"nodes"`
	Edges        int  `json:"edges" yaml:"edges"`
	UniqueEdges  int  `json:"unique_edges" yaml:"unique_edges"`
	SelfLoops    int  `json:"self_loops" yaml:"self_loops"`
	TrapNodes    int  `json:"trap_nodes" yaml:"trap_nodes"` // nodes without outgoing edges
	MaxOutDegree int  `json:"max_out_degree" yaml:"max_out_degree"`
	Directed     bool `json:"directed" yaml:"directed"`
	Weighted     bool `json:"weighted" yaml:"weighted"`
	NodeTyped    bool `json:"node_typed" yaml:"node_typed"`
	EdgeTyped    bool `json:"edge_typed" yaml:"edge_typed"`
}

// Stats computes the structural summary of g.
// Complexity: O(V + E).
func (g *Graph) Stats() Stats {
	st := Stats{
		Nodes:       g.NodeCount(),
		Edges:       g.EdgeCount(),
		UniqueEdges: g.UniqueEdgeCount(),
		Directed:    g.directed,
		Weighted:    g.HasWeights(),
		NodeTyped:   g.HasNodeTypes(),
		EdgeTyped:   g.HasEdgeTypes(),
	}
	for i := range g.sources {
		if g.sources[i] == g.destinations[i] {
			st.SelfLoops++
		}
	}
	prev := EdgeT(0)
	for _, off := range g.offsets {
		deg := off - prev
		if deg == 0 {
			st.TrapNodes++
		}
		st.MaxOutDegree = max(st.MaxOutDegree, deg)
		prev = off
	}

	return st
}
