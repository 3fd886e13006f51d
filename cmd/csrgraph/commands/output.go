// SPDX-License-Identifier: MIT
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/csrgraph/core"
)

// styles used by the summary renderers.
type styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Dim   lipgloss.Style
	OK    lipgloss.Style
}

func newStyles() styles {
	primary := lipgloss.Color("#00ff9f")
	dim := lipgloss.Color("#6e7681")
	return styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(primary),
		Label: lipgloss.NewStyle().Foreground(dim).Width(16),
		Value: lipgloss.NewStyle().Bold(true),
		Dim:   lipgloss.NewStyle().Foreground(dim),
		OK:    lipgloss.NewStyle().Bold(true).Foreground(primary),
	}
}

// renderStats prints st as an aligned two-column block.
func renderStats(w io.Writer, title string, st core.Stats) error {
	s := newStyles()
	rows := []struct {
		label string
		value any
	}{
		{"nodes", st.Nodes},
		{"edges", st.Edges},
		{"unique edges", st.UniqueEdges},
		{"self loops", st.SelfLoops},
		{"trap nodes", st.TrapNodes},
		{"max out-degree", st.MaxOutDegree},
		{"directed", st.Directed},
		{"weighted", st.Weighted},
		{"node types", st.NodeTyped},
		{"edge types", st.EdgeTyped},
	}

	lines := []string{s.Title.Render(title)}
	for _, r := range rows {
		lines = append(lines, s.Label.Render(r.label)+s.Value.Render(fmt.Sprint(r.value)))
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))

	return err
}

// renderNeighbors prints the outgoing edges of node n, one per line.
func renderNeighbors(w io.Writer, g *core.Graph, n core.NodeT) error {
	s := newStyles()
	name, err := g.NodeName(n)
	if err != nil {
		return err
	}
	lo, hi, err := g.NeighborRange(n)
	if err != nil {
		return err
	}

	etv := g.EdgeTypeVocabulary()
	lines := []string{s.Title.Render(fmt.Sprintf("%s (%d out)", name, hi-lo))}
	for pos := lo; pos < hi; pos++ {
		e, err := g.Edge(pos)
		if err != nil {
			return err
		}
		dst, err := g.NodeName(e.Dst)
		if err != nil {
			dst = fmt.Sprintf("#%d", e.Dst)
		}
		line := "→ " + s.Value.Render(dst)
		if g.HasWeights() {
			wt, _ := g.Weight(pos)
			line += s.Dim.Render(fmt.Sprintf("  w=%g", wt))
		}
		if g.HasEdgeTypes() {
			line += s.Dim.Render("  " + edgeTypeName(g, etv, pos))
		}
		lines = append(lines, line)
	}
	_, err = fmt.Fprintln(w, strings.Join(lines, "\n"))

	return err
}

func edgeTypeName(g *core.Graph, v *core.Vocabulary[core.EdgeTypeT], pos core.EdgeT) string {
	et, err := g.EdgeType(pos)
	if err != nil {
		return ""
	}
	if v != nil {
		if name, ok := v.Name(et); ok {
			return name
		}
	}
	return fmt.Sprintf("type=%d", et)
}
