// SPDX-License-Identifier: MIT
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/csrgraph/core"
)

func (a *app) inspectCmd() *cobra.Command {
	var (
		snapshotFile string
		node         string
	)
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print stats or a node's neighborhood from a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := readSnapshot(snapshotFile)
			if err != nil {
				return err
			}
			a.logger.Debug("snapshot loaded", "file", snapshotFile, "nodes", g.NodeCount(), "edges", g.EdgeCount())

			if node == "" {
				return renderStats(cmd.OutOrStdout(), snapshotFile, g.Stats())
			}
			id, ok := g.NodeID(node)
			if !ok {
				return fmt.Errorf("unknown node %q", node)
			}

			return renderNeighbors(cmd.OutOrStdout(), g, id)
		},
	}
	cmd.Flags().StringVarP(&snapshotFile, "file", "f", "", "snapshot file (msgpack)")
	cmd.Flags().StringVar(&node, "node", "", "print the neighbors of this node")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func readSnapshot(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	g, err := core.ReadSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
