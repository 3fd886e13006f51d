// SPDX-License-Identifier: MIT
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/csrgraph/builder"
	"github.com/katalvlaran/csrgraph/internal/input"
)

func (a *app) validateCmd() *cobra.Command {
	var inputFile string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a graph fixture without building it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := input.Load(inputFile)
			if err != nil {
				return err
			}
			if err := builder.Validate(in, builder.WithLogger(a.logger)); err != nil {
				return fmt.Errorf("invalid graph: %w", err)
			}
			a.logger.Info("input valid", "file", inputFile, "nodes", len(in.Nodes.Names), "edges", len(in.Sources))
			fmt.Fprintln(cmd.OutOrStdout(), newStyles().OK.Render("valid"))

			return nil
		},
	}
	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "input fixture (YAML)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
