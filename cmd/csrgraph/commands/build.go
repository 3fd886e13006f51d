// SPDX-License-Identifier: MIT
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/csrgraph/builder"
	"github.com/katalvlaran/csrgraph/core"
	"github.com/katalvlaran/csrgraph/internal/input"
)

func (a *app) buildCmd() *cobra.Command {
	var (
		inputFile  string
		outputFile string
		undirected bool
		noValidate bool
		workers    int
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a CSR graph from a fixture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := input.Load(inputFile)
			if err != nil {
				return err
			}

			opts := append(a.cfg.BuilderOptions(), builder.WithLogger(a.logger))
			if cmd.Flags().Changed("no-validate") {
				opts = append(opts, builder.WithValidation(!noValidate))
			}
			if cmd.Flags().Changed("workers") {
				if workers < 1 {
					return fmt.Errorf("--workers must be ≥ 1, got %d", workers)
				}
				opts = append(opts, builder.WithWorkers(workers))
			}
			if !cmd.Flags().Changed("undirected") {
				undirected = a.cfg.Undirected
			}

			var g *core.Graph
			if undirected {
				g, err = builder.BuildUndirected(in, opts...)
			} else {
				g, err = builder.BuildDirected(in, opts...)
			}
			if err != nil {
				return fmt.Errorf("build failed: %w", err)
			}

			if outputFile != "" {
				if err := writeSnapshot(outputFile, g); err != nil {
					return err
				}
				a.logger.Info("snapshot written", "file", outputFile)
			}

			return renderStats(cmd.OutOrStdout(), inputFile, g.Stats())
		},
	}
	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "input fixture (YAML)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write a msgpack snapshot to this file")
	cmd.Flags().BoolVar(&undirected, "undirected", false, "symmetrize edges before building")
	cmd.Flags().BoolVar(&noValidate, "no-validate", false, "skip value validation")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (default GOMAXPROCS)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func writeSnapshot(path string, g *core.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	return core.WriteSnapshot(f, g)
}
