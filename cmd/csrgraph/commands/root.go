// SPDX-License-Identifier: MIT

// Package commands implements the csrgraph subcommands.
package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/csrgraph/internal/config"
)

// app carries global flag values and the state resolved from them.
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd assembles a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "csrgraph",
		Short: "Build and inspect compressed sparse row graphs",
		Long: `csrgraph - validate raw edge lists and turn them into immutable CSR graphs.

Input fixtures are YAML documents listing node names and co-indexed edge arrays
whose endpoints are dense node ids. Built graphs can be written as msgpack
snapshots and inspected later.

Examples:
  # Check a fixture
  csrgraph validate -f graph.yaml

  # Build an undirected graph with 4 workers and keep the snapshot
  csrgraph build -f graph.yaml --undirected --workers 4 -o graph.msgpack

  # List the neighbors of a node
  csrgraph inspect -f graph.msgpack --node alice
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(a.validateCmd())
	root.AddCommand(a.buildCmd())
	root.AddCommand(a.inspectCmd())

	return root
}

// init loads the config file and sets up logging on stderr.
func (a *app) init(stderr io.Writer) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if a.verbose {
		level = slog.LevelDebug
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return nil
}
