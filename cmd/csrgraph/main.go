// SPDX-License-Identifier: MIT

// Package main provides the csrgraph CLI tool.
//
// Usage:
//
//	csrgraph [flags] <command> [args]
//
// Commands:
//
//	validate - check a YAML graph fixture without building it
//	build    - build a CSR graph, print its stats, optionally write a snapshot
//	inspect  - read a snapshot and print stats or a node's neighborhood
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/csrgraph/cmd/csrgraph/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
