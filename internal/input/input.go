// SPDX-License-Identifier: MIT

// Package input decodes YAML graph fixtures into builder.Input.
//
// A fixture lists node names (their position is the node id) and edges as
// dense integer endpoints:
//
//	nodes: [a, b, c]
//	node_types: {names: [person, place], ids: [0, 0, 1]}
//	edges:
//	  sources:      [0, 1]
//	  destinations: [1, 2]
//	  weights:      [1.5, 2]
//	  types:        [0, 0]
//	edge_types: {names: [road]}
//
// Omitted optional arrays stay nil so the builder treats them as absent.
package input

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/csrgraph/builder"
	"github.com/katalvlaran/csrgraph/core"
)

// File is the on-disk fixture layout.
type File struct {
	Nodes     []string   `yaml:"nodes"`
	NodeTypes *NodeTypes `yaml:"node_types,omitempty"`
	Edges     Edges      `yaml:"edges"`
	EdgeTypes *EdgeTypes `yaml:"edge_types,omitempty"`
}

// NodeTypes carries the node type dictionary and one type id per node.
type NodeTypes struct {
	Names []string         `yaml:"names"`
	IDs   []core.NodeTypeT `yaml:"ids"`
}

// Edges carries the co-indexed edge arrays.
type Edges struct {
	Sources      []core.NodeT     `yaml:"sources"`
	Destinations []core.NodeT     `yaml:"destinations"`
	Weights      []core.WeightT   `yaml:"weights,omitempty"`
	Types        []core.EdgeTypeT `yaml:"types,omitempty"`
}

// EdgeTypes carries the edge type dictionary.
type EdgeTypes struct {
	Names []string `yaml:"names"`
}

// Load reads and decodes the fixture at path.
func Load(path string) (builder.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return builder.Input{}, fmt.Errorf("failed to read input: %w", err)
	}
	in, err := Parse(data)
	if err != nil {
		return builder.Input{}, fmt.Errorf("%s: %w", path, err)
	}

	return in, nil
}

// Parse decodes a fixture document.
func Parse(data []byte) (builder.Input, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return builder.Input{}, fmt.Errorf("failed to parse input: %w", err)
	}

	return f.Input()
}

// Input converts the fixture into builder input. Names must be unique
// within each dictionary.
func (f *File) Input() (builder.Input, error) {
	nodes, err := core.NewVocabulary[core.NodeT](f.Nodes)
	if err != nil {
		return builder.Input{}, fmt.Errorf("nodes: %w", err)
	}
	in := builder.Input{
		Nodes:        nodes,
		Sources:      nonNil(f.Edges.Sources),
		Destinations: nonNil(f.Edges.Destinations),
		Weights:      f.Edges.Weights,
		EdgeTypes:    f.Edges.Types,
	}
	if f.NodeTypes != nil {
		v, err := core.NewVocabulary[core.NodeTypeT](f.NodeTypes.Names)
		if err != nil {
			return builder.Input{}, fmt.Errorf("node_types: %w", err)
		}
		in.NodeTypeVocabulary = &v
		in.NodeTypes = nonNil(f.NodeTypes.IDs)
	}
	if f.EdgeTypes != nil {
		v, err := core.NewVocabulary[core.EdgeTypeT](f.EdgeTypes.Names)
		if err != nil {
			return builder.Input{}, fmt.Errorf("edge_types: %w", err)
		}
		in.EdgeTypeVocabulary = &v
	}

	return in, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
