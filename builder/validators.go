// SPDX-License-Identifier: MIT
// Package: csrgraph/builder
//
// validators.go — structural and numeric checks run before an Input is trusted.
//
// Validate runs its checks in a fixed order and stops at the first failure:
//
//	1. node mapping: len(Nodes.Map) == len(Nodes.Names)
//	2. destinations: len(Destinations) == len(Sources)
//	3. node types:   len(NodeTypes) == len(Nodes.Names)              (if present)
//	4. endpoints:    every source, then every destination, < len(NodeTypes)
//	                 (if node types are present; skipped otherwise)
//	5. weights:      len(Weights) == len(Sources), then per position:
//	                 zero → negative → NaN → infinite               (if present)
//	6. edge types:   len(EdgeTypes) == len(Sources)                  (if present)
//
// Without node types, endpoints are not checked against the node mapping.

package builder

import (
	"math"

	"github.com/katalvlaran/csrgraph/core"
)

// Validate checks in against the invariants listed above and returns the
// first violation as a *ValidationError, or nil.
//
// It has no side effects other than a Debug log line on failure.
// Complexity: O(V + E) time, O(1) extra space.
func Validate(in Input, opts ...Option) error {
	cfg := newBuilderConfig(opts...)
	if err := validate(in); err != nil {
		cfg.logger.Debug("builder: input rejected",
			"err", err,
			"nodes", len(in.Nodes.Names),
			"edges", len(in.Sources))
		return err
	}

	return nil
}

func validate(in Input) error {
	if len(in.Nodes.Map) != len(in.Nodes.Names) {
		return lengthMismatch(FieldNodeMapping, len(in.Nodes.Map), len(in.Nodes.Names))
	}
	if len(in.Destinations) != len(in.Sources) {
		return lengthMismatch(FieldDestinations, len(in.Destinations), len(in.Sources))
	}
	if in.NodeTypes != nil {
		if len(in.NodeTypes) != len(in.Nodes.Names) {
			return lengthMismatch(FieldNodeTypes, len(in.NodeTypes), len(in.Nodes.Names))
		}
		if err := validateEndpoints(FieldSources, in.Sources, len(in.NodeTypes)); err != nil {
			return err
		}
		if err := validateEndpoints(FieldDestinations, in.Destinations, len(in.NodeTypes)); err != nil {
			return err
		}
	}
	if in.Weights != nil {
		if len(in.Weights) != len(in.Sources) {
			return lengthMismatch(FieldWeights, len(in.Weights), len(in.Sources))
		}
		if err := validateWeights(in.Weights); err != nil {
			return err
		}
	}
	if in.EdgeTypes != nil && len(in.EdgeTypes) != len(in.Sources) {
		return lengthMismatch(FieldEdgeTypes, len(in.EdgeTypes), len(in.Sources))
	}

	return nil
}

// validateEndpoints rejects the first node id ≥ bound.
func validateEndpoints(field string, nodes []core.NodeT, bound int) error {
	for i, n := range nodes {
		if int(n) >= bound {
			return danglingNode(field, i, n, bound)
		}
	}
	return nil
}

// validateWeights rejects the first weight outside (0, +Inf).
func validateWeights(weights []core.WeightT) error {
	for i, w := range weights {
		switch {
		case w == 0:
			return badWeight(ErrZeroWeight, i, w)
		case w < 0:
			return badWeight(ErrNegativeWeight, i, w)
		case math.IsNaN(w):
			return badWeight(ErrNaNWeight, i, w)
		case math.IsInf(w, 0):
			return badWeight(ErrInfiniteWeight, i, w)
		}
	}
	return nil
}

// checkShape is the guard that still runs when validation is disabled: it
// keeps every co-indexed gather in bounds.
func checkShape(in Input) error {
	if len(in.Destinations) != len(in.Sources) {
		return lengthMismatch(FieldDestinations, len(in.Destinations), len(in.Sources))
	}
	if in.Weights != nil && len(in.Weights) != len(in.Sources) {
		return lengthMismatch(FieldWeights, len(in.Weights), len(in.Sources))
	}
	if in.EdgeTypes != nil && len(in.EdgeTypes) != len(in.Sources) {
		return lengthMismatch(FieldEdgeTypes, len(in.EdgeTypes), len(in.Sources))
	}
	return nil
}
