// SPDX-License-Identifier: MIT
// Package: csrgraph/builder
//
// errors.go — sentinel errors and the typed ValidationError.
//
// Error policy:
//   • Every validation failure is a *ValidationError whose Unwrap returns one
//     of the sentinels below. Branch with errors.Is(err, ErrX); extract the
//     offending field, position and value with errors.As.
//   • The message embeds the offending counts or value.
//   • Validation errors are returned unchanged by BuildDirected/BuildUndirected;
//     no partial Graph is ever returned next to an error.
//   • Nothing panics on user input. Option constructors (WithX) panic on
//     nonsensical arguments, which are programmer errors.

package builder

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch indicates that two co-indexed arrays disagree in length.
// ValidationError.Field names the array that was checked.
var ErrLengthMismatch = errors.New("builder: length mismatch")

// ErrDanglingNodeReference indicates an edge endpoint outside the node type
// array. Only checked when node types are supplied.
var ErrDanglingNodeReference = errors.New("builder: dangling node reference")

// ErrZeroWeight indicates a weight equal to 0.
var ErrZeroWeight = errors.New("builder: zero weight")

// ErrNegativeWeight indicates a weight below 0 (including -Inf).
var ErrNegativeWeight = errors.New("builder: negative weight")

// ErrNaNWeight indicates a NaN weight.
var ErrNaNWeight = errors.New("builder: NaN weight")

// ErrInfiniteWeight indicates a +Inf weight.
var ErrInfiniteWeight = errors.New("builder: infinite weight")

// Field names reported with ErrLengthMismatch.
const (
	FieldNodeMapping  = "node mapping"
	FieldDestinations = "destinations"
	FieldNodeTypes    = "node types"
	FieldWeights      = "weights"
	FieldEdgeTypes    = "edge types"
	FieldSources      = "sources"
)

// ValidationError describes the first invariant violation found in an Input.
type ValidationError struct {
	// Kind is the sentinel this error unwraps to.
	Kind error
	// Field is the array that failed the check.
	Field string
	// Index is the offending position, or -1 for length checks.
	Index int
	// Got and Want are the compared lengths (ErrLengthMismatch) or the node id
	// and node type count (ErrDanglingNodeReference).
	Got, Want int
	// Weight is the offending value for weight errors.
	Weight float64
}

// Error implements error.
func (e *ValidationError) Error() string {
	switch {
	case errors.Is(e.Kind, ErrLengthMismatch):
		return fmt.Sprintf("%v (%s): got %d, want %d", e.Kind, e.Field, e.Got, e.Want)
	case errors.Is(e.Kind, ErrDanglingNodeReference):
		return fmt.Sprintf("%v (%s[%d]): node %d, node types cover %d nodes", e.Kind, e.Field, e.Index, e.Got, e.Want)
	default:
		return fmt.Sprintf("%v (%s[%d]): %v", e.Kind, e.Field, e.Index, e.Weight)
	}
}

// Unwrap returns the sentinel kind.
func (e *ValidationError) Unwrap() error { return e.Kind }

func lengthMismatch(field string, got, want int) error {
	return &ValidationError{Kind: ErrLengthMismatch, Field: field, Index: -1, Got: got, Want: want}
}

func danglingNode(field string, index int, node uint32, bound int) error {
	return &ValidationError{Kind: ErrDanglingNodeReference, Field: field, Index: index, Got: int(node), Want: bound}
}

func badWeight(kind error, index int, w float64) error {
	return &ValidationError{Kind: kind, Field: FieldWeights, Index: index, Weight: w}
}
