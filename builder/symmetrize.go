// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/csrgraph/internal/parallel"

// symmetrize returns a fresh Input holding every edge of in followed by the
// mirror (d,s) of every non-loop edge (s,d). Mirrors inherit weight and edge
// type, in the same filter order. Self-loops are never duplicated.
func symmetrize(p parallel.Pool, in Input) Input {
	loops := parallel.Mask(p, len(in.Sources), func(i int) bool {
		return in.Sources[i] == in.Destinations[i]
	})
	keep := parallel.Not(p, loops)

	out := in
	out.Sources = concat(in.Sources, parallel.Filter(p, in.Destinations, keep))
	out.Destinations = concat(in.Destinations, parallel.Filter(p, in.Sources, keep))
	if in.EdgeTypes != nil {
		out.EdgeTypes = concat(in.EdgeTypes, parallel.Filter(p, in.EdgeTypes, keep))
	}
	if in.Weights != nil {
		out.Weights = concat(in.Weights, parallel.Filter(p, in.Weights, keep))
	}

	return out
}

// concat returns a new slice a++b. Unlike slices.Concat it never returns nil,
// so a present-but-empty side array stays present.
func concat[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
