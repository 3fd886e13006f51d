// SPDX-License-Identifier: MIT

package builder

import (
	"sort"

	"github.com/katalvlaran/csrgraph/core"
	"github.com/katalvlaran/csrgraph/internal/parallel"
)

// computeOffsets returns out with out[i] = number of sorted sources ≤ i, for
// i in [0, nodeCount). Each worker owns a node range, locates its first edge
// by binary search and then sweeps linearly, so the work is O(V + E) plus one
// O(log E) search per range. Sources ≥ nodeCount are never counted.
func computeOffsets(p parallel.Pool, sorted []core.NodeT, nodeCount int) []core.EdgeT {
	out := make([]core.EdgeT, nodeCount)
	parallel.For(p, nodeCount, func(lo, hi int) {
		pos := sort.Search(len(sorted), func(j int) bool { return int(sorted[j]) >= lo })
		for i := lo; i < hi; i++ {
			for pos < len(sorted) && int(sorted[pos]) <= i {
				pos++
			}
			out[i] = pos
		}
	})

	return out
}
