// SPDX-License-Identifier: MIT

package parallel

import (
	"cmp"
	"slices"
)

// SortPermutation returns a permutation perm of [0, len(keys)) such that
// keys[perm[0]] ≤ keys[perm[1]] ≤ ... . Equal keys are ordered by index, so
// the result does not depend on the Pool.
//
// Each worker sorts one contiguous run in place, then adjacent runs are merged
// pairwise in parallel rounds, ping-ponging between two buffers.
// Complexity: O(n log n) work, O(n) extra space.
func SortPermutation[K cmp.Ordered](p Pool, keys []K) []int {
	n := len(keys)
	perm := make([]int, n)
	For(p, n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			perm[i] = i
		}
	})
	byKey := func(a, b int) int {
		if c := cmp.Compare(keys[a], keys[b]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	}

	runs := p.split(n)
	p.run(runs, func(_ int, s span) {
		slices.SortFunc(perm[s.lo:s.hi], byKey)
	})

	src, dst := perm, make([]int, n)
	for len(runs) > 1 {
		next := make([]span, 0, (len(runs)+1)/2)
		for i := 0; i < len(runs); i += 2 {
			if i+1 < len(runs) {
				next = append(next, span{lo: runs[i].lo, hi: runs[i+1].hi})
			} else {
				next = append(next, runs[i])
			}
		}
		p.run(next, func(k int, m span) {
			a := runs[2*k]
			if 2*k+1 == len(runs) {
				copy(dst[a.lo:a.hi], src[a.lo:a.hi])
				return
			}
			b := runs[2*k+1]
			mergeRuns(dst[m.lo:m.hi], src[a.lo:a.hi], src[b.lo:b.hi], byKey)
		})
		src, dst = dst, src
		runs = next
	}

	return src
}

// mergeRuns merges sorted a and b into out; ties take from a first.
func mergeRuns(out, a, b []int, compare func(x, y int) int) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if compare(a[i], b[j]) <= 0 {
			out[k] = a[i]
			i++
		} else {
			out[k] = b[j]
			j++
		}
		k++
	}
	k += copy(out[k:], a[i:])
	copy(out[k:], b[j:])
}
