// SPDX-License-Identifier: MIT

package parallel

// Filter returns the elements src[i] with keep[i] == false removed, in order.
// keep must have len(src) entries.
//
// Two passes over the same partition: count survivors per range, then each
// range writes at its prefix-sum offset.
// Complexity: O(n) work.
func Filter[T any](p Pool, src []T, keep []bool) []T {
	spans := p.split(len(src))
	counts := make([]int, len(spans))
	p.run(spans, func(k int, s span) {
		c := 0
		for i := s.lo; i < s.hi; i++ {
			if keep[i] {
				c++
			}
		}
		counts[k] = c
	})

	starts := make([]int, len(spans))
	total := 0
	for k, c := range counts {
		starts[k] = total
		total += c
	}

	out := make([]T, total)
	p.run(spans, func(k int, s span) {
		w := starts[k]
		for i := s.lo; i < s.hi; i++ {
			if keep[i] {
				out[w] = src[i]
				w++
			}
		}
	})

	return out
}

// Not returns the element-wise negation of m.
func Not(p Pool, m []bool) []bool {
	return Mask(p, len(m), func(i int) bool { return !m[i] })
}
