// SPDX-License-Identifier: MIT
// Package parallel provides fork-join data-parallel helpers over slices.
//
// Every helper partitions its output into disjoint index ranges, one per task,
// so workers never write to overlapping memory and no locks are needed. Inputs
// are only read. Work below Pool.Grain elements runs inline on the caller's
// goroutine.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultGrain is the minimum number of elements worth a goroutine.
const DefaultGrain = 1 << 14

// Pool bounds the fan-out of a helper call. The zero value uses GOMAXPROCS
// workers and DefaultGrain.
type Pool struct {
	Workers int
	Grain   int
}

// Default returns a Pool sized to GOMAXPROCS.
func Default() Pool {
	return Pool{Workers: runtime.GOMAXPROCS(0), Grain: DefaultGrain}
}

func (p Pool) workers() int {
	if p.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return p.Workers
}

func (p Pool) grain() int {
	if p.Grain <= 0 {
		return DefaultGrain
	}
	return p.Grain
}

// chunks returns the number of ranges n elements are split into.
func (p Pool) chunks(n int) int {
	c := min(p.workers(), n/p.grain())
	return max(c, 1)
}

// span is one contiguous task range.
type span struct{ lo, hi int }

// split partitions [0, n) into the ranges For hands to workers.
func (p Pool) split(n int) []span {
	if n <= 0 {
		return nil
	}
	c := p.chunks(n)
	size := (n + c - 1) / c
	out := make([]span, 0, c)
	for lo := 0; lo < n; lo += size {
		out = append(out, span{lo: lo, hi: min(lo+size, n)})
	}

	return out
}

// run executes fn once per span, forking when there is more than one.
func (p Pool) run(spans []span, fn func(k int, s span)) {
	if len(spans) == 1 {
		fn(0, spans[0])
		return
	}
	var g errgroup.Group
	g.SetLimit(p.workers())
	for k, s := range spans {
		g.Go(func() error {
			fn(k, s)
			return nil
		})
	}
	_ = g.Wait()
}

// For calls fn over a partition of [0, n) into contiguous ranges and waits
// for all of them. fn must only write to state owned by its range.
func For(p Pool, n int, fn func(lo, hi int)) {
	p.run(p.split(n), func(_ int, s span) { fn(s.lo, s.hi) })
}

// Gather returns out with out[i] = src[perm[i]].
// Complexity: O(n) work.
func Gather[T any](p Pool, src []T, perm []int) []T {
	out := make([]T, len(perm))
	For(p, len(perm), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = src[perm[i]]
		}
	})

	return out
}

// Mask returns m with m[i] = pred(i) for i in [0, n).
func Mask(p Pool, n int, pred func(i int) bool) []bool {
	m := make([]bool, n)
	For(p, n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			m[i] = pred(i)
		}
	})

	return m
}
