// SPDX-License-Identifier: MIT
// Package core_test verifies that a built Graph can be read from many goroutines.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csrgraph/core"
)

// TestConcurrentReads hammers every read path at once; run with -race.
func TestConcurrentReads(t *testing.T) {
	g := fixtureGraph(t)
	const readers = 64

	var wg sync.WaitGroup
	errs := make(chan error, readers)
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func(id int) {
			defer wg.Done()
			n := core.NodeT(id % g.NodeCount())
			if _, err := g.Neighbors(n); err != nil {
				errs <- err
				return
			}
			if _, err := g.EdgeID(NodeD, NodeD); err != nil {
				errs <- err
				return
			}
			for pos := range g.EdgesSeq() {
				if _, err := g.Weight(pos); err != nil {
					errs <- err
					return
				}
			}
			_ = g.Stats()
			_ = g.Sources()
		}(i)
	}
	wg.Wait()
	close(errs)

	// Errors are collected rather than asserted inside goroutines.
	for err := range errs {
		require.NoError(t, err)
	}
}
