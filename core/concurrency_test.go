// SPDX-License-Identifier: MIT

package core_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/peernet/core"
)

// TestGraph_ConcurrentReaders runs many readers against a finished graph.
// Run with -race to catch unsynchronised access.
func TestGraph_ConcurrentReaders(t *testing.T) {
	const n = 200
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(strconv.Itoa(i)))
	}
	for i := 1; i < n; i++ {
		_, err := g.AddEdge(strconv.Itoa(i-1), strconv.Itoa(i))
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for r := 0; r < 50; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, id := range g.Vertices() {
				if _, err := g.Degree(id); err != nil {
					errs <- err
					return
				}
				if _, err := g.NeighborIDs(id); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("reader error: %v", err)
	}
	assert.Equal(t, n-1, g.EdgeCount())
}

// TestGraph_ConcurrentAddEdge checks that concurrent writers never create a
// duplicate pair and that every edge ID is unique.
func TestGraph_ConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("hub"))
	for i := 0; i < 100; i++ {
		require.NoError(t, g.AddVertex(strconv.Itoa(i)))
	}

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_, _ = g.AddEdge("hub", strconv.Itoa(i))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, g.EdgeCount())
	ids := map[string]bool{}
	for _, e := range g.Edges() {
		assert.False(t, ids[e.ID], "duplicate edge id %s", e.ID)
		ids[e.ID] = true
	}
	d, err := g.Degree("hub")
	require.NoError(t, err)
	assert.Equal(t, 100, d)
}
