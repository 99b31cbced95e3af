// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighbourhood queries: NeighborIDs, EachNeighbor, AdjacencyList.
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc.
//   - EachNeighbor() visits neighbours in unspecified order; callers that
//     need order must use NeighborIDs.

package core

import "sort"

// NeighborIDs returns the IDs adjacent to id, sorted lexicographically.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d) time, O(d) space.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	nbrs := g.adjacency[id]
	out := make([]string, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

// EachNeighbor calls fn for every vertex adjacent to id, without sorting or
// allocating. fn must not mutate g; doing so deadlocks.
// Iteration stops early when fn returns false.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d).
func (g *Graph) EachNeighbor(id string, fn func(nbr string) bool) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for v := range g.adjacency[id] {
		if !fn(v) {
			break
		}
	}

	return nil
}

// AdjacencyList returns a snapshot mapping each vertex to its sorted
// neighbour IDs. Isolated vertices map to an empty slice. The returned
// slices are freshly allocated and safe to retain.
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[string][]string, len(g.adjacency))
	for u, nbrs := range g.adjacency {
		buf := make([]string, 0, len(nbrs))
		for v := range nbrs {
			buf = append(buf, v)
		}
		sort.Strings(buf)
		out[u] = buf
	}

	return out
}
