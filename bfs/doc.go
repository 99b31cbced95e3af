// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start.
//   - Result.Depth maps every reached vertex to its shortest hop distance,
//     which is what the analysis package needs for "exactly two hops away"
//     and for connected-component labelling.
//   - Optional hooks: OnVisit (may abort with an error).
//   - MaxDepth limits exploration; 0 means no limit.
//
// Determinism
//
//	Neighbours are expanded in core.NeighborIDs order (lexicographic), so the
//	visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log d) including neighbour sorting
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      for invalid options (negative MaxDepth).
//   - ErrNeighbors            if neighbour lookup fails.
//   - context errors on cancellation, wrapped OnVisit errors.
package bfs
