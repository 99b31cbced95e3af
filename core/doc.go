// SPDX-License-Identifier: MIT

// Package core provides the thread-safe in-memory graph that every other
// peernet package builds on.
//
// The Graph G = (V,E) is an undirected simple graph:
//
//   - Vertices are identified by opaque, non-empty string IDs. Callers that
//     work with positional data keep their own index ↔ ID mapping (see
//     builder.IndexMap); core never interprets an ID.
//   - Edges carry no payload. Each edge has a generated ID ("e1", "e2", …).
//   - Self-loops are rejected (ErrLoopNotAllowed).
//   - At most one edge joins any unordered pair (ErrMultiEdgeNotAllowed).
//
// Storage
//
//	adjacency[u][v] = edgeID, mirrored as adjacency[v][u] = edgeID.
//	Membership, insertion and Degree are O(1); NeighborIDs is O(d log d).
//
// Concurrency
//
//	Two RWMutexes are used, as in the rest of the library: muVert guards the
//	vertex catalog and muEdgeAdj guards the edge catalog and adjacency. Locks
//	are always taken in the order muVert → muEdgeAdj. Any number of readers
//	may query a finished graph concurrently; analysis passes rely on this.
//
// Determinism
//
//	Vertices() and NeighborIDs() return IDs sorted lexicographically, Edges()
//	returns edges sorted by numeric edge sequence. Edge IDs are assigned from
//	a monotonic counter, so inserting the same edges in the same order yields
//	identical IDs.
//
// Errors
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – edge from a vertex to itself
//	ErrMultiEdgeNotAllowed – second edge between the same pair
package core
