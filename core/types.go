// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same two vertices.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected connection between From and To.
// The endpoint order records insertion order only; {From,To} is unordered.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the first endpoint as passed to AddEdge.
	From string

	// To is the second endpoint as passed to AddEdge.
	To string

	// seq is the numeric part of ID, kept for ordering without parsing.
	seq uint64
}

// Other returns the endpoint of e opposite to id, and false when id is not
// an endpoint of e.
func (e *Edge) Other(id string) (string, bool) {
	switch id {
	case e.From:
		return e.To, true
	case e.To:
		return e.From, true
	}

	return "", false
}

// Graph is an undirected simple graph over string-identified vertices.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// nextEdgeID is an atomic counter for Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	nextEdgeID uint64
	vertices   map[string]struct{}
	edges      map[string]*Edge

	// adjacency[u][v] = edge ID; every edge is stored under both endpoints.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
}

// NewGraphWithCapacity creates an empty Graph with catalogs pre-sized for
// vertexHint vertices. Useful when the vertex count is known up front.
// Complexity: O(1) plus the map allocations.
func NewGraphWithCapacity(vertexHint int) *Graph {
	if vertexHint < 0 {
		vertexHint = 0
	}

	return &Graph{
		vertices:  make(map[string]struct{}, vertexHint),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string, vertexHint),
	}
}
