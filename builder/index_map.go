// SPDX-License-Identifier: MIT

package builder

import "fmt"

// IndexMap is the immutable bijection between record index (0..N-1) and
// graph vertex ID. It is created once by Build and never mutated.
//
// Lookups in both directions are O(1). The Must* variants panic when the
// bijection does not cover the requested key: a missing entry means the
// graph and the record set were not produced together, which is a program
// bug rather than a data condition.
type IndexMap struct {
	nodes []string       // index → vertex ID
	index map[string]int // vertex ID → index
}

// NewIndexMap builds an IndexMap from vertex IDs listed in index order.
// Errors: ErrEmptyNodeID, ErrDuplicateNodeID.
// Complexity: O(N).
func NewIndexMap(nodes []string) (*IndexMap, error) {
	m := &IndexMap{
		nodes: make([]string, len(nodes)),
		index: make(map[string]int, len(nodes)),
	}
	for i, id := range nodes {
		if id == "" {
			return nil, fmt.Errorf("%w: index %d", ErrEmptyNodeID, i)
		}
		if prev, dup := m.index[id]; dup {
			return nil, fmt.Errorf("%w: %q for indices %d and %d", ErrDuplicateNodeID, id, prev, i)
		}
		m.nodes[i] = id
		m.index[id] = i
	}

	return m, nil
}

// newIndexMapFromFn materialises fn over 0..n-1.
func newIndexMapFromFn(n int, fn IDFn) (*IndexMap, error) {
	nodes := make([]string, n)
	for i := range nodes {
		nodes[i] = fn(i)
	}

	return NewIndexMap(nodes)
}

// Len returns the number of mapped records.
func (m *IndexMap) Len() int {
	return len(m.nodes)
}

// NodeOf returns the vertex ID for record index i.
func (m *IndexMap) NodeOf(i int) (string, bool) {
	if i < 0 || i >= len(m.nodes) {
		return "", false
	}

	return m.nodes[i], true
}

// IndexOf returns the record index for vertex ID id.
func (m *IndexMap) IndexOf(id string) (int, bool) {
	i, ok := m.index[id]

	return i, ok
}

// MustNodeOf is NodeOf for callers that hold the bijection as an invariant.
// Panics when i is out of range.
func (m *IndexMap) MustNodeOf(i int) string {
	id, ok := m.NodeOf(i)
	if !ok {
		panic(fmt.Sprintf("builder: index %d not in index map (len %d)", i, len(m.nodes)))
	}

	return id
}

// MustIndexOf is IndexOf for callers that hold the bijection as an
// invariant. Panics when id is unknown.
func (m *IndexMap) MustIndexOf(id string) int {
	i, ok := m.IndexOf(id)
	if !ok {
		panic(fmt.Sprintf("builder: node %q not in index map", id))
	}

	return i
}

// Each calls fn for every (index, vertex ID) pair in ascending index order.
func (m *IndexMap) Each(fn func(index int, node string)) {
	for i, id := range m.nodes {
		fn(i, id)
	}
}
