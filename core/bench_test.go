// SPDX-License-Identifier: MIT

package core_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/peernet/core"
)

// BenchmarkAddEdge_Star measures edge insertion into a star topology.
func BenchmarkAddEdge_Star(b *testing.B) {
	g := core.NewGraphWithCapacity(b.N + 1)
	_ = g.AddVertex("hub")
	for i := 0; i < b.N; i++ {
		_ = g.AddVertex(strconv.Itoa(i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("hub", strconv.Itoa(i))
	}
}

// BenchmarkDegree measures O(1) degree lookups on a path.
func BenchmarkDegree(b *testing.B) {
	const n = 1000
	g := core.NewGraphWithCapacity(n)
	for i := 0; i < n; i++ {
		_ = g.AddVertex(strconv.Itoa(i))
	}
	for i := 1; i < n; i++ {
		_, _ = g.AddEdge(strconv.Itoa(i-1), strconv.Itoa(i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Degree(strconv.Itoa(i % n))
	}
}
