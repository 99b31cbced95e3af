// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/peernet/bfs"
	"github.com/katalvlaran/peernet/core"
)

// Summarize computes whole-network statistics. Components are counted with
// one BFS per unvisited node.
//
// DegreeStdDev is the sample standard deviation and is 0 for fewer than two
// nodes. Density is 2E / (V(V-1)) and is 0 for fewer than two nodes.
//
// Complexity: O(V log V + E).
func Summarize(g *core.Graph, opts ...Option) (Summary, error) {
	if g == nil {
		return Summary{}, ErrGraphNil
	}
	o := resolve(opts)

	ids := g.Vertices()
	s := Summary{Nodes: len(ids), Edges: g.EdgeCount()}
	if s.Nodes == 0 {
		return s, nil
	}

	degrees := make([]float64, len(ids))
	for i, id := range ids {
		d, err := g.Degree(id)
		if err != nil {
			return Summary{}, fmt.Errorf("analysis: degree of %q: %w", id, err)
		}
		if d == 0 {
			s.Isolated++
		}
		s.MaxDegree = max(s.MaxDegree, d)
		degrees[i] = float64(d)
	}

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		res, err := bfs.BFS(g, id, bfs.WithContext(o.Ctx))
		if err != nil {
			return Summary{}, fmt.Errorf("analysis: component of %q: %w", id, err)
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		s.Components++
	}

	s.MeanDegree = stat.Mean(degrees, nil)
	sort.Float64s(degrees)
	s.MedianDegree = stat.Quantile(0.5, stat.Empirical, degrees, nil)
	if s.Nodes > 1 {
		s.DegreeStdDev = stat.StdDev(degrees, nil)
		s.Density = 2 * float64(s.Edges) / (float64(s.Nodes) * float64(s.Nodes-1))
	}

	return s, nil
}
