// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"

	"github.com/katalvlaran/peernet/bfs"
	"github.com/katalvlaran/peernet/core"
)

// DistanceTwo returns, for every node v, the size of
//
//	{ w : ∃u. edge(v,u) ∧ edge(u,w) ∧ w ≠ v }
//
// With WithStrictDistanceTwo the set is instead the nodes at BFS depth
// exactly 2 from v.
//
// Complexity: O(Σ_v Σ_{u∈N(v)} deg(u)) time, O(V) extra space per node.
func DistanceTwo(g *core.Graph, opts ...Option) (DistanceTwoMap, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := resolve(opts)
	if o.StrictDistanceTwo {
		return strictDistanceTwo(g, o)
	}

	adj := g.AdjacencyList()
	out := make(DistanceTwoMap, len(adj))
	seen := make(map[string]struct{})
	for v, nbrs := range adj {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		clear(seen)
		for _, u := range nbrs {
			for _, w := range adj[u] {
				if w != v {
					seen[w] = struct{}{}
				}
			}
		}
		out[v] = len(seen)
	}

	return out, nil
}

func strictDistanceTwo(g *core.Graph, o Options) (DistanceTwoMap, error) {
	ids := g.Vertices()
	out := make(DistanceTwoMap, len(ids))
	for _, v := range ids {
		res, err := bfs.BFS(g, v, bfs.WithContext(o.Ctx), bfs.WithMaxDepth(2))
		if err != nil {
			return nil, fmt.Errorf("analysis: distance-2 from %q: %w", v, err)
		}
		out[v] = len(res.AtDepth(2))
	}

	return out, nil
}
