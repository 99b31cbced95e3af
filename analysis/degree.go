// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"

	"github.com/katalvlaran/peernet/core"
)

// DegreeDistribution counts nodes per degree. Isolated nodes appear under
// degree 0, so Total() == g.VertexCount().
// Complexity: O(V).
func DegreeDistribution(g *core.Graph) (Distribution, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dist := make(Distribution)
	for _, id := range g.Vertices() {
		d, err := g.Degree(id)
		if err != nil {
			return nil, fmt.Errorf("analysis: degree of %q: %w", id, err)
		}
		dist[d]++
	}

	return dist, nil
}
