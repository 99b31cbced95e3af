// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"

	"github.com/katalvlaran/peernet/builder"
	"github.com/katalvlaran/peernet/core"
	"github.com/katalvlaran/peernet/survey"
)

// BehaviorByDegree groups respondents by the degree of their node and
// averages their smoking and drug scores.
//
// records and index must describe the same population: len(records) ==
// index.Len() and every node in index exists in g. Violations mean the
// network was not produced from these records and panic.
//
// Complexity: O(N).
func BehaviorByDegree(g *core.Graph, records []survey.Record, index *builder.IndexMap) (BehaviorMap, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if index == nil {
		return nil, ErrIndexNil
	}
	if len(records) != index.Len() {
		panic(fmt.Sprintf("analysis: %d records for an index map of %d nodes", len(records), index.Len()))
	}

	type sums struct {
		smoking, drug float64
		n             int
	}
	acc := make(map[int]*sums)
	index.Each(func(i int, id string) {
		d, err := g.Degree(id)
		if err != nil {
			panic(fmt.Sprintf("analysis: index %d maps to %q: %v", i, id, err))
		}
		s := acc[d]
		if s == nil {
			s = &sums{}
			acc[d] = s
		}
		s.smoking += records[i].SmokingPrevalence
		s.drug += records[i].DrugExperimentation
		s.n++
	})

	out := make(BehaviorMap, len(acc))
	for d, s := range acc {
		out[d] = BehaviorMean{
			Smoking: s.smoking / float64(s.n),
			Drug:    s.drug / float64(s.n),
			Count:   s.n,
		}
	}

	return out, nil
}
