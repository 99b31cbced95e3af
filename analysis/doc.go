// SPDX-License-Identifier: MIT

// Package analysis computes structural and behavioural summaries of a
// similarity network:
//
//   - DegreeDistribution: degree → number of nodes with that degree.
//   - DistanceTwo: per node, the number of distinct nodes reachable through
//     exactly one intermediate neighbour (self excluded).
//   - BehaviorByDegree: mean smoking and drug scores of the respondents at
//     each degree.
//   - Summarize: node/edge counts, isolated nodes, connected components and
//     degree statistics.
//
// Every pass is read-only over the graph; Run executes them concurrently.
//
// Distance-2 semantics: by default a direct neighbour that is also reachable
// via another neighbour IS counted (the set is built from two-hop walks, not
// shortest paths). WithStrictDistanceTwo counts only nodes whose shortest
// path distance is exactly 2.
package analysis
