// SPDX-License-Identifier: MIT

// Package builder turns a loaded survey into a similarity graph.
//
// Build creates one core.Graph vertex per survey.Record, in record order, and
// links every unordered pair (i, j), i < j, for which the similarity
// predicate holds. The result is a Network: the graph plus an IndexMap, the
// bijection between record index and vertex ID. Vertex IDs are produced by
// an IDFn ("0","1",… by default) and are opaque to every consumer; always
// translate through the IndexMap instead of parsing IDs.
//
// Strategies
//
//   - StrategyPairwise (default): the canonical scan, N(N-1)/2 predicate
//     evaluations. Works with any symmetric Predicate.
//   - StrategyBucketed: groups records by (AgeGroup, SocioeconomicStatus),
//     sorts each group by PeerInfluence and only compares records whose
//     scores fall inside the tolerance window. Produces exactly the same
//     edges as the pairwise scan under survey.Connect; it cannot be combined
//     with a custom predicate.
//
// Parallelism
//
//	WithWorkers(k) splits the scan across k goroutines (errgroup). Each
//	worker collects a private pair list; lists are merged and sorted by
//	(i, j) before insertion, so edge IDs and every derived result are
//	identical for any worker count.
//
// Determinism
//
//	The input slice is never mutated. Given the same records and options,
//	Build yields the same vertex IDs, the same edges and the same edge IDs.
//
// Errors
//
//   - ErrOptionViolation  invalid or incompatible options.
//   - ErrDuplicateNodeID  the ID scheme mapped two indices to one ID.
//   - ErrEmptyNodeID      the ID scheme returned "".
//   - ErrInsertEdge       the graph rejected an edge (indicates a broken
//     predicate, e.g. one that is true for a record and itself).
//   - context errors when ctx is cancelled mid-scan.
package builder
