// SPDX-License-Identifier: MIT

package builder

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/peernet/core"
	"github.com/katalvlaran/peernet/survey"
)

// Network is the immutable output of Build: the similarity graph and the
// bijection between record index and graph vertex.
type Network struct {
	Graph *core.Graph
	Index *IndexMap
}

// Build constructs the similarity graph over records.
//
// Steps:
//  1. Resolve options; invalid ones → ErrOptionViolation.
//  2. Materialise the IndexMap and add one vertex per record, in index order.
//  3. Enumerate linked pairs with the configured strategy and worker count.
//  4. Insert edges sorted by (i, j) so edge IDs are reproducible.
//
// A nil ctx is treated as context.Background().
// Complexity: O(N²) predicate calls for StrategyPairwise; O(N log N + Σ w)
// for StrategyBucketed where w is the number of in-window candidates.
// Storage O(N + E).
func Build(ctx context.Context, records []survey.Record, opts ...Option) (*Network, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := newBuilderConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	n := len(records)
	index, err := newIndexMapFromFn(n, cfg.idFn)
	if err != nil {
		return nil, err
	}
	g := core.NewGraphWithCapacity(n)
	for i, id := range index.nodes {
		if err = g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("builder: add vertex for record %d: %w", i, err)
		}
	}

	var res scanResult
	switch cfg.strategy {
	case StrategyBucketed:
		res, err = scanBucketed(ctx, records, cfg.workers)
	default:
		res, err = scanPairwise(ctx, records, cfg.predicate, cfg.workers)
	}
	if err != nil {
		return nil, err
	}

	for _, p := range res.pairs {
		if _, err = g.AddEdge(index.nodes[p.i], index.nodes[p.j]); err != nil {
			return nil, fmt.Errorf("%w: records %d and %d: %v", ErrInsertEdge, p.i, p.j, err)
		}
	}

	cfg.metrics.AddPredicateEvaluations(res.evaluations)
	cfg.metrics.AddEdges(len(res.pairs))
	cfg.logger.Debug("similarity graph built",
		zap.Int("nodes", n),
		zap.Int("edges", len(res.pairs)),
		zap.Int64("predicate_evaluations", res.evaluations),
		zap.Stringer("strategy", cfg.strategy),
		zap.Int("workers", cfg.workers),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &Network{Graph: g, Index: index}, nil
}
