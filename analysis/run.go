// SPDX-License-Identifier: MIT

package analysis

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/peernet/builder"
	"github.com/katalvlaran/peernet/survey"
)

// Run executes all passes over net concurrently and bundles the results.
// The first failing pass cancels the others.
func Run(ctx context.Context, net *builder.Network, records []survey.Record, opts ...Option) (*Report, error) {
	if net == nil || net.Graph == nil {
		return nil, ErrGraphNil
	}
	if net.Index == nil {
		return nil, ErrIndexNil
	}
	if len(records) != net.Index.Len() {
		return nil, fmt.Errorf("%w: %d records, %d nodes", ErrRecordCount, len(records), net.Index.Len())
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o := resolve(opts)
	eg, gctx := errgroup.WithContext(ctx)
	passOpts := append(append([]Option(nil), opts...), WithContext(gctx))

	rep := &Report{Index: net.Index}
	timed := func(name string, fn func() error) func() error {
		return func() error {
			start := time.Now()
			err := fn()
			o.Logger.Debug("analysis pass finished",
				zap.String("pass", name),
				zap.Duration("elapsed", time.Since(start)),
				zap.Error(err),
			)
			return err
		}
	}

	eg.Go(timed("degree_distribution", func() (err error) {
		rep.Degrees, err = DegreeDistribution(net.Graph)
		return err
	}))
	eg.Go(timed("distance_two", func() (err error) {
		rep.DistanceTwo, err = DistanceTwo(net.Graph, passOpts...)
		return err
	}))
	eg.Go(timed("behavior_by_degree", func() (err error) {
		rep.Behavior, err = BehaviorByDegree(net.Graph, records, net.Index)
		return err
	}))
	eg.Go(timed("summary", func() (err error) {
		rep.Summary, err = Summarize(net.Graph, passOpts...)
		return err
	}))

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return rep, nil
}
