// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/peernet/analysis"
	"github.com/katalvlaran/peernet/builder"
	"github.com/katalvlaran/peernet/config"
	"github.com/katalvlaran/peernet/ingest"
	"github.com/katalvlaran/peernet/metrics"
	"github.com/katalvlaran/peernet/survey"
)

// ErrNoInput is returned when neither Deps.Input nor cfg.Input.Path is set.
var ErrNoInput = errors.New("pipeline: no input source")

// Deps carries collaborators that are not part of the configuration.
type Deps struct {
	// Logger defaults to zap.NewNop().
	Logger *zap.Logger

	// Metrics is optional.
	Metrics *metrics.Collector

	// Input, when set, is read instead of cfg.Input.Path.
	Input io.Reader
}

// Result is everything a run produced.
type Result struct {
	RunID     string
	Records   []survey.Record
	LoadStats ingest.LoadStats
	Network   *builder.Network
	Report    *analysis.Report
	Elapsed   time.Duration
}

// Run executes one batch run.
func Run(ctx context.Context, cfg config.Config, deps Deps) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Input == nil && cfg.Input.Path == "" {
		return nil, ErrNoInput
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	res := &Result{RunID: uuid.NewString()}
	log := deps.Logger.With(zap.String("run_id", res.RunID))
	start := time.Now()
	log.Info("run started", zap.String("input", cfg.Input.Path))

	// load
	stageStart := time.Now()
	loadOpts := ingestOptions(cfg, log, deps.Metrics, &res.LoadStats)
	var err error
	if deps.Input != nil {
		res.Records, err = ingest.Load(deps.Input, loadOpts...)
	} else {
		res.Records, err = ingest.LoadFile(cfg.Input.Path, loadOpts...)
	}
	if err != nil {
		log.Error("load failed", zap.Error(err))
		return nil, fmt.Errorf("pipeline: load: %w", err)
	}
	deps.Metrics.ObserveStage(metrics.StageLoad, stageStart)
	log.Info("records loaded",
		zap.Int("records", len(res.Records)),
		zap.Int("fallbacks", res.LoadStats.TotalFallbacks()),
	)

	// build
	stageStart = time.Now()
	buildOpts, err := builderOptions(cfg, log, deps.Metrics)
	if err != nil {
		return nil, err
	}
	if res.Network, err = builder.Build(ctx, res.Records, buildOpts...); err != nil {
		log.Error("build failed", zap.Error(err))
		return nil, fmt.Errorf("pipeline: build: %w", err)
	}
	deps.Metrics.ObserveStage(metrics.StageBuild, stageStart)
	log.Info("graph built",
		zap.Int("nodes", res.Network.Graph.VertexCount()),
		zap.Int("edges", res.Network.Graph.EdgeCount()),
		zap.String("strategy", cfg.Build.Strategy),
	)

	// analyze
	stageStart = time.Now()
	anOpts := []analysis.Option{analysis.WithLogger(log)}
	if cfg.Analysis.StrictDistanceTwo {
		anOpts = append(anOpts, analysis.WithStrictDistanceTwo())
	}
	if res.Report, err = analysis.Run(ctx, res.Network, res.Records, anOpts...); err != nil {
		log.Error("analysis failed", zap.Error(err))
		return nil, fmt.Errorf("pipeline: analyze: %w", err)
	}
	deps.Metrics.ObserveStage(metrics.StageAnalyze, stageStart)

	res.Elapsed = time.Since(start)
	log.Info("run finished",
		zap.Int("components", res.Report.Summary.Components),
		zap.Duration("elapsed", res.Elapsed),
	)

	return res, nil
}

func ingestOptions(cfg config.Config, log *zap.Logger, m *metrics.Collector, stats *ingest.LoadStats) []ingest.Option {
	opts := []ingest.Option{
		ingest.WithComma(cfg.Input.Comma()),
		ingest.WithLogger(log),
		ingest.WithMetrics(m),
		ingest.WithStats(stats),
	}
	c := cfg.Columns
	if c.ByName {
		return append(opts, ingest.WithColumnNames(ingest.ColumnNames{
			AgeGroup:            c.Names.AgeGroup,
			SmokingPrevalence:   c.Names.SmokingPrevalence,
			DrugExperimentation: c.Names.DrugExperimentation,
			SocioeconomicStatus: c.Names.SocioeconomicStatus,
			PeerInfluence:       c.Names.PeerInfluence,
		}))
	}

	return append(opts, ingest.WithColumns(ingest.Columns{
		AgeGroup:            c.AgeGroup,
		SmokingPrevalence:   c.SmokingPrevalence,
		DrugExperimentation: c.DrugExperimentation,
		SocioeconomicStatus: c.SocioeconomicStatus,
		PeerInfluence:       c.PeerInfluence,
	}))
}

func builderOptions(cfg config.Config, log *zap.Logger, m *metrics.Collector) ([]builder.Option, error) {
	strategy, err := builder.ParseStrategy(cfg.Build.Strategy)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	return []builder.Option{
		builder.WithStrategy(strategy),
		builder.WithWorkers(cfg.Build.Workers),
		builder.WithSymbNumb(cfg.Build.IDPrefix),
		builder.WithLogger(log),
		builder.WithMetrics(m),
	}, nil
}
