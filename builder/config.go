// SPDX-License-Identifier: MIT
//
// config.go: resolved Build configuration and deterministic defaults.
//
// Defaults:
//   • idFn      = DefaultIDFn   ("0","1","2",...)
//   • predicate = survey.Connect
//   • strategy  = StrategyPairwise
//   • workers   = 1 (sequential)
//   • logger    = zap.NewNop()
//   • metrics   = nil (disabled)

package builder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/peernet/metrics"
	"github.com/katalvlaran/peernet/survey"
)

const defaultWorkers = 1

// builderConfig aggregates all knobs used by Build.
type builderConfig struct {
	idFn            IDFn
	predicate       survey.Predicate
	customPredicate bool
	strategy        Strategy
	workers         int
	logger          *zap.Logger
	metrics         *metrics.Collector

	// err records the first invalid option; later options do not clear it.
	err error
}

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:      DefaultIDFn,
		predicate: survey.Connect,
		strategy:  StrategyPairwise,
		workers:   defaultWorkers,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		prev := cfg.err
		opt(&cfg)
		if prev != nil {
			cfg.err = prev
		}
	}

	return cfg
}

// validate reports recorded option errors and incompatible combinations.
func (c builderConfig) validate() error {
	if c.err != nil {
		return c.err
	}
	if c.customPredicate && c.strategy == StrategyBucketed {
		return fmt.Errorf("%w: a custom predicate requires the pairwise strategy", ErrOptionViolation)
	}

	return nil
}
