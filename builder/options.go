// SPDX-License-Identifier: MIT
//
// options.go: functional options for Build.
//
// Contract:
//   • Option constructors panic on nil functions or loggers (programmer
//     error, surfaced at wiring time).
//   • Out-of-range values (negative workers, unknown strategy) are recorded
//     and returned from Build as ErrOptionViolation.

package builder

import (
	"fmt"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/peernet/metrics"
	"github.com/katalvlaran/peernet/survey"
)

// Option customises Build by mutating a builderConfig.
type Option func(*builderConfig)

// Strategy selects how candidate pairs are enumerated.
type Strategy int

const (
	// StrategyPairwise evaluates the predicate for every unordered pair.
	StrategyPairwise Strategy = iota
	// StrategyBucketed compares only records sharing a bucket key whose
	// peer influence scores are within tolerance.
	StrategyBucketed
)

// String returns the configuration name of s.
func (s Strategy) String() string {
	switch s {
	case StrategyPairwise:
		return "pairwise"
	case StrategyBucketed:
		return "bucketed"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a configuration name ("pairwise", "bucketed") to a
// Strategy. Matching is case-insensitive; "" selects StrategyPairwise.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "pairwise":
		return StrategyPairwise, nil
	case "bucketed":
		return StrategyBucketed, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
	}
}

// WithPredicate replaces survey.Connect with a custom symmetric predicate.
// Only valid with StrategyPairwise. Panics on nil.
func WithPredicate(p survey.Predicate) Option {
	if p == nil {
		panic("builder: WithPredicate(nil)")
	}
	return func(c *builderConfig) {
		c.predicate = p
		c.customPredicate = true
	}
}

// WithStrategy selects the pair enumeration strategy.
func WithStrategy(s Strategy) Option {
	return func(c *builderConfig) {
		if s != StrategyPairwise && s != StrategyBucketed {
			c.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		c.strategy = s
	}
}

// WithWorkers sets the scan parallelism.
//
//	k == 1: sequential scan (default)
//	k > 1:  k goroutines
//	k == 0: runtime.GOMAXPROCS(0) goroutines
//	k < 0:  ErrOptionViolation
func WithWorkers(k int) Option {
	return func(c *builderConfig) {
		switch {
		case k < 0:
			c.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, k)
		case k == 0:
			c.workers = runtime.GOMAXPROCS(0)
		default:
			c.workers = k
		}
	}
}

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithMetrics attaches a collector for predicate and edge counters.
// A nil collector disables metrics.
func WithMetrics(m *metrics.Collector) Option {
	return func(c *builderConfig) {
		c.metrics = m
	}
}
