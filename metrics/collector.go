// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "peernet"

// Stage labels used with ObserveStage.
const (
	StageLoad    = "load"
	StageBuild   = "build"
	StageAnalyze = "analyze"
)

// Collector holds all instruments for one run.
type Collector struct {
	registry *prometheus.Registry

	RecordsLoaded        prometheus.Counter
	FieldFallbacks       *prometheus.CounterVec
	PredicateEvaluations prometheus.Counter
	EdgesCreated         prometheus.Counter
	StageDuration        *prometheus.HistogramVec
}

// NewCollector creates a collector registered on a fresh registry.
// An empty namespace falls back to DefaultNamespace.
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	c := &Collector{
		registry: prometheus.NewRegistry(),
		RecordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_loaded_total",
			Help:      "Survey records loaded from the input source",
		}),
		FieldFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "field_fallbacks_total",
			Help:      "Numeric fields that failed to parse and were replaced by their default",
		}, []string{"field"}),
		PredicateEvaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predicate_evaluations_total",
			Help:      "Similarity predicate evaluations performed while building the graph",
		}),
		EdgesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_created_total",
			Help:      "Edges inserted into the similarity graph",
		}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Wall-clock duration of each pipeline stage",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"stage"}),
	}
	c.registry.MustRegister(
		c.RecordsLoaded,
		c.FieldFallbacks,
		c.PredicateEvaluations,
		c.EdgesCreated,
		c.StageDuration,
	)

	return c
}

// Registry exposes the underlying registry, e.g. for promhttp or tests.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}

	return c.registry
}

// AddRecords counts n loaded records.
func (c *Collector) AddRecords(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.RecordsLoaded.Add(float64(n))
}

// IncFallback counts one default-value substitution for field.
func (c *Collector) IncFallback(field string) {
	if c == nil {
		return
	}
	c.FieldFallbacks.WithLabelValues(field).Inc()
}

// AddFallbacks counts n default-value substitutions for field.
func (c *Collector) AddFallbacks(field string, n int) {
	if c == nil || n <= 0 {
		return
	}
	c.FieldFallbacks.WithLabelValues(field).Add(float64(n))
}

// AddPredicateEvaluations counts n predicate calls.
func (c *Collector) AddPredicateEvaluations(n int64) {
	if c == nil || n <= 0 {
		return
	}
	c.PredicateEvaluations.Add(float64(n))
}

// AddEdges counts n inserted edges.
func (c *Collector) AddEdges(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.EdgesCreated.Add(float64(n))
}

// ObserveStage records the time elapsed since start under stage.
func (c *Collector) ObserveStage(stage string, start time.Time) {
	if c == nil {
		return
	}
	c.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The write is atomic (temp file + rename).
func (c *Collector) WriteTextfile(path string) error {
	if c == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("metrics: write textfile %q: %w", path, err)
	}

	return nil
}
