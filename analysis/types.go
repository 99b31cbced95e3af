// SPDX-License-Identifier: MIT

package analysis

import (
	"context"
	"errors"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/peernet/builder"
)

// Sentinel errors for analysis passes.
var (
	// ErrGraphNil is returned when a nil graph or network is passed.
	ErrGraphNil = errors.New("analysis: graph is nil")

	// ErrIndexNil is returned when a nil index map is passed.
	ErrIndexNil = errors.New("analysis: index map is nil")

	// ErrRecordCount is returned by Run when the record slice and the index
	// map disagree in size.
	ErrRecordCount = errors.New("analysis: record count does not match index map")
)

// Distribution maps degree → number of nodes with that degree.
type Distribution map[int]int

// DegreeCount is one Distribution entry.
type DegreeCount struct {
	Degree int
	Nodes  int
}

// Sorted returns the entries ordered by ascending degree.
func (d Distribution) Sorted() []DegreeCount {
	out := make([]DegreeCount, 0, len(d))
	for deg, n := range d {
		out = append(out, DegreeCount{Degree: deg, Nodes: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Degree < out[j].Degree })

	return out
}

// Total returns the number of nodes counted, which equals the node count of
// the graph the distribution came from.
func (d Distribution) Total() int {
	total := 0
	for _, n := range d {
		total += n
	}

	return total
}

// DistanceTwoMap maps node ID → distance-2 neighbour count.
type DistanceTwoMap map[string]int

// NodeCount is one DistanceTwoMap entry.
type NodeCount struct {
	Node  string
	Count int
}

// Top returns the n entries with the largest counts, ties broken by node ID
// compared as strings ("10" before "2"). n <= 0 returns every entry.
func (m DistanceTwoMap) Top(n int) []NodeCount {
	return m.top(n, func(a, b string) bool { return a < b })
}

// TopIndexed is Top with ties broken by record index. Nodes missing from
// index sort after indexed ones, by node ID. A nil index behaves like Top.
func (m DistanceTwoMap) TopIndexed(n int, index *builder.IndexMap) []NodeCount {
	if index == nil {
		return m.Top(n)
	}

	return m.top(n, func(a, b string) bool {
		ia, okA := index.IndexOf(a)
		ib, okB := index.IndexOf(b)
		switch {
		case okA && okB:
			return ia < ib
		case okA != okB:
			return okA
		default:
			return a < b
		}
	})
}

func (m DistanceTwoMap) top(n int, tieLess func(a, b string) bool) []NodeCount {
	out := make([]NodeCount, 0, len(m))
	for id, c := range m {
		out = append(out, NodeCount{Node: id, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return tieLess(out[i].Node, out[j].Node)
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}

	return out
}

// BehaviorMean holds the mean behavioural scores of one degree bucket.
type BehaviorMean struct {
	Smoking float64
	Drug    float64
	Count   int
}

// BehaviorMap maps degree → BehaviorMean. Only degrees with at least one
// node are present.
type BehaviorMap map[int]BehaviorMean

// DegreeBehavior is one BehaviorMap entry.
type DegreeBehavior struct {
	Degree int
	BehaviorMean
}

// RankBySmoking returns the n buckets with the highest mean smoking score,
// ties broken by ascending degree. NaN means rank after every number.
// n <= 0 returns every bucket.
func (m BehaviorMap) RankBySmoking(n int) []DegreeBehavior {
	out := make([]DegreeBehavior, 0, len(m))
	for deg, b := range m {
		out = append(out, DegreeBehavior{Degree: deg, BehaviorMean: b})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Smoking, out[j].Smoking
		aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
		switch {
		case aNaN != bNaN:
			return bNaN
		case !aNaN && a != b:
			return a > b
		}
		return out[i].Degree < out[j].Degree
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}

	return out
}

// Summary describes the network as a whole.
type Summary struct {
	Nodes        int
	Edges        int
	Isolated     int
	Components   int
	MaxDegree    int
	MeanDegree   float64
	MedianDegree float64
	DegreeStdDev float64
	Density      float64
}

// Report bundles the output of Run.
type Report struct {
	Degrees     Distribution
	DistanceTwo DistanceTwoMap
	Behavior    BehaviorMap
	Summary     Summary

	// Index resolves node IDs in DistanceTwo back to record indices.
	Index *builder.IndexMap
}

// Option configures the analysis passes.
type Option func(*Options)

// Options holds parameters shared by the passes.
type Options struct {
	// Ctx allows cancellation of the per-node loops.
	Ctx context.Context

	// StrictDistanceTwo counts only nodes at shortest-path distance 2.
	StrictDistanceTwo bool

	// Logger receives per-pass debug timings.
	Logger *zap.Logger
}

// DefaultOptions returns background context, two-hop-walk distance-2
// semantics and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: zap.NewNop(),
	}
}

// WithContext sets a context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrictDistanceTwo excludes direct neighbours from distance-2 counts.
func WithStrictDistanceTwo() Option {
	return func(o *Options) {
		o.StrictDistanceTwo = true
	}
}

// WithLogger attaches a logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("analysis: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
