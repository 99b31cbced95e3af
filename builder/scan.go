// SPDX-License-Identifier: MIT
//
// scan.go: candidate pair enumeration.
//
// Both strategies return pairs with i < j, sorted by (i, j), plus the number
// of predicate evaluations performed. Workers write into private slots and
// never share a slice, so no locking is needed until the final merge.

package builder

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/peernet/survey"
)

// pair is an unordered record pair stored as i < j.
type pair struct {
	i, j int
}

type scanResult struct {
	pairs       []pair
	evaluations int64
}

// scanPairwise evaluates pred for every i < j. With workers > 1, row i is
// handled by worker i % workers, which balances the triangular row lengths.
func scanPairwise(ctx context.Context, records []survey.Record, pred survey.Predicate, workers int) (scanResult, error) {
	n := len(records)
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = max(n, 1)
	}

	slots := make([][]pair, workers)
	eg, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			var local []pair
			for i := w; i < n; i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				for j := i + 1; j < n; j++ {
					if pred(records[i], records[j]) {
						local = append(local, pair{i: i, j: j})
					}
				}
			}
			slots[w] = local

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return scanResult{}, err
	}

	return scanResult{
		pairs:       mergePairs(slots),
		evaluations: int64(n) * int64(n-1) / 2,
	}, nil
}

// scanBucketed groups records by BucketKey, sorts each group by peer
// influence, and compares each record only with the following records whose
// score is within survey.PeerInfluenceTolerance. Buckets are independent and
// are processed by up to workers goroutines.
func scanBucketed(ctx context.Context, records []survey.Record, workers int) (scanResult, error) {
	groups := bucketize(records)
	if workers < 1 {
		workers = 1
	}

	slots := make([][]pair, len(groups))
	evals := make([]int64, len(groups))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for b, members := range groups {
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sort.SliceStable(members, func(x, y int) bool {
				return records[members[x]].PeerInfluence < records[members[y]].PeerInfluence
			})
			var local []pair
			for x := 0; x < len(members); x++ {
				lo := records[members[x]]
				for y := x + 1; y < len(members); y++ {
					hi := records[members[y]]
					if hi.PeerInfluence-lo.PeerInfluence > survey.PeerInfluenceTolerance {
						break
					}
					evals[b]++
					if survey.Connect(lo, hi) {
						i, j := members[x], members[y]
						if i > j {
							i, j = j, i
						}
						local = append(local, pair{i: i, j: j})
					}
				}
			}
			slots[b] = local

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return scanResult{}, err
	}

	var total int64
	for _, e := range evals {
		total += e
	}

	return scanResult{pairs: mergePairs(slots), evaluations: total}, nil
}

// bucketize returns the record indices of each bucket, buckets ordered by
// first appearance so the work list is deterministic.
func bucketize(records []survey.Record) [][]int {
	pos := make(map[survey.BucketKey]int)
	var groups [][]int
	for i, r := range records {
		k := r.BucketKey()
		b, ok := pos[k]
		if !ok {
			b = len(groups)
			pos[k] = b
			groups = append(groups, nil)
		}
		groups[b] = append(groups[b], i)
	}

	return groups
}

// mergePairs concatenates worker slots and sorts by (i, j).
func mergePairs(slots [][]pair) []pair {
	total := 0
	for _, s := range slots {
		total += len(s)
	}
	out := make([]pair, 0, total)
	for _, s := range slots {
		out = append(out, s...)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].i != out[b].i {
			return out[a].i < out[b].i
		}
		return out[a].j < out[b].j
	})

	return out
}
