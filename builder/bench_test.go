// SPDX-License-Identifier: MIT

package builder_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/peernet/builder"
)

func benchmarkBuild(b *testing.B, n int, opts ...builder.Option) {
	records := randomSurvey(99, n)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := builder.Build(ctx, records, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuild_Pairwise1k(b *testing.B) { benchmarkBuild(b, 1000) }

func BenchmarkBuild_Pairwise1kParallel(b *testing.B) {
	benchmarkBuild(b, 1000, builder.WithWorkers(0))
}

func BenchmarkBuild_Bucketed1k(b *testing.B) {
	benchmarkBuild(b, 1000, builder.WithStrategy(builder.StrategyBucketed))
}
