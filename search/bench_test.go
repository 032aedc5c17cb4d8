package search_test

import (
	"testing"

	"github.com/katalvlaran/nineop/search"
	"github.com/katalvlaran/nineop/tables"
)

// benchTables builds the real table set once for all benchmarks.
func benchTables(b *testing.B) *tables.Tables {
	b.Helper()

	fullOnce.Do(func() { fullTabs, fullTabErr = tables.New() })
	if fullTabErr != nil {
		b.Fatalf("tables.New failed: %v", fullTabErr)
	}

	return fullTabs
}

// BenchmarkRun_Exhaustive100 scans the first 100 permutations exhaustively:
// 100 × 70 × 24 × 14 ≈ 2.35M combinations per iteration.
func BenchmarkRun_Exhaustive100(b *testing.B) {
	tb := benchTables(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Run(tb, 0, 100); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

// BenchmarkRun_Fast2000 scans the first 2000 permutations in fast mode —
// the pruned workload the heuristic trades completeness for.
func BenchmarkRun_Fast2000(b *testing.B) {
	tb := benchTables(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Run(tb, 0, 2000, search.WithFastMode()); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

// BenchmarkRun_SingleWorker isolates the sequential inner-loop cost from
// scheduling overhead.
func BenchmarkRun_SingleWorker(b *testing.B) {
	tb := benchTables(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Run(tb, 0, 50, search.WithWorkers(1)); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}
