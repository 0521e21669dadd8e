package linq_test

import (
	"testing"

	"github.com/golinq/go-query-utils/linq"
)

// makeInts creates a Query[int] of size n for benchmarks.
func makeInts(n int) *linq.Query[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return linq.From(items)
}

func BenchmarkWhere(b *testing.B) {
	q := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Where(func(n int) bool { return n%2 == 0 })
	}
}

func BenchmarkSelectFunc(b *testing.B) {
	q := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		linq.Select(q, func(n int) int { return n * 2 })
	}
}

func BenchmarkOrderBy(b *testing.B) {
	items := make([]int, 10_000)
	for i := range items {
		items[i] = (i * 7919) % 10_000 // deterministic scramble
	}
	q := linq.From(items)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		linq.OrderBy(q, func(n int) int { return n })
	}
}

func BenchmarkGroupByFunc(b *testing.B) {
	q := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		linq.GroupBy(q, func(n int) int { return n % 10 })
	}
}

func BenchmarkDistinct(b *testing.B) {
	// 50% duplicates
	items := make([]int, 10_000)
	for i := range items {
		items[i] = i % 5000
	}
	q := linq.From(items)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		linq.DistinctBy(q, func(n int) int { return n })
	}
}

func BenchmarkSum(b *testing.B) {
	q := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Sum(func(n int) float64 { return float64(n) })
	}
}

func BenchmarkZip(b *testing.B) {
	x := makeInts(10_000)
	y := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		linq.Zip(x, y)
	}
}
