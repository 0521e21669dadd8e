package linq_test

import (
	"strconv"
	"testing"

	"github.com/golinq/go-query-utils/linq"
	"github.com/golinq/go-query-utils/seqs"
)

type employee struct {
	Name string
	Age  int
}

func staff() *linq.Query[employee] {
	return linq.New(
		employee{Name: "Alice", Age: 30},
		employee{Name: "Bob", Age: 25},
		employee{Name: "Alice", Age: 28},
	)
}

func TestSelectFunc(t *testing.T) {
	got := linq.Select(ints(1, 2, 3), func(n int) string {
		return strconv.Itoa(n * 2)
	}).ToSlice()
	assertSlice(t, got, []string{"2", "4", "6"})
}

func TestSelectIdentity(t *testing.T) {
	got := linq.Select(ints(3, 1, 2), func(n int) int { return n }).ToSlice()
	assertSlice(t, got, []int{3, 1, 2})
}

func TestSelectPreservesLength(t *testing.T) {
	q := ints(1, 2, 3, 4)
	if linq.Select(q, func(n int) bool { return n > 2 }).Count() != q.Count() {
		t.Fatal("Select must never filter")
	}
}

func TestSelectManyFunc(t *testing.T) {
	got := linq.SelectMany(ints(1, 2, 3), func(n int) []string {
		return []string{strconv.Itoa(n), strconv.Itoa(n * 10)}
	}).ToSlice()
	assertSlice(t, got, []string{"1", "10", "2", "20", "3", "30"})
}

func TestAggregateFunc(t *testing.T) {
	// int → string
	s := linq.Aggregate(ints(1, 2, 3), "", func(acc string, n int) string {
		if acc == "" {
			return strconv.Itoa(n)
		}
		return acc + "," + strconv.Itoa(n)
	})
	if s != "1,2,3" {
		t.Fatalf("Aggregate = %q; want \"1,2,3\"", s)
	}
}

func TestGroupByFunc(t *testing.T) {
	groups := linq.GroupBy(staff(), func(e employee) string { return e.Name })

	alice := groups["Alice"]
	if alice.Count() != 2 {
		t.Fatalf("Alice group length = %d; want 2", alice.Count())
	}
	// within a group, source order is preserved
	first, _ := alice.First()
	last, _ := alice.Last()
	if first.Age != 30 || last.Age != 28 {
		t.Fatalf("Alice group order = [%d, %d]; want [30, 28]", first.Age, last.Age)
	}
	if groups["Bob"].Count() != 1 {
		t.Fatal("Bob group should have one member")
	}
}

func TestGroupByPartitionLaw(t *testing.T) {
	q := ints(1, 2, 3, 4, 5, 6, 7)
	groups := linq.GroupBy(q, func(n int) int { return n % 3 })

	total := 0
	for _, g := range groups {
		total += g.Count()
	}
	if total != q.Count() {
		t.Fatalf("groups cover %d elements; want %d", total, q.Count())
	}
	for k, g := range groups {
		if !g.All(func(n int) bool { return n%3 == k }) {
			t.Fatalf("group %d contains foreign elements: %v", k, g)
		}
	}
}

func TestOrderByFunc(t *testing.T) {
	got := linq.OrderBy(staff(), func(e employee) int { return e.Age }).ToSlice()
	if got[0].Age != 25 || got[1].Age != 28 || got[2].Age != 30 {
		t.Fatalf("OrderBy ages = %v", got)
	}
}

func TestOrderByFuncStability(t *testing.T) {
	got := linq.OrderBy(staff(), func(e employee) string { return e.Name }).ToSlice()
	// the two Alices keep source order: 30 before 28
	if got[0].Age != 30 || got[1].Age != 28 || got[2].Name != "Bob" {
		t.Fatalf("OrderBy by name = %v", got)
	}
}

func TestOrderByDescendingFunc(t *testing.T) {
	got := linq.OrderByDescending(staff(), func(e employee) string { return e.Name }).ToSlice()
	// descending comparator applied directly: Bob first, Alices in source order
	if got[0].Name != "Bob" || got[1].Age != 30 || got[2].Age != 28 {
		t.Fatalf("OrderByDescending = %v", got)
	}
}

func TestDistinctByFunc(t *testing.T) {
	got := linq.DistinctBy(staff(), func(e employee) string { return e.Name }).ToSlice()
	if len(got) != 2 || got[0].Age != 30 || got[1].Name != "Bob" {
		t.Fatalf("DistinctBy = %v", got)
	}
}

func TestContainsFunc(t *testing.T) {
	if !linq.Contains(ints(1, 2, 3), 2) {
		t.Fatal("Contains should find 2")
	}
	if linq.Contains(ints(1, 2, 3), 9) {
		t.Fatal("Contains should not find 9")
	}
}

func TestSumByFunc(t *testing.T) {
	got := linq.SumBy(staff(), func(e employee) int { return e.Age })
	if got != 83 {
		t.Fatalf("SumBy = %d; want 83", got)
	}
	if linq.SumBy(linq.Empty[employee](), func(e employee) int { return e.Age }) != 0 {
		t.Fatal("SumBy over empty query must be 0")
	}
}

func TestMinByMaxByFunc(t *testing.T) {
	youngest, ok := linq.MinBy(staff(), func(e employee) int { return e.Age })
	if !ok || youngest.Name != "Bob" {
		t.Fatalf("MinBy = %v, %v", youngest, ok)
	}
	oldest, ok := linq.MaxBy(staff(), func(e employee) int { return e.Age })
	if !ok || oldest.Age != 30 {
		t.Fatalf("MaxBy = %v, %v", oldest, ok)
	}
	if _, ok := linq.MinBy(linq.Empty[employee](), func(e employee) int { return e.Age }); ok {
		t.Fatal("MinBy on empty should report absence")
	}
}

func TestToMapFunc(t *testing.T) {
	byName := linq.ToMap(staff(), func(e employee) string { return e.Name })
	if len(byName) != 2 {
		t.Fatalf("ToMap size = %d; want 2", len(byName))
	}
	// last one wins for duplicate keys
	if byName["Alice"].Age != 28 {
		t.Fatalf("ToMap[Alice].Age = %d; want 28", byName["Alice"].Age)
	}
}

func TestZipFunc(t *testing.T) {
	pairs := linq.Zip(linq.New("a", "b", "c"), ints(1, 2)).ToSlice()
	if len(pairs) != 2 {
		t.Fatalf("Zip length = %d; want 2", len(pairs))
	}
	if pairs[0].First != "a" || pairs[0].Second != 1 {
		t.Fatalf("Zip[0] = %v", pairs[0])
	}
	if pairs[0].String() != "(a, 1)" {
		t.Fatalf("Pair.String = %q", pairs[0].String())
	}
}

func TestPairAliasesSeqsPair(t *testing.T) {
	// the two Zips produce the same type, not two look-alikes
	var p linq.Pair[string, int] = seqs.Zip([]string{"a"}, []int{1})[0]
	if p.First != "a" || p.Second != 1 {
		t.Fatalf("aliased pair = %v", p)
	}
	q := linq.Zip(linq.New("a"), ints(1))
	if got, _ := q.First(); got != p {
		t.Fatalf("pairs differ across packages: %v vs %v", got, p)
	}
}

func TestPluckPathFunc(t *testing.T) {
	rows := linq.New(
		map[string]any{"user": map[string]any{"address": map[string]any{"city": "London"}}},
		map[string]any{"user": map[string]any{"address": map[string]any{"city": "Oslo"}}},
		map[string]any{"user": map[string]any{"name": "nobody"}},
	)

	cities := linq.PluckPath(rows, "user.address.city").ToSlice()
	assertSlice(t, cities, []any{"London", "Oslo", nil})

	withDefault := linq.PluckPath(rows, "user.address.city", "unknown").ToSlice()
	assertSlice(t, withDefault, []any{"London", "Oslo", "unknown"})
}
