package linq

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/golinq/go-query-utils/seqs"
)

// This file contains package-level generic functions for operators that
// transform a Query[T] to a Query[U] (T ≠ U) or that need a constrained
// key type.
//
// Go generics do not allow methods to introduce their own type parameters,
// so these operators must be stand-alone functions. They are designed to
// compose with method-chaining calls:
//
//	result := linq.Select(
//	    linq.New(1, 2, 3, 4, 5).Where(func(n int) bool { return n%2 == 0 }),
//	    strconv.Itoa,
//	)

// Number bounds the numeric types accepted by the typed aggregations.
type Number interface {
	constraints.Integer | constraints.Float
}

// Select applies fn to every element, in original order, and returns a new
// Query[U]. The result always has the same length as the source.
//
//	doubled := linq.Select(linq.New(1, 2, 3),
//	    func(n int) string { return strconv.Itoa(n * 2) })
func Select[T, U any](q *Query[T], fn func(T) U) *Query[U] {
	out := make([]U, len(q.items))
	for i, item := range q.items {
		out[i] = fn(item)
	}
	return &Query[U]{items: out}
}

// SelectMany applies fn to every element (producing a []U per element) and
// flattens the results into a single Query[U], preserving order.
//
//	words := linq.SelectMany(linq.New("hello world", "foo bar"),
//	    func(s string) []string { return strings.Fields(s) })
//	// → ["hello", "world", "foo", "bar"]
func SelectMany[T, U any](q *Query[T], fn func(T) []U) *Query[U] {
	out := make([]U, 0, len(q.items))
	for _, item := range q.items {
		out = append(out, fn(item)...)
	}
	return &Query[U]{items: out}
}

// Aggregate folds Query[T] to a single value of type U, starting from seed.
//
//	csv := linq.Aggregate(linq.New(1, 2, 3), "",
//	    func(acc string, n int) string { ... })
func Aggregate[T, U any](q *Query[T], seed U, fn func(U, T) U) U {
	result := seed
	for _, item := range q.items {
		result = fn(result, item)
	}
	return result
}

// GroupBy partitions elements into groups keyed by the comparable key K
// extracted by fn. Within each group, element order matches the source
// order; a key seen for the first time starts a new group. Iteration order
// over the returned map is not specified.
//
//	byDept := linq.GroupBy(employees,
//	    func(e Employee) string { return e.Department })
func GroupBy[T any, K comparable](q *Query[T], fn func(T) K) map[K]*Query[T] {
	groups := make(map[K]*Query[T])
	for _, item := range q.items {
		k := fn(item)
		if groups[k] == nil {
			groups[k] = Empty[T]()
		}
		groups[k].items = append(groups[k].items, item)
	}
	return groups
}

// OrderBy returns a new query sorted ascending by the ordered key extracted
// by fn. The sort is stable: equal-key elements retain their original
// relative order. The source query is not mutated.
func OrderBy[T any, K constraints.Ordered](q *Query[T], fn func(T) K) *Query[T] {
	out := make([]T, len(q.items))
	copy(out, q.items)
	sort.SliceStable(out, func(i, j int) bool { return fn(out[i]) < fn(out[j]) })
	return &Query[T]{items: out}
}

// OrderByDescending returns a new query sorted descending by fn.
// The inverted comparator is applied to the stable sort directly, so
// equal-key elements retain their original relative order; the result is
// not a reversal of [OrderBy].
func OrderByDescending[T any, K constraints.Ordered](q *Query[T], fn func(T) K) *Query[T] {
	out := make([]T, len(q.items))
	copy(out, q.items)
	sort.SliceStable(out, func(i, j int) bool { return fn(out[i]) > fn(out[j]) })
	return &Query[T]{items: out}
}

// DistinctBy returns a new query retaining the first occurrence of each
// distinct comparable key in original order.
func DistinctBy[T any, K comparable](q *Query[T], fn func(T) K) *Query[T] {
	seen := make(map[K]struct{}, len(q.items))
	return q.Where(func(item T) bool {
		k := fn(item)
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}

// Contains reports whether the query contains value (requires comparable T).
func Contains[T comparable](q *Query[T], value T) bool {
	for _, item := range q.items {
		if item == value {
			return true
		}
	}
	return false
}

// SumBy folds the numeric values extracted by fn via addition, starting
// from 0, preserving the numeric type N. An empty query sums to 0.
func SumBy[T any, N Number](q *Query[T], fn func(T) N) N {
	var sum N
	for _, item := range q.items {
		sum += fn(item)
	}
	return sum
}

// MinBy returns the element with the smallest ordered key extracted by fn.
// Returns the zero value and false if the query is empty.
// When several elements share the minimal key, the first wins.
func MinBy[T any, K constraints.Ordered](q *Query[T], fn func(T) K) (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	minItem, minKey := q.items[0], fn(q.items[0])
	for _, item := range q.items[1:] {
		if k := fn(item); k < minKey {
			minKey, minItem = k, item
		}
	}
	return minItem, true
}

// MaxBy returns the element with the largest ordered key extracted by fn.
// Returns the zero value and false if the query is empty.
// When several elements share the maximal key, the first wins.
func MaxBy[T any, K constraints.Ordered](q *Query[T], fn func(T) K) (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	maxItem, maxKey := q.items[0], fn(q.items[0])
	for _, item := range q.items[1:] {
		if k := fn(item); k > maxKey {
			maxKey, maxItem = k, item
		}
	}
	return maxItem, true
}

// ToMap builds a map[K]T keyed by the value extracted by fn.
// When multiple elements share the same key, the last one wins.
//
//	byID := linq.ToMap(users, func(u User) int { return u.ID })
func ToMap[T any, K comparable](q *Query[T], fn func(T) K) map[K]T {
	out := make(map[K]T, len(q.items))
	for _, item := range q.items {
		out[fn(item)] = item
	}
	return out
}

// Zip combines two queries element-by-element into Pairs.
// Stops at the shorter of the two.
//
//	pairs := linq.Zip(linq.New("a", "b", "c"), linq.New(1, 2, 3))
//	// → [(a,1), (b,2), (c,3)]
func Zip[A, B any](a *Query[A], b *Query[B]) *Query[Pair[A, B]] {
	n := len(a.items)
	if len(b.items) < n {
		n = len(b.items)
	}
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a.items[i], Second: b.items[i]}
	}
	return &Query[Pair[A, B]]{items: out}
}

// PluckPath projects each map element to the value found at the
// dot-notation path, in original order. Elements missing the path (or with
// a non-map value along the way) yield def[0], or nil when no default is
// given.
//
//	cities := linq.PluckPath(rows, "user.address.city")
func PluckPath(q *Query[map[string]any], path string, def ...any) *Query[any] {
	out := make([]any, len(q.items))
	for i, item := range q.items {
		out[i] = seqs.PathValue(item, path, def...)
	}
	return &Query[any]{items: out}
}
