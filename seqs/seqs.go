package seqs

import (
	"fmt"
	"math/rand"
	"sort"

	"golang.org/x/exp/constraints"
)

// ─────────────────────────────────────────────────────────────────────────────
// Searching & quantifiers
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for _, item := range items {
			if fns[0](item) {
				return item, true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// Last returns the last element, optionally matching fns[0].
// With a predicate, items are scanned from the end.
// Returns the zero value and false when items is empty or no element matches.
func Last[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for i := len(items) - 1; i >= 0; i-- {
			if fns[0](items[i]) {
				return items[i], true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// Any reports whether at least one element satisfies fn.
// An empty slice yields false.
func Any[T any](items []T, fn func(T) bool) bool {
	for _, item := range items {
		if fn(item) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies fn.
// An empty slice yields true.
func All[T any](items []T, fn func(T) bool) bool {
	for _, item := range items {
		if !fn(item) {
			return false
		}
	}
	return true
}

// ContainsValue reports whether items contains value (requires comparable T).
func ContainsValue[T comparable](items []T, value T) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}

// IndexOf returns the index of the first element satisfying fn, or -1.
func IndexOf[T any](items []T, fn func(T) bool) int {
	for i, item := range items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// IndexOfValue returns the index of the first occurrence of value, or -1.
func IndexOfValue[T comparable](items []T, value T) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Projection & filtering
// ─────────────────────────────────────────────────────────────────────────────

// Select applies fn to each element and returns a new slice of the results,
// in original order.
func Select[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// SelectMany applies fn to each element (producing a []U) and flattens the
// results one level, preserving order.
func SelectMany[T, U any](items []T, fn func(T) []U) []U {
	out := make([]U, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item)...)
	}
	return out
}

// Where returns the elements for which fn returns true, preserving order.
func Where[T any](items []T, fn func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if fn(item) {
			out = append(out, item)
		}
	}
	return out
}

// WhereNot returns the elements for which fn returns false.
func WhereNot[T any](items []T, fn func(T) bool) []T {
	return Where(items, func(item T) bool { return !fn(item) })
}

// Aggregate folds items to a single value of type U, starting from seed.
func Aggregate[T, U any](items []T, seed U, fn func(U, T) U) U {
	result := seed
	for _, item := range items {
		result = fn(result, item)
	}
	return result
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Distinct returns a new slice with duplicates removed, keeping the first
// occurrence of each value in original order (requires comparable T).
func Distinct[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// DistinctBy returns elements with duplicates removed using a key function,
// keeping the first occurrence of each key in original order.
func DistinctBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// Diff returns elements in a that are not in b (requires comparable T).
func Diff[T comparable](a, b []T) []T {
	set := make(map[T]struct{}, len(b))
	for _, item := range b {
		set[item] = struct{}{}
	}
	out := make([]T, 0)
	for _, item := range a {
		if _, found := set[item]; !found {
			out = append(out, item)
		}
	}
	return out
}

// Intersect returns elements that appear in both a and b (requires comparable T).
func Intersect[T comparable](a, b []T) []T {
	set := make(map[T]struct{}, len(b))
	for _, item := range b {
		set[item] = struct{}{}
	}
	out := make([]T, 0)
	for _, item := range a {
		if _, found := set[item]; found {
			out = append(out, item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Take returns a copy of at most the first n elements.
// n <= 0 yields an empty slice; oversized n is clamped.
func Take[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

// Skip returns a copy of the elements after the first n.
// n <= 0 returns all elements; n >= len(items) yields an empty slice.
func Skip[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, len(items)-n)
	copy(out, items[n:])
	return out
}

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks
}

// Concat concatenates the given slices into a single flat slice.
func Concat[T any](slices ...[]T) []T {
	total := 0
	for _, s := range slices {
		total += len(s)
	}
	out := make([]T, 0, total)
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Prepend prepends values to the front of items.
func Prepend[T any](items []T, values ...T) []T {
	out := make([]T, len(values)+len(items))
	copy(out, values)
	copy(out[len(values):], items)
	return out
}

// Partition splits items into two slices: those satisfying fn and those
// that do not, each preserving source order.
func Partition[T any](items []T, fn func(T) bool) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range items {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// Pair holds two values of possibly different types, as produced by [Zip].
// linq.Pair aliases this type, so pairs flow between the two packages freely.
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Zip pairs elements from a and b at the same index.
// Stops at the length of the shorter slice.
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return out
}

// GroupBy groups items by a comparable key K extracted by fn.
// Within each group, element order matches the source order.
func GroupBy[T any, K comparable](items []T, fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := fn(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// KeyBy creates a map[K]T from items keyed by fn.
// When multiple items share the same key, the last one wins.
func KeyBy[T any, K comparable](items []T, fn func(T) K) map[K]T {
	out := make(map[K]T, len(items))
	for _, item := range items {
		out[fn(item)] = item
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting & randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a sorted copy of items using less.
// The sort is stable: equal elements preserve their original order.
func Sort[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// OrderBy returns a copy of items sorted ascending by the ordered key
// extracted by fn, stably.
func OrderBy[T any, K constraints.Ordered](items []T, fn func(T) K) []T {
	return Sort(items, func(a, b T) bool { return fn(a) < fn(b) })
}

// OrderByDescending returns a copy of items sorted descending by fn,
// stably. The inverted comparator is applied directly, so ties keep their
// original relative order.
func OrderByDescending[T any, K constraints.Ordered](items []T, fn func(T) K) []T {
	return Sort(items, func(a, b T) bool { return fn(a) > fn(b) })
}

// Shuffle returns a randomly shuffled copy of items.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Sample returns n randomly selected items (without replacement).
// If n >= len(items), a shuffled copy of all items is returned.
func Sample[T any](items []T, n int) []T {
	s := Shuffle(items)
	if n >= len(s) {
		return s
	}
	if n < 0 {
		n = 0
	}
	return s[:n]
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum folds the numeric values extracted by fn via addition, starting
// from 0. An empty slice sums to 0.
func Sum[T any, N constraints.Integer | constraints.Float](items []T, fn func(T) N) N {
	var total N
	for _, item := range items {
		total += fn(item)
	}
	return total
}

// Average returns the arithmetic mean of the float64 values extracted
// by fn. An empty slice produces NaN, not 0; callers must guard the
// empty case themselves.
func Average[T any](items []T, fn func(T) float64) float64 {
	var total float64
	for _, item := range items {
		total += fn(item)
	}
	return total / float64(len(items))
}

// Min returns the element with the smallest ordered key extracted by fn.
// Returns the zero value and false if items is empty.
func Min[T any, K constraints.Ordered](items []T, fn func(T) K) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	minItem, minKey := items[0], fn(items[0])
	for _, item := range items[1:] {
		if k := fn(item); k < minKey {
			minKey, minItem = k, item
		}
	}
	return minItem, true
}

// Max returns the element with the largest ordered key extracted by fn.
// Returns the zero value and false if items is empty.
func Max[T any, K constraints.Ordered](items []T, fn func(T) K) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	maxItem, maxKey := items[0], fn(items[0])
	for _, item := range items[1:] {
		if k := fn(item); k > maxKey {
			maxKey, maxItem = k, item
		}
	}
	return maxItem, true
}
