package linq

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Query is a generic, immutable-by-default wrapper around an ordered
// slice of T, exposing a LINQ-style operator set.
//
// Every operator that transforms the sequence returns a *new* Query over a
// freshly allocated backing slice, leaving the receiver unchanged. Operators
// evaluate eagerly: each call runs to completion and materializes its
// result before returning. This design is goroutine-safe for reads
// (multiple goroutines may query the same instance concurrently) and avoids
// accidental aliasing bugs in operator chains.
//
// # Creating a query
//
//	q := linq.New(1, 2, 3, 4, 5)
//	q := linq.From([]string{"a", "b", "c"})
//	q := linq.Empty[int]()
//
// # Method chaining
//
//	result := linq.New(1, 2, 3, 4, 5, 6).
//	    Where(func(n int) bool { return n%2 == 0 }).
//	    OrderByDescending(func(n int) float64 { return float64(n) }).
//	    Take(2)
//
// # Type-transforming operators
//
// Go generics do not allow methods to introduce new type parameters.
// Operators that change the element type (or need a typed key) are exposed
// as package-level functions:
//
//	names := linq.Select(users, func(u User) string { return u.Name })
//	byAge := linq.GroupBy(users, func(u User) int { return u.Age })
//
// # Operator contracts
//
// Order is significant and preserved unless an operator explicitly
// reorders. Ordering operators use a stable sort, so equal-key elements
// retain their original relative order in both directions. First/Last
// signal absence with a comma-ok bool rather than a panic or error;
// the OrDefault variants absorb absence into a caller-supplied default.
type Query[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Query from a variadic list of elements (copied).
func New[T any](items ...T) *Query[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Query[T]{items: dst}
}

// From creates a Query from a slice (the slice is copied).
func From[T any](items []T) *Query[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Query[T]{items: dst}
}

// Empty creates an empty Query of type T.
func Empty[T any]() *Query[T] {
	return &Query[T]{items: []T{}}
}

// Repeat creates a Query containing item repeated n times.
// n <= 0 yields an empty query.
func Repeat[T any](item T, n int) *Query[T] {
	if n < 0 {
		n = 0
	}
	items := make([]T, n)
	for i := range items {
		items[i] = item
	}
	return &Query[T]{items: items}
}

// Range creates a Query of count sequential integers starting at start.
// count <= 0 yields an empty query.
func Range(start, count int) *Query[int] {
	if count < 0 {
		count = 0
	}
	items := make([]int, count)
	for i := range items {
		items[i] = start + i
	}
	return &Query[int]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// ToSlice returns a copy of the underlying slice.
// Mutating the returned slice never affects the query.
func (q *Query[T]) ToSlice() []T {
	out := make([]T, len(q.items))
	copy(out, q.items)
	return out
}

// ToArray is an alias for [Query.ToSlice].
func (q *Query[T]) ToArray() []T { return q.ToSlice() }

// ToJSON serialises the query elements to a JSON array.
func (q *Query[T]) ToJSON() ([]byte, error) {
	return json.Marshal(q.items)
}

// Count returns the number of elements in the query.
func (q *Query[T]) Count() int { return len(q.items) }

// IsEmpty reports whether the query contains no elements.
func (q *Query[T]) IsEmpty() bool { return len(q.items) == 0 }

// IsNotEmpty reports whether the query has at least one element.
func (q *Query[T]) IsNotEmpty() bool { return len(q.items) > 0 }

// ElementAt returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (q *Query[T]) ElementAt(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(q.items) {
		return zero, false
	}
	return q.items[index], true
}

// String returns a JSON representation of the query.
// It implements [fmt.Stringer].
func (q *Query[T]) String() string {
	b, err := q.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", q.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(elem, index) for every element, in order.
func (q *Query[T]) Each(fn func(T, int)) {
	for i, item := range q.items {
		fn(item, i)
	}
}

// Tap calls fn(q) for side-effects (e.g. logging or debugging) and returns
// q unchanged for further chaining.
func (q *Query[T]) Tap(fn func(*Query[T])) *Query[T] {
	fn(q)
	return q
}

// ─────────────────────────────────────────────────────────────────────────────
// Quantifiers & element lookup
// ─────────────────────────────────────────────────────────────────────────────

// Any reports whether at least one element satisfies fns[0].
// Called without a predicate it reports whether the query is non-empty.
// An empty query yields false either way.
func (q *Query[T]) Any(fns ...func(T) bool) bool {
	if len(fns) == 0 {
		return len(q.items) > 0
	}
	for _, item := range q.items {
		if fns[0](item) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies fn.
// An empty query yields true (vacuous truth).
func (q *Query[T]) All(fn func(T) bool) bool {
	for _, item := range q.items {
		if !fn(item) {
			return false
		}
	}
	return true
}

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when the query is empty or no element
// satisfies the predicate.
func (q *Query[T]) First(fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for _, item := range q.items {
			if fns[0](item) {
				return item, true
			}
		}
		return zero, false
	}
	if len(q.items) == 0 {
		return zero, false
	}
	return q.items[0], true
}

// FirstOrDefault is like [Query.First] but returns def instead of the
// absence flag when the query is empty or nothing matches.
// The default is returned as supplied, not copied or transformed.
func (q *Query[T]) FirstOrDefault(def T, fns ...func(T) bool) T {
	if item, ok := q.First(fns...); ok {
		return item
	}
	return def
}

// FirstOrFail returns the first element matching fn, or [ErrNoMatchingElements].
func (q *Query[T]) FirstOrFail(fn func(T) bool) (T, error) {
	item, ok := q.First(fn)
	if !ok {
		return item, ErrNoMatchingElements
	}
	return item, nil
}

// Last returns the last element, optionally matching fns[0].
// With a predicate the query is scanned from the end, so the element
// closest to the end that satisfies it is returned.
// Returns the zero value and false when the query is empty or no element
// satisfies the predicate.
func (q *Query[T]) Last(fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for i := len(q.items) - 1; i >= 0; i-- {
			if fns[0](q.items[i]) {
				return q.items[i], true
			}
		}
		return zero, false
	}
	if len(q.items) == 0 {
		return zero, false
	}
	return q.items[len(q.items)-1], true
}

// LastOrDefault is like [Query.Last] but returns def instead of the
// absence flag when the query is empty or nothing matches.
func (q *Query[T]) LastOrDefault(def T, fns ...func(T) bool) T {
	if item, ok := q.Last(fns...); ok {
		return item
	}
	return def
}

// LastOrFail returns the last element matching fn, or [ErrNoMatchingElements].
func (q *Query[T]) LastOrFail(fn func(T) bool) (T, error) {
	item, ok := q.Last(fn)
	if !ok {
		return item, ErrNoMatchingElements
	}
	return item, nil
}

// IndexOf returns the index of the first element for which fn returns true,
// or -1.
func (q *Query[T]) IndexOf(fn func(T) bool) int {
	for i, item := range q.items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Where returns a new query with only the elements for which fn returns
// true, preserving their relative order.
func (q *Query[T]) Where(fn func(T) bool) *Query[T] {
	out := make([]T, 0, len(q.items))
	for _, item := range q.items {
		if fn(item) {
			out = append(out, item)
		}
	}
	return &Query[T]{items: out}
}

// WhereNot returns a new query with elements for which fn returns true
// removed. It is the complement of [Query.Where].
func (q *Query[T]) WhereNot(fn func(T) bool) *Query[T] {
	return q.Where(func(item T) bool { return !fn(item) })
}

// Distinct returns a new query retaining the first occurrence of each
// distinct key in original order; later elements with an already-seen key
// are discarded.
//
// fns[0] extracts the comparison key. When omitted, elements are keyed by
// their formatted value (fmt.Sprintf("%v")), which gives structural
// equality for any T. Values of different types that format identically
// collide under this key: in a Query[any], int 1 and float64 1 both key as
// "1". For exact comparable-key semantics use the package-level
// [DistinctBy].
func (q *Query[T]) Distinct(fns ...func(T) any) *Query[T] {
	key := func(item T) any { return fmt.Sprintf("%v", item) }
	if len(fns) > 0 && fns[0] != nil {
		key = fns[0]
	}
	seen := make(map[any]struct{}, len(q.items))
	return q.Where(func(item T) bool {
		k := key(item)
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Projection (untyped method variants)
// ─────────────────────────────────────────────────────────────────────────────

// Select returns a new Query[any] with every element transformed by fn,
// in original order. The result always has the same length as the source.
//
// For type-safe projection to a concrete type U, use the package-level
// [Select] function instead.
func (q *Query[T]) Select(fn func(T) any) *Query[any] {
	out := make([]any, len(q.items))
	for i, item := range q.items {
		out[i] = fn(item)
	}
	return &Query[any]{items: out}
}

// SelectMany maps each element to a []any via fn and flattens the results
// one level.
//
// For type-safe flat projection, use the package-level [SelectMany].
func (q *Query[T]) SelectMany(fn func(T) []any) *Query[any] {
	out := make([]any, 0, len(q.items))
	for _, item := range q.items {
		out = append(out, fn(item)...)
	}
	return &Query[any]{items: out}
}

// GroupBy partitions elements into groups keyed by fn.
// Within each group, element order matches the source order; map iteration
// order across groups is not specified.
//
// Returns map[any]*Query[T]. For typed keys use the package-level [GroupBy].
func (q *Query[T]) GroupBy(fn func(T) any) map[any]*Query[T] {
	groups := make(map[any]*Query[T])
	for _, item := range q.items {
		k := fn(item)
		if groups[k] == nil {
			groups[k] = Empty[T]()
		}
		groups[k].items = append(groups[k].items, item)
	}
	return groups
}

// Partition splits the query into two:
// the first contains elements for which fn returns true; the second the rest.
// Both halves preserve source order.
func (q *Query[T]) Partition(fn func(T) bool) (*Query[T], *Query[T]) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range q.items {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return &Query[T]{items: pass}, &Query[T]{items: fail}
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a new query sorted by the given less function.
// The sort is stable: equal elements preserve their original order.
func (q *Query[T]) Sort(less func(a, b T) bool) *Query[T] {
	out := make([]T, len(q.items))
	copy(out, q.items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return &Query[T]{items: out}
}

// OrderBy returns a new query sorted ascending by the float64 key extracted
// by fn. Equal-key elements retain their original relative order.
//
// For keys of any ordered type, use the package-level [OrderBy].
func (q *Query[T]) OrderBy(fn func(T) float64) *Query[T] {
	return q.Sort(func(a, b T) bool { return fn(a) < fn(b) })
}

// OrderByDescending returns a new query sorted descending by fn.
// The descending comparator is applied to the stable sort directly, so ties
// keep their original relative order; it is not a reversal of the ascending
// result (reversing would invert tie order too).
func (q *Query[T]) OrderByDescending(fn func(T) float64) *Query[T] {
	return q.Sort(func(a, b T) bool { return fn(a) > fn(b) })
}

// Reverse returns a new query with elements in reversed order.
func (q *Query[T]) Reverse() *Query[T] {
	n := len(q.items)
	out := make([]T, n)
	for i, item := range q.items {
		out[n-1-i] = item
	}
	return &Query[T]{items: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take returns at most n elements from the start.
// n <= 0 yields an empty query; n beyond the length returns everything.
// Out-of-range counts are clamped, never an error.
func (q *Query[T]) Take(n int) *Query[T] {
	if n < 0 {
		n = 0
	}
	if n > len(q.items) {
		n = len(q.items)
	}
	return From(q.items[:n])
}

// TakeWhile returns elements from the start while fn returns true.
func (q *Query[T]) TakeWhile(fn func(T) bool) *Query[T] {
	out := make([]T, 0)
	for _, item := range q.items {
		if !fn(item) {
			break
		}
		out = append(out, item)
	}
	return &Query[T]{items: out}
}

// Skip returns all elements after the first n.
// n <= 0 returns all elements unchanged; n >= length yields an empty query.
func (q *Query[T]) Skip(n int) *Query[T] {
	if n < 0 {
		n = 0
	}
	if n >= len(q.items) {
		return Empty[T]()
	}
	return From(q.items[n:])
}

// SkipWhile skips elements while fn returns true, then returns the rest.
func (q *Query[T]) SkipWhile(fn func(T) bool) *Query[T] {
	for i, item := range q.items {
		if !fn(item) {
			return From(q.items[i:])
		}
	}
	return Empty[T]()
}

// Chunk splits the query into consecutive groups of size, returning a plain
// [][]T. The last group may contain fewer than size elements.
// Returns an empty [][]T if size <= 0 or the query is empty.
func (q *Query[T]) Chunk(size int) [][]T {
	if size <= 0 || len(q.items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(q.items)+size-1)/size)
	for i := 0; i < len(q.items); i += size {
		end := i + size
		if end > len(q.items) {
			end = len(q.items)
		}
		chunk := make([]T, end-i)
		copy(chunk, q.items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks
}

// ─────────────────────────────────────────────────────────────────────────────
// Combining
// ─────────────────────────────────────────────────────────────────────────────

// Append returns a new query with items appended.
func (q *Query[T]) Append(items ...T) *Query[T] {
	out := make([]T, len(q.items)+len(items))
	copy(out, q.items)
	copy(out[len(q.items):], items)
	return &Query[T]{items: out}
}

// Prepend returns a new query with items inserted at the front.
func (q *Query[T]) Prepend(items ...T) *Query[T] {
	out := make([]T, len(items)+len(q.items))
	copy(out, items)
	copy(out[len(items):], q.items)
	return &Query[T]{items: out}
}

// Concat returns a new query with all elements from other appended.
func (q *Query[T]) Concat(other *Query[T]) *Query[T] {
	return q.Append(other.items...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum folds the float64 values extracted by fn via addition, starting
// from 0. An empty query sums to 0.
func (q *Query[T]) Sum(fn func(T) float64) float64 {
	var sum float64
	for _, item := range q.items {
		sum += fn(item)
	}
	return sum
}

// Average returns Sum(fn) divided by the element count.
//
// An empty query produces NaN (the 0/0 of IEEE-754 division), not 0:
// substituting 0 would be indistinguishable from a real zero mean.
// Callers must guard with [Query.IsEmpty] or math.IsNaN.
func (q *Query[T]) Average(fn func(T) float64) float64 {
	return q.Sum(fn) / float64(len(q.items))
}

// Min returns the element with the smallest value extracted by fn.
// Returns the zero value and false if the query is empty.
func (q *Query[T]) Min(fn func(T) float64) (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	minItem, minVal := q.items[0], fn(q.items[0])
	for _, item := range q.items[1:] {
		if v := fn(item); v < minVal {
			minVal, minItem = v, item
		}
	}
	return minItem, true
}

// Max returns the element with the largest value extracted by fn.
// Returns the zero value and false if the query is empty.
func (q *Query[T]) Max(fn func(T) float64) (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	maxItem, maxVal := q.items[0], fn(q.items[0])
	for _, item := range q.items[1:] {
		if v := fn(item); v > maxVal {
			maxVal, maxItem = v, item
		}
	}
	return maxItem, true
}

// Aggregate folds the query to a single value of the same type T,
// starting from seed.
//
// For folds that change the type (T → U), use the package-level [Aggregate].
func (q *Query[T]) Aggregate(seed T, fn func(acc, elem T) T) T {
	result := seed
	for _, item := range q.items {
		result = fn(result, item)
	}
	return result
}
