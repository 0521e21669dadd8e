// Package linq provides a generic, fluent Query type and standalone helper
// functions implementing LINQ-style operators (projection, filtering,
// ordering, grouping, aggregation, element access) over in-memory ordered
// sequences.
//
// # Overview
//
// The central type is [Query][T], a generic wrapper around a slice of T
// that exposes a chainable, eagerly-evaluated operator set:
//
//	result := linq.New(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).
//	    Where(func(n int) bool { return n%2 == 0 }).
//	    OrderByDescending(func(n int) float64 { return float64(n) }).
//	    Take(3).
//	    ToSlice() // → [10, 8, 6]
//
// # Immutability
//
// All transforming operators return a *new* Query over a new backing
// slice, leaving the original unchanged. This makes Query values safe to
// share across goroutines for reads without locking and avoids accidental
// aliasing bugs in operator chains. ToSlice returns a defensive copy, so
// callers cannot corrupt a query through its own output.
//
// # Eager evaluation
//
// Every operator runs to completion and materializes its result before
// returning. There is no deferred execution: a chain of n operators walks
// the data n times. Sorting operators cost O(n log n); everything else is
// linear.
//
// # Type-transforming operators
//
// Go generics do not allow methods to introduce new type parameters, so
// operators that change the element type or constrain the key type are
// exposed as package-level functions:
//
//	// Method-based (returns Query[any]):
//	q.Select(func(n int) any { return n * 2 })
//
//	// Package-level (returns Query[string], fully typed):
//	linq.Select(q, strconv.Itoa)
//
// Package-level functions: [Select], [SelectMany], [Aggregate], [GroupBy],
// [OrderBy], [OrderByDescending], [DistinctBy], [Contains], [SumBy],
// [MinBy], [MaxBy], [ToMap], [Zip], [PluckPath].
//
// # Absence and failure
//
// First/Last report absence with a comma-ok bool; FirstOrDefault /
// LastOrDefault absorb absence into a caller-supplied default; FirstOrFail /
// LastOrFail return [ErrNoMatchingElements]. Take and Skip clamp
// out-of-range counts silently. The one numeric edge case is
// [Query.Average] on an empty query, which yields NaN rather than a
// misleading 0. A panicking selector or predicate propagates to the caller
// unmodified.
//
// # Macros (runtime extension)
//
// Register named functions at runtime via [RegisterMacro] and call them
// through [Query.Macro]:
//
//	linq.RegisterMacro("evens", func(q any, _ ...any) any {
//	    return q.(*linq.Query[int]).Where(func(n int) bool { return n%2 == 0 })
//	})
//
//	evens, _ := linq.New(1, 2, 3, 4).Macro("evens")
package linq
