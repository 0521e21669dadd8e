package linq

// Queryable is the interface satisfied by [Query][T].
//
// Accept Queryable in your own functions and interfaces so that consumers
// can substitute alternative implementations without depending on the
// concrete *Query type.
//
// A minimal implementation only needs to provide these methods; all higher-
// level helpers are built on top of this surface.
type Queryable[T any] interface {
	// ToSlice returns a copy of every element as a plain Go slice.
	ToSlice() []T

	// Count returns the number of elements.
	Count() int

	// Each calls fn(elem, index) for every element, in order.
	Each(fn func(T, int))

	// Where returns a new query containing only elements for which fn
	// returns true.
	Where(fn func(T) bool) *Query[T]

	// WhereNot returns a new query with elements for which fn returns
	// true removed.
	WhereNot(fn func(T) bool) *Query[T]

	// Any reports whether at least one element satisfies fns[0], or
	// whether the query is non-empty when no predicate is given.
	Any(fns ...func(T) bool) bool

	// All reports whether every element satisfies fn.
	All(fn func(T) bool) bool

	// First returns the first element, optionally matching fns[0].
	// Returns the zero value and false when the query is empty or no
	// element matches.
	First(fns ...func(T) bool) (T, bool)

	// Last returns the last element, optionally matching fns[0].
	// Returns the zero value and false when the query is empty or no
	// element matches.
	Last(fns ...func(T) bool) (T, bool)

	// IsEmpty reports whether the query contains no elements.
	IsEmpty() bool

	// IsNotEmpty reports whether the query contains at least one element.
	IsNotEmpty() bool
}

var _ Queryable[int] = (*Query[int])(nil)
