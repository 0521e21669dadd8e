// Package seqs provides slice-level counterparts of the linq operators for
// code that works with plain []T values and does not need a wrapper type.
//
// Every function returns a new slice (or scalar) and never mutates its
// input. Semantics match the linq package: filtering and projection
// preserve order, Distinct keeps the first occurrence, sorts are stable in
// both directions, Take/Skip clamp out-of-range counts, and Average over an
// empty slice is NaN.
//
//	evens := seqs.Where([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
//	names := seqs.Select(users, func(u User) string { return u.Name })
//	byAge := seqs.GroupBy(users, func(u User) int { return u.Age })
//
// The package also contains dot-notation path helpers for sequences whose
// elements are nested map[string]any records (decoded JSON rows, event
// payloads):
//
//	city := seqs.PathValue(row, "user.address.city")
//
// linq.PluckPath builds on these to project such records directly from a
// query chain.
package seqs
