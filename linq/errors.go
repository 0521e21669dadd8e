package linq

import "errors"

// Sentinel errors returned by Query operations.
var (
	// ErrNoMatchingElements is returned by FirstOrFail / LastOrFail when no
	// element satisfies the predicate.
	ErrNoMatchingElements = errors.New("linq: no elements match the given condition")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("linq: macro not found")
)
