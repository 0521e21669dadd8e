package seqs

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation path helpers for map[string]any elements
//
// Sequences frequently carry loosely-typed records (decoded JSON rows,
// event payloads) as map[string]any. These functions read, write, and test
// values in such nested maps using dot-separated key paths, so projections
// can reach into a record without hand-written type assertions at every
// level.
//
// Example element:
//
//	row := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//
//	PathValue(row, "user.address.city")  → "London"
//	HasPath(row, "user.name")            → true
// ─────────────────────────────────────────────────────────────────────────────

// PathValue retrieves a value from m using a dot-notation path.
// Returns def[0] (or nil) when the path does not resolve, either because a
// key is missing or because an intermediate value is not a map.
//
//	PathValue(row, "user.address.city")        // "London"
//	PathValue(row, "user.missing", "default")  // "default"
func PathValue(m map[string]any, path string, def ...any) any {
	segments := strings.Split(path, ".")
	current := m
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			if len(def) > 0 {
				return def[0]
			}
			return nil
		}
		if i == len(segments)-1 {
			return val
		}
		nested, ok := val.(map[string]any)
		if !ok {
			if len(def) > 0 {
				return def[0]
			}
			return nil
		}
		current = nested
	}
	return nil
}

// SetPath writes value into m at the dot-notation path, creating
// intermediate maps as needed.
//
//	SetPath(row, "user.address.postcode", "EC1")
func SetPath(m map[string]any, path string, value any) {
	segments := strings.SplitN(path, ".", 2)
	if len(segments) == 1 {
		m[path] = value
		return
	}
	seg, rest := segments[0], segments[1]
	nested, ok := m[seg].(map[string]any)
	if !ok {
		nested = make(map[string]any)
		m[seg] = nested
	}
	SetPath(nested, rest, value)
}

// HasPath reports whether the dot-notation path resolves in m.
func HasPath(m map[string]any, path string) bool {
	return hasSegments(m, strings.Split(path, "."))
}

func hasSegments(m map[string]any, segments []string) bool {
	if len(segments) == 0 {
		return false
	}
	val, ok := m[segments[0]]
	if !ok {
		return false
	}
	if len(segments) == 1 {
		return true
	}
	nested, ok := val.(map[string]any)
	if !ok {
		return false
	}
	return hasSegments(nested, segments[1:])
}

// HasAllPaths reports whether all dot-notation paths resolve in m.
func HasAllPaths(m map[string]any, paths ...string) bool {
	for _, path := range paths {
		if !HasPath(m, path) {
			return false
		}
	}
	return true
}

// HasAnyPaths reports whether any of the dot-notation paths resolve in m.
func HasAnyPaths(m map[string]any, paths ...string) bool {
	for _, path := range paths {
		if HasPath(m, path) {
			return true
		}
	}
	return false
}

// FlattenPaths flattens a nested map[string]any into a single-level map
// using dot notation for the keys.
//
//	FlattenPaths(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
func FlattenPaths(m map[string]any) map[string]any {
	out := make(map[string]any)
	flattenInto("", m, out)
	return out
}

func flattenInto(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flattenInto(key, nested, out)
		} else {
			out[key] = v
		}
	}
}

// ExpandPaths expands a flat dot-notation map into a nested map[string]any.
//
//	ExpandPaths(map[string]any{"a.b": 1, "a.c": 2})
//	// → map[string]any{"a": map[string]any{"b": 1, "c": 2}}
func ExpandPaths(m map[string]any) map[string]any {
	out := make(map[string]any)
	for path, val := range m {
		SetPath(out, path, val)
	}
	return out
}

// ForgetPath removes the dot-notation path from m.
// Intermediate maps are not cleaned up.
func ForgetPath(m map[string]any, path string) {
	segments := strings.SplitN(path, ".", 2)
	if len(segments) == 1 {
		delete(m, path)
		return
	}
	seg, rest := segments[0], segments[1]
	nested, ok := m[seg].(map[string]any)
	if !ok {
		return
	}
	ForgetPath(nested, rest)
}

// OnlyKeys returns a new map containing only the specified top-level keys.
// Dot-notation paths are not supported here; use [PathValue] and [SetPath]
// for fine-grained filtering.
func OnlyKeys(m map[string]any, keys ...string) map[string]any {
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// ExceptKeys returns a shallow copy of m without the specified top-level keys.
func ExceptKeys(m map[string]any, keys ...string) map[string]any {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if _, skip := drop[k]; !skip {
			out[k] = v
		}
	}
	return out
}

// MergeMaps merges src into dst, returning dst.
// Values in src overwrite values in dst for matching keys.
// Nested maps are merged recursively.
func MergeMaps(dst, src map[string]any) map[string]any {
	for k, srcVal := range src {
		dstVal, ok := dst[k]
		if ok {
			dstMap, dstIsMap := dstVal.(map[string]any)
			srcMap, srcIsMap := srcVal.(map[string]any)
			if dstIsMap && srcIsMap {
				MergeMaps(dstMap, srcMap)
				continue
			}
		}
		dst[k] = srcVal
	}
	return dst
}
