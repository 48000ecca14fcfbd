// Package objx looks up values along a key path through nested mappings and
// structured records.
//
// Package: objx
// Title: Nested Lookup Utilities
// Description: GetValueOrDefault walks a path of keys through any mix of maps,
//              structs and types implementing Mapping or Record, and falls back
//              to a default when the path cannot be followed. An empty key is a
//              caller bug and is reported as INVALID_ARGUMENT instead.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Usage:
//
//	doc := map[string]any{"a": map[string]any{"b": "v"}}
//
//	v, err := objx.GetValueOrDefault(doc, objx.Literal("def"), "a", "b") // "v"
//	v, err = objx.GetValueOrDefault(doc, objx.Literal("def"), "a", "c")  // "def"
//
//	// the supplier only runs when the default is needed
//	v, err = objx.GetValueOrDefault(doc, objx.Supplier(loadFallback), "a", "c")
//
// Containers are recognised at every step by capability: map[string]any,
// the Mapping and Record interfaces, then any map with string keys and any
// struct (exported field name, or its yaml/toml/json tag). Pointers and
// interfaces are followed. Anything else ends the walk with the default.
//
// GetValueOrDefault treats a falsy value (nil, false, zero numbers, empty
// strings and empty containers) as absent, at the root and at every step, so
// a stored 0 or "" also yields the default. Find is the strict variant for
// callers that need those values: only nil or a missing key counts as absent.
//
// The path is checked for empty keys before the root is looked at, so
// GetValueOrDefault(nil, def, "") is an INVALID_ARGUMENT error, not def.
package objx
