// File: default.go
// Title: Lookup Defaults
// Description: Literal and lazily supplied fallback values for GetValueOrDefault.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package objx

// Default is the fallback returned when a path cannot be followed: either a
// literal value or a supplier evaluated on demand.
type Default struct {
	value    any
	supplier func() any
}

// Literal returns a Default that resolves to v as-is
func Literal(v any) Default {
	return Default{value: v}
}

// Supplier returns a Default that calls fn when, and only when, it is needed
func Supplier(fn func() any) Default {
	return Default{supplier: fn}
}

// IsSupplier reports whether d is evaluated lazily
func (d Default) IsSupplier() bool {
	return d.supplier != nil
}

// Resolve returns the default value, calling the supplier if there is one
func (d Default) Resolve() any {
	if d.supplier != nil {
		return d.supplier()
	}
	return d.value
}
