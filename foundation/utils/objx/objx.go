// File: objx.go
// Title: Nested Lookup
// Description: Path walking through maps, records and reflected structs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package objx

import (
	"reflect"
	"strings"

	cxerror "github.com/msto63/chronox/foundation/core/error"
)

// Mapping is a key-value container
type Mapping interface {
	Lookup(key string) (any, bool)
}

// Record is a container with named fields
type Record interface {
	Field(name string) (any, bool)
}

// MappingFunc adapts a lookup function to Mapping
type MappingFunc func(key string) (any, bool)

// Lookup implements Mapping
func (f MappingFunc) Lookup(key string) (any, bool) { return f(key) }

// RecordFunc adapts a field accessor to Record
type RecordFunc func(name string) (any, bool)

// Field implements Record
func (f RecordFunc) Field(name string) (any, bool) { return f(name) }

// GetValueOrDefault follows path from root and returns the value at its end.
// The default is resolved instead when a key or field is missing, when a value
// along the way (root and leaf included) is falsy, or when a non-container is
// reached before the path ends. An empty key anywhere in path is an
// INVALID_ARGUMENT error and no default is resolved.
func GetValueOrDefault(root any, def Default, path ...string) (any, error) {
	if err := validatePath("objx.GetValueOrDefault", path); err != nil {
		return nil, err
	}
	if v, ok := walk(root, path, isFalsy); ok {
		return v, nil
	}
	return def.Resolve(), nil
}

// Find follows path from root like GetValueOrDefault but only treats nil
// values and missing keys as absent. It reports whether the path resolved.
func Find(root any, path ...string) (any, bool, error) {
	if err := validatePath("objx.Find", path); err != nil {
		return nil, false, err
	}
	v, ok := walk(root, path, isNil)
	return v, ok, nil
}

func validatePath(operation string, path []string) error {
	for i, key := range path {
		if key == "" {
			return cxerror.New("cannot search for an empty key").
				WithCode(cxerror.CodeInvalidArgument).
				WithOperation(operation).
				WithDetail("position", i).
				WithDetail("path", strings.Join(path, "."))
		}
	}
	return nil
}

func walk(node any, path []string, absent func(any) bool) (any, bool) {
	for {
		if absent(node) {
			return nil, false
		}
		if len(path) == 0 {
			return node, true
		}

		next, ok := step(node, path[0])
		if !ok {
			return nil, false
		}
		node, path = next, path[1:]
	}
}

// step fetches one key from node
func step(node any, key string) (any, bool) {
	switch n := node.(type) {
	case map[string]any:
		v, ok := n[key]
		return v, ok
	case Mapping:
		return n.Lookup(key)
	case Record:
		return n.Field(key)
	}

	v := reflect.ValueOf(node)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		keyType := v.Type().Key()
		if keyType.Kind() != reflect.String {
			return nil, false
		}
		mv := v.MapIndex(reflect.ValueOf(key).Convert(keyType))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Struct:
		return structField(v, key)
	}
	return nil, false
}

// structField resolves an exported field by name, including promoted fields,
// then by yaml, toml or json tag.
func structField(v reflect.Value, name string) (any, bool) {
	t := v.Type()

	if sf, ok := t.FieldByName(name); ok && sf.IsExported() {
		f, err := v.FieldByIndexErr(sf.Index)
		if err != nil {
			return nil, false
		}
		return f.Interface(), true
	}

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		for _, tag := range []string{"yaml", "toml", "json"} {
			tagName, _, _ := strings.Cut(sf.Tag.Get(tag), ",")
			if tagName == name {
				return v.Field(i).Interface(), true
			}
		}
	}
	return nil, false
}

// isNil reports whether v is nil or a nil pointer, map, slice, func, chan
// or interface
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// isFalsy reports whether v counts as empty: nil, false, zero numbers, empty
// strings, empty containers, and values whose Len method returns 0.
// Structs are never falsy.
func isFalsy(v any) bool {
	if isNil(v) {
		return true
	}
	if l, ok := v.(interface{ Len() int }); ok {
		return l.Len() == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.String, reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return rv.IsZero()
	}
	return false
}
