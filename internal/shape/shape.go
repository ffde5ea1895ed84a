// Package shape classifies loosely typed configuration values. Values arrive
// either from Go callers (typed slices, funcs, ints) or from decoded JSON/YAML
// documents ([]any, map[string]any, float64, int), so every predicate works on
// reflect kinds rather than concrete types.
package shape

import (
	"reflect"
)

// IsNil reports whether v is nil or a nil pointer, slice, map, func or
// interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// String returns v as a string when its kind is string.
func String(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

// Number returns v as float64 when it is any integer or floating kind.
// Booleans and numeric strings are not numbers.
func Number(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// Sequence returns the elements of a slice or array as []any. A nil slice is
// not a sequence; an empty non-nil slice is. Byte slices are treated as
// sequences of numbers like any other slice.
func Sequence(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if items, ok := v.([]any); ok {
		if items == nil {
			return nil, false
		}
		return items, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return nil, false
		}
	case reflect.Array:
	default:
		return nil, false
	}
	out := make([]any, rv.Len())
	for idx := range out {
		out[idx] = rv.Index(idx).Interface()
	}
	return out, true
}

// Strings returns v as a fresh []string when v is a sequence whose elements
// are all strings. The empty sequence qualifies.
func Strings(v any) ([]string, bool) {
	items, ok := Sequence(v)
	if !ok {
		return nil, false
	}
	out := make([]string, len(items))
	for idx, item := range items {
		s, ok := String(item)
		if !ok {
			return nil, false
		}
		out[idx] = s
	}
	return out, true
}

// Callable reports whether v is a non-nil function value.
func Callable(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// Mapping returns v as map[string]any when it is a map keyed by strings.
func Mapping(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, m != nil
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.IsNil() || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// Describe renders a short type description for error messages, e.g.
// "string", "[]interface {}", "nil".
func Describe(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
