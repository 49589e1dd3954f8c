package arr

import (
	"fmt"
	"reflect"
	"sort"
)

// This file implements the conversion contract that turns supported source
// kinds into a []any sequence. Each kind has an explicit conversion; From
// dispatches on the input kind instead of duck-typing.

// FromSlice copies a typed slice into a []any sequence.
func FromSlice[T any](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// FromMap returns the values of a map as a []any sequence.
// Values are ordered by the map key's string form so the result is
// deterministic.
func FromMap[K comparable, V any](m map[K]V) []any {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})
	out := make([]any, 0, len(m))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

// FromString splits a string into a sequence of single-character strings.
func FromString(s string) []any {
	out := make([]any, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// From converts a value of any supported kind into a []any sequence.
//
// Slices and arrays convert element-wise, maps convert to their values,
// strings split into characters, nil converts to an empty sequence, and
// any other value becomes a single-element sequence.
func From(v any) []any {
	if v == nil {
		return []any{}
	}
	if s, ok := v.([]any); ok {
		out := make([]any, len(s))
		copy(out, s)
		return out
	}
	if s, ok := v.(string); ok {
		return FromString(s)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = rv.Index(i).Interface()
		}
		return out
	case reflect.Map:
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		out := make([]any, 0, len(keys))
		for _, k := range keys {
			out = append(out, rv.MapIndex(k).Interface())
		}
		return out
	default:
		return []any{v}
	}
}
