package arr

import (
	"sort"

	"github.com/kbukum/arrkit/str"
)

// Unique returns a slice with duplicate values removed, preserving first
// occurrence order.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	result := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			result = append(result, item)
		}
	}
	return result
}

// UniqueBy returns a slice with duplicates removed, comparing elements by the
// key extracted by fn.
func UniqueBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	result := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			result = append(result, item)
		}
	}
	return result
}

// UniqueAny removes duplicates from a heterogeneous slice, comparing elements
// by their canonical string form.
func UniqueAny(items []any) []any {
	return UniqueBy(items, func(v any) string { return str.Canonical(v) })
}

// Sanitize removes nil elements from a heterogeneous slice.
func Sanitize(items []any) []any {
	result := make([]any, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		result = append(result, item)
	}
	return result
}

// Compact removes zero values from a slice.
func Compact[T comparable](items []T) []T {
	var zero T
	result := make([]T, 0, len(items))
	for _, item := range items {
		if item != zero {
			result = append(result, item)
		}
	}
	return result
}

// Filter returns a new slice containing only elements that satisfy the predicate.
func Filter[T any](items []T, fn func(T) bool) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if fn(item) {
			result = append(result, item)
		}
	}
	return result
}

// FilterIndexed returns a new slice containing only elements that satisfy
// the predicate, which also receives the element's position.
func FilterIndexed[T any](items []T, fn func(T, int) bool) []T {
	result := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms a slice using the given function.
func Map[T, U any](items []T, fn func(T) U) []U {
	result := make([]U, len(items))
	for i, item := range items {
		result[i] = fn(item)
	}
	return result
}

// SortStable returns a sorted copy of items using the given three-way
// comparison. The sort is stable: elements comparing equal keep their
// original order.
func SortStable[T any](items []T, cmp func(a, b T) int) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j]) < 0 })
	return out
}

// Contains checks if a slice contains a value.
func Contains[T comparable](items []T, val T) bool {
	for _, item := range items {
		if item == val {
			return true
		}
	}
	return false
}
