package combinator

import (
	"cmp"

	"github.com/kbukum/arrkit/str"
)

// Comparator is a two-argument ordering function returning -1, 0, or 1.
// A result of 0 means "no preference", not necessarily equality.
type Comparator[T any] func(a, b T) int

// Eval evaluates the comparator against a and b, converting a panic into a
// failed Outcome.
func (c Comparator[T]) Eval(a, b T) Outcome[int] {
	return attempt(func() int { return c(a, b) })
}

// Noop returns a comparator that expresses no preference for any pair.
// It is the default argument substituted for a missing sort argument.
func Noop[T any]() Comparator[T] {
	return func(a, b T) int { return 0 }
}

// Natural returns a comparator using the natural ordering of T.
func Natural[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) int { return cmp.Compare(a, b) }
}

// By returns a comparator ordering elements by the key extracted by fn.
func By[T any, K cmp.Ordered](fn func(T) K) Comparator[T] {
	return func(a, b T) int { return cmp.Compare(fn(a), fn(b)) }
}

// Canonical returns a comparator ordering elements by their canonical
// string form. It is the fallback ordering for heterogeneous sequences.
func Canonical[T any]() Comparator[T] {
	return func(a, b T) int { return cmp.Compare(str.Canonical(a), str.Canonical(b)) }
}

// Chain returns a comparator that evaluates the given comparators in order
// and returns the first non-zero result, or 0 when all express no
// preference. A comparator that fails to evaluate is skipped; the failure
// is logged as a warning.
func Chain[T any](comparators ...Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		for _, c := range comparators {
			out := c.Eval(a, b)
			if !out.IsOk() {
				warnEval("chain", out.Err())
				continue
			}
			if r := out.Value(); r != 0 {
				return r
			}
		}
		return 0
	}
}

// Reverse returns a comparator that negates the final result of c without
// altering c's intermediate calls.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int { return -c(a, b) }
}

// Descending is an alias for [Reverse].
func Descending[T any](c Comparator[T]) Comparator[T] {
	return Reverse(c)
}
