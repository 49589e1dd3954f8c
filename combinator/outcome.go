package combinator

import (
	"fmt"
)

// Outcome is the result of evaluating a combinator against a value.
//
// Combinator evaluation never lets a panic escape: a combinator that
// panics produces a failed Outcome instead. Callers decide what a failure
// means (AllOf aborts the conjunction, AnyOf moves on to the next
// predicate), which keeps the degrade-to-no-match policy visible at the
// call site rather than hidden in a recover.
type Outcome[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok returns a successful Outcome carrying value.
func Ok[T any](value T) Outcome[T] {
	return Outcome[T]{value: value, ok: true}
}

// Failed returns a failed Outcome carrying err.
func Failed[T any](err error) Outcome[T] {
	return Outcome[T]{err: err}
}

// Value returns the carried value. Zero value when the Outcome failed.
func (o Outcome[T]) Value() T { return o.value }

// Err returns the evaluation failure, or nil.
func (o Outcome[T]) Err() error { return o.err }

// IsOk reports whether the evaluation succeeded.
func (o Outcome[T]) IsOk() bool { return o.ok }

// OrElse returns the carried value, or fallback when the Outcome failed.
func (o Outcome[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// attempt runs fn and converts a panic into a failed Outcome.
func attempt[T any](fn func() T) (out Outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			out = Failed[T](fmt.Errorf("combinator panicked: %v", r))
		}
	}()
	return Ok(fn())
}
