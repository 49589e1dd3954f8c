package seq

import (
	"reflect"

	"github.com/kbukum/arrkit/arr"
	"github.com/kbukum/arrkit/errors"
	"github.com/kbukum/arrkit/logger"
	"github.com/kbukum/arrkit/str"
)

var log = logger.WithComponent("seq")

// Sequence is a lazy, finite, restartable series of values. The sequence
// itself can be iterated any number of times; each Iterator it hands out is
// single-pass. Nothing beyond the current value is ever buffered, so a
// consumer may abandon iteration at any point.
type Sequence[T any] struct {
	start func() func() (T, bool)
}

// Iterator pulls values from a Sequence one at a time.
type Iterator[T any] struct {
	next func() (T, bool)
	done bool
}

// Next returns the next value. The second result is false once the
// sequence is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.done {
		var zero T
		return zero, false
	}
	v, ok := it.next()
	if !ok {
		it.done = true
	}
	return v, ok
}

// Iter returns a fresh single-pass iterator over the sequence.
func (s *Sequence[T]) Iter() *Iterator[T] {
	return &Iterator[T]{next: s.start()}
}

// Collect drains a fresh iterator into a slice.
func (s *Sequence[T]) Collect() []T {
	var out []T
	for it := s.Iter(); ; {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// ForEach calls fn for every value of a fresh iteration.
func (s *Sequence[T]) ForEach(fn func(T)) {
	for it := s.Iter(); ; {
		v, ok := it.Next()
		if !ok {
			return
		}
		fn(v)
	}
}

// Take collects at most n values from a fresh iteration.
func (s *Sequence[T]) Take(n int) []T {
	var out []T
	it := s.Iter()
	for len(out) < n {
		v, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// empty returns a sequence that yields nothing. Used when a bound
// combination degrades rather than fails.
func empty[T any]() *Sequence[T] {
	return &Sequence[T]{start: func() func() (T, bool) {
		return func() (T, bool) {
			var zero T
			return zero, false
		}
	}}
}

// Range builds a sequence between two dynamically typed bounds. Bound kinds
// decide the mode: two number-like bounds produce a numeric sequence, two
// strings produce a character sequence, and anything else fails with an
// invalid-argument error. A slice bound is reduced to its first element
// after coercing every part to a number.
func Range(from, to any, opts ...Option) (*Sequence[any], error) {
	var err error
	if from, err = reduceBound(from); err != nil {
		return nil, err
	}
	if to, err = reduceBound(to); err != nil {
		return nil, err
	}

	fromNum, fromOK := str.ToNumber(from)
	toNum, toOK := str.ToNumber(to)
	if fromOK && toOK {
		s := numbers(fromNum, toNum, boundForm(from, fromNum), boundForm(to, toNum), buildOptions(opts))
		return box(s), nil
	}

	fromStr, fromIsStr := from.(string)
	toStr, toIsStr := to.(string)
	if fromIsStr && toIsStr {
		return box(Chars(fromStr, toStr, opts...)), nil
	}
	return nil, errors.IncompatibleBounds(from, to)
}

// Numbers builds a numeric sequence from from towards to. Increment rules
// that inspect the bound's characters operate on its canonical decimal form.
func Numbers(from, to float64, opts ...Option) *Sequence[float64] {
	return numbers(from, to, str.Canonical(from), str.Canonical(to), buildOptions(opts))
}

// reduceBound coerces a slice bound to its first numeric part. Non-slice
// bounds pass through unchanged.
func reduceBound(v any) (any, error) {
	if v == nil {
		return nil, errors.InvalidArgument("range bound must not be nil")
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return v, nil
	}
	parts := arr.From(v)
	if len(parts) == 0 {
		return nil, errors.InvalidArgument("range bound sequence must not be empty")
	}
	nums := make([]float64, len(parts))
	for i, p := range parts {
		n, ok := str.ToNumber(p)
		if !ok {
			return nil, errors.InvalidArgument("range bound sequence contains a non-numeric part")
		}
		nums[i] = n
	}
	return nums[0], nil
}

// boundForm preserves the caller's own string spelling for character-based
// increment rules; every other bound kind falls back to its canonical form.
func boundForm(v any, n float64) string {
	if s, ok := v.(string); ok {
		return str.Trim(s)
	}
	return str.Canonical(n)
}

func box[T any](s *Sequence[T]) *Sequence[any] {
	return &Sequence[any]{start: func() func() (any, bool) {
		next := s.start()
		return func() (any, bool) {
			v, ok := next()
			if !ok {
				return nil, false
			}
			return v, true
		}
	}}
}
