package combinator

import (
	"regexp"
	"strings"

	"github.com/kbukum/arrkit/logger"
)

// Predicate is a side-effect-free test used to retain or reject elements.
type Predicate[T any] func(T) bool

// Eval evaluates the predicate against v, converting a panic into a
// failed Outcome.
func (p Predicate[T]) Eval(v T) Outcome[bool] {
	return attempt(func() bool { return p(v) })
}

// IndexedPredicate tests an element together with its position in the
// collection.
type IndexedPredicate[T any] func(T, int) bool

// At binds the position, yielding a plain Predicate.
func (p IndexedPredicate[T]) At(i int) Predicate[T] {
	return func(v T) bool { return p(v, i) }
}

// IgnoringIndex lifts a Predicate into an IndexedPredicate that disregards
// the position.
func IgnoringIndex[T any](p Predicate[T]) IndexedPredicate[T] {
	return func(v T, _ int) bool { return p(v) }
}

// MatchAll returns a predicate that accepts every element. It is the
// default argument substituted for a missing filter predicate.
func MatchAll[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// MatchNone returns a predicate that rejects every element.
func MatchNone[T any]() Predicate[T] {
	return func(T) bool { return false }
}

// Not returns a predicate that inverts p.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(v T) bool { return !p(v) }
}

// AllOf returns a predicate that is true only if every given predicate is
// true. Evaluation stops at the first false result. A predicate that fails
// to evaluate counts as false and aborts the conjunction; the failure is
// logged as a warning, not propagated.
func AllOf[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			out := p.Eval(v)
			if !out.IsOk() {
				warnEval("allOf", out.Err())
				return false
			}
			if !out.Value() {
				return false
			}
		}
		return true
	}
}

// AnyOf returns a predicate that is true if at least one given predicate is
// true. Evaluation stops at the first true result. A predicate that fails to
// evaluate is skipped; the failure is logged as a warning and evaluation
// continues with the next predicate.
func AnyOf[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			out := p.Eval(v)
			if !out.IsOk() {
				warnEval("anyOf", out.Err())
				continue
			}
			if out.Value() {
				return true
			}
		}
		return false
	}
}

// NoneOf returns a predicate that is true only if no given predicate is true.
// Evaluation failures follow the AnyOf policy: skipped with a warning.
func NoneOf[T any](preds ...Predicate[T]) Predicate[T] {
	return Not(AnyOf(preds...))
}

// MatchesAtLeastN returns a predicate that is true once at least n of the
// given predicates match. If n exceeds the number of predicates the
// combinator can never match; a warning is logged at construction and the
// returned predicate matches nothing.
func MatchesAtLeastN[T any](n int, preds ...Predicate[T]) Predicate[T] {
	if n <= 0 {
		return MatchAll[T]()
	}
	if n > len(preds) {
		warnArity("matchesAtLeastN", n, len(preds))
		return MatchNone[T]()
	}
	return func(v T) bool {
		count := 0
		for _, p := range preds {
			out := p.Eval(v)
			if !out.IsOk() {
				warnEval("matchesAtLeastN", out.Err())
				continue
			}
			if out.Value() {
				count++
				if count >= n {
					return true
				}
			}
		}
		return false
	}
}

// MatchesExactlyN returns a predicate that is true when exactly n of the
// given predicates match. If n exceeds the number of predicates the
// combinator can never match; a warning is logged at construction and the
// returned predicate matches nothing.
func MatchesExactlyN[T any](n int, preds ...Predicate[T]) Predicate[T] {
	if n > len(preds) {
		warnArity("matchesExactlyN", n, len(preds))
		return MatchNone[T]()
	}
	return func(v T) bool {
		count := 0
		for _, p := range preds {
			out := p.Eval(v)
			if !out.IsOk() {
				warnEval("matchesExactlyN", out.Err())
				continue
			}
			if out.Value() {
				count++
				if count > n {
					return false
				}
			}
		}
		return count == n
	}
}

// TypeOf returns a predicate over any that is true when the element's
// dynamic type is assignable to Want.
func TypeOf[Want any]() Predicate[any] {
	return func(v any) bool {
		_, ok := v.(Want)
		return ok
	}
}

// MatchesRegex returns a predicate that is true when the element matches the
// given pattern. An invalid pattern is logged as a warning at construction
// and degrades to a predicate that matches nothing.
func MatchesRegex(pattern string) Predicate[string] {
	re, err := regexp.Compile(pattern)
	if err != nil {
		log.Warn("invalid regex pattern, predicate matches nothing",
			logger.Fields(logger.FieldCombinator, "matchesRegex", logger.FieldError, err.Error()))
		return MatchNone[string]()
	}
	return re.MatchString
}

// StartsWithAny returns a predicate that is true when the element starts
// with at least one of the given prefixes.
func StartsWithAny(prefixes ...string) Predicate[string] {
	return func(s string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(s, p) {
				return true
			}
		}
		return false
	}
}

// EndsWithAny returns a predicate that is true when the element ends with at
// least one of the given suffixes.
func EndsWithAny(suffixes ...string) Predicate[string] {
	return func(s string) bool {
		for _, p := range suffixes {
			if strings.HasSuffix(s, p) {
				return true
			}
		}
		return false
	}
}

var log = logger.WithComponent("combinator")

func warnEval(name string, err error) {
	log.Warn("predicate evaluation failed, treated as no match",
		logger.Fields(logger.FieldCombinator, name, logger.FieldError, err.Error()))
}

func warnArity(name string, n, supplied int) {
	log.Warn("required matches exceed supplied predicates, combinator matches nothing",
		logger.Fields(logger.FieldCombinator, name, "required", n, "supplied", supplied))
}
