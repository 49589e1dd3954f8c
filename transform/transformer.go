package transform

import (
	"context"

	"github.com/kbukum/arrkit/arr"
	"github.com/kbukum/arrkit/combinator"
	"github.com/kbukum/arrkit/logger"
)

// Op identifies the operation a Transformer performs.
type Op string

const (
	OpFilter  Op = "filter"
	OpMap     Op = "map"
	OpSort    Op = "sort"
	OpFlatten Op = "flatten"
)

// Step is one unit of a transformation pipeline: a single Transformer, a
// nested Chain, or a decorated step. Apply must not mutate its input.
//
// The context carries trace propagation only; no step blocks or honors
// cancellation.
type Step[T any] interface {
	// Name identifies the step in logs, spans and metrics.
	Name() string
	// Apply runs the step over items and returns the resulting collection.
	Apply(ctx context.Context, items []T) []T
}

// Transformer wraps exactly one operation plus its argument. It is
// immutable once constructed and holds no per-invocation state, so a single
// Transformer may be applied to many collections.
type Transformer[T any] struct {
	op     Op
	pred   combinator.Predicate[T]
	mapper combinator.Mapper[T]
	cmp    combinator.Comparator[T]
	depth  int
}

// Filter returns a Transformer that keeps the elements matching pred.
// A nil predicate is replaced by the match-all default.
func Filter[T any](pred combinator.Predicate[T]) Transformer[T] {
	if pred == nil {
		pred = combinator.MatchAll[T]()
	}
	return Transformer[T]{op: OpFilter, pred: pred}
}

// Map returns a Transformer that replaces each element with mapper's result.
// A nil mapper is replaced by the identity default.
func Map[T any](mapper combinator.Mapper[T]) Transformer[T] {
	if mapper == nil {
		mapper = combinator.Identity[T]()
	}
	return Transformer[T]{op: OpMap, mapper: mapper}
}

// Sort returns a Transformer that stably sorts elements by cmp.
// A nil comparator is replaced by the no-preference default, which leaves
// the order unchanged.
func Sort[T any](cmp combinator.Comparator[T]) Transformer[T] {
	if cmp == nil {
		cmp = combinator.Noop[T]()
	}
	return Transformer[T]{op: OpSort, cmp: cmp}
}

// Flatten returns a Transformer that flattens nested []any elements up to
// depth levels. A negative depth flattens without limit. Flatten only has
// an effect on []any collections; on a homogeneous typed slice there is
// nothing to flatten and the step passes elements through.
func Flatten[T any](depth int) Transformer[T] {
	return Transformer[T]{op: OpFlatten, depth: depth}
}

// FlattenAll returns a Transformer that flattens nested []any elements
// without a depth limit.
func FlattenAll[T any]() Transformer[T] {
	return Flatten[T](-1)
}

// Op returns the operation kind of this Transformer.
func (t Transformer[T]) Op() Op { return t.op }

// Name implements Step.
func (t Transformer[T]) Name() string { return string(t.op) }

// Apply implements Step. The input is never mutated: filter and map build a
// new slice, sort copies before ordering.
//
// Element-level evaluation failures degrade rather than abort: a failing
// predicate counts as no match, a failing mapper leaves the element
// unchanged, a failing comparator expresses no preference. Each failure is
// logged as a warning.
func (t Transformer[T]) Apply(_ context.Context, items []T) []T {
	switch t.op {
	case OpFilter:
		return t.applyFilter(items)
	case OpMap:
		return t.applyMap(items)
	case OpSort:
		return t.applySort(items)
	case OpFlatten:
		return t.applyFlatten(items)
	default:
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
}

func (t Transformer[T]) applyFilter(items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		res := t.pred.Eval(item)
		if !res.IsOk() {
			warnStep(string(t.op), res.Err())
			continue
		}
		if res.Value() {
			out = append(out, item)
		}
	}
	return out
}

func (t Transformer[T]) applyMap(items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		res := t.mapper.Eval(item)
		if !res.IsOk() {
			warnStep(string(t.op), res.Err())
			out[i] = item
			continue
		}
		out[i] = res.Value()
	}
	return out
}

func (t Transformer[T]) applySort(items []T) []T {
	safe := func(a, b T) int {
		res := t.cmp.Eval(a, b)
		if !res.IsOk() {
			warnStep(string(t.op), res.Err())
			return 0
		}
		return res.Value()
	}
	return arr.SortStable(items, safe)
}

func (t Transformer[T]) applyFlatten(items []T) []T {
	vs, ok := any(items).([]any)
	if !ok {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	flat := arr.FlattenDepth(vs, t.depth)
	out, _ := any(flat).([]T)
	return out
}

var log = logger.WithComponent("transform")

func warnStep(step string, err error) {
	log.Warn("step evaluation failed, degrading",
		logger.Fields(logger.FieldStep, step, logger.FieldError, err.Error()))
}
