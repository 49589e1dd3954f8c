package transform

import (
	"context"
	"fmt"

	"github.com/kbukum/arrkit/combinator"
	"github.com/kbukum/arrkit/logger"
)

// Chain runs an ordered list of steps over a collection. A Chain is itself
// a Step, so chains nest.
//
// Application works on a defensive copy and halts as soon as the working
// collection becomes empty: an empty intermediate result can never become
// non-empty again, so remaining steps are skipped. The input is never
// mutated and a Chain holds no per-invocation state, so one Chain may be
// replayed over many collections.
type Chain[T any] struct {
	steps []Step[T]
}

// NewChain creates a Chain from the given steps.
func NewChain[T any](steps ...Step[T]) *Chain[T] {
	return &Chain[T]{steps: steps}
}

// NewFilterChain creates a Chain restricted to filter steps, one per
// predicate.
func NewFilterChain[T any](preds ...combinator.Predicate[T]) *Chain[T] {
	steps := make([]Step[T], len(preds))
	for i, p := range preds {
		steps[i] = Filter(p)
	}
	return &Chain[T]{steps: steps}
}

// NewMapperChain creates a Chain restricted to map steps, one per mapper.
func NewMapperChain[T any](mappers ...combinator.Mapper[T]) *Chain[T] {
	steps := make([]Step[T], len(mappers))
	for i, m := range mappers {
		steps[i] = Map(m)
	}
	return &Chain[T]{steps: steps}
}

// NewComparatorChain creates a Chain restricted to sort steps, one per
// comparator, applied in order. Sorting is stable, so earlier orderings
// survive as tie-breaks of later ones.
func NewComparatorChain[T any](comparators ...combinator.Comparator[T]) *Chain[T] {
	steps := make([]Step[T], len(comparators))
	for i, c := range comparators {
		steps[i] = Sort(c)
	}
	return &Chain[T]{steps: steps}
}

// With returns a new Chain with the given steps appended. The receiver is
// unchanged.
func (c *Chain[T]) With(steps ...Step[T]) *Chain[T] {
	combined := make([]Step[T], 0, len(c.steps)+len(steps))
	combined = append(combined, c.steps...)
	combined = append(combined, steps...)
	return &Chain[T]{steps: combined}
}

// Len returns the number of steps in the chain.
func (c *Chain[T]) Len() int { return len(c.steps) }

// Name implements Step.
func (c *Chain[T]) Name() string { return "chain" }

// Apply implements Step. A step that panics is recovered, logged as a
// warning, and the chain continues with the pre-step collection unchanged;
// a partial pipeline failure degrades instead of aborting the run.
func (c *Chain[T]) Apply(ctx context.Context, items []T) []T {
	working := make([]T, len(items))
	copy(working, items)

	for _, step := range c.steps {
		working = safeApply(ctx, step, working)
		if len(working) == 0 {
			break
		}
	}
	return working
}

// safeApply runs one step, recovering a panic into the unchanged input.
func safeApply[T any](ctx context.Context, step Step[T], items []T) (out []T) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn("step panicked, continuing with pre-step collection",
				logger.Fields(logger.FieldStep, step.Name(), logger.FieldError, fmt.Sprint(r)))
			out = items
		}
	}()
	return step.Apply(ctx, items)
}
