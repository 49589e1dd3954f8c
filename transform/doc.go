// Package transform provides the arrkit pipeline composition model.
//
// A [Transformer] wraps exactly one operation — filter, map, sort or
// flatten — plus its argument. A [Chain] runs an ordered list of steps
// (Transformers or nested Chains) over a collection, short-circuiting once
// the intermediate collection is empty. Chains are built once and replayed
// over arbitrary inputs; the input collection is never mutated.
//
//	evens := transform.Filter[int](func(n int) bool { return n%2 == 0 })
//	doubled := transform.Map[int](func(n int) int { return n * 2 })
//	sorted := transform.Sort(combinator.Descending(combinator.Natural[int]()))
//
//	chain := transform.NewChain(evens, doubled, sorted)
//	out := chain.Apply(ctx, []int{5, 2, 8, 1, 4})
//
// A step that fails degrades instead of aborting: element-level combinator
// failures count as no match / no-op, and a step that panics is recovered
// with the pre-step collection carried forward. Both are logged as
// warnings.
//
// Steps can be decorated with [WithTracing], [WithMetrics] and
// [WithLogging] for per-step observability.
package transform
