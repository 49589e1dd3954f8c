package combinator

// Mapper is a side-effect-free transform applied element-wise. The return
// value replaces the source element.
type Mapper[T any] func(T) T

// Eval evaluates the mapper against v, converting a panic into a failed
// Outcome.
func (m Mapper[T]) Eval(v T) Outcome[T] {
	return attempt(func() T { return m(v) })
}

// Identity returns a mapper that returns its input unchanged. It is the
// default argument substituted for a missing map argument.
func Identity[T any]() Mapper[T] {
	return func(v T) T { return v }
}

// Compose returns a mapper that applies the given mappers left to right.
// A mapper that fails to evaluate is skipped; the failure is logged as a
// warning and the pre-failure value carries forward.
func Compose[T any](mappers ...Mapper[T]) Mapper[T] {
	return func(v T) T {
		current := v
		for _, m := range mappers {
			out := m.Eval(current)
			if !out.IsOk() {
				warnEval("compose", out.Err())
				continue
			}
			current = out.Value()
		}
		return current
	}
}
