// Package combinator provides the three families of pure function values
// the arrkit pipeline engine composes: predicates (element → bool), mappers
// (element → element), and comparators (a, b → -1|0|1).
//
// Each role is a distinct named function type, so the compiler enforces
// which role a function plays; there is no runtime discrimination.
//
// Constructors return new function values and never mutate the combinators
// passed to them. Evaluation goes through [Outcome]: a combinator that
// panics produces a failed Outcome, which the higher-order constructors
// degrade to "no match" with a logged warning instead of aborting the run.
//
//	adult := combinator.AllOf(
//	    func(u User) bool { return u.Age >= 18 },
//	    func(u User) bool { return u.Active },
//	)
//	byName := combinator.Chain(
//	    combinator.By(func(u User) string { return u.Last }),
//	    combinator.By(func(u User) string { return u.First }),
//	)
package combinator
