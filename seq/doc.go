// Package seq generates lazy, finite value sequences between two bounds.
//
// Sequences are restartable — iterating one again reproduces the same
// values — while each Iterator handed out is single-pass. Nothing beyond
// the current value is buffered, so abandoning iteration early costs
// nothing.
//
// Two modes exist, picked from the bound kinds:
//
//   - Numeric: both bounds coerce to numbers. The step is derived per
//     bound from an increment Rule and the direction from the bound
//     order; every yielded value is rounded to the finest decimal place
//     of either bound to keep fractional stepping exact.
//   - Character: both bounds are strings. Each step shifts every
//     character of the current value independently by the step ("odometer"
//     advance, no carry); the last character of the upper bound stops the
//     sequence.
//
// # Usage
//
//	s, _ := seq.Range(0, 10)
//	s.Collect() // [0 1 2 3 4 5 6 7 8 9]
//
//	letters := seq.Chars("a", "z", seq.Inclusive())
//	letters.Collect() // ["a" "b" ... "z"]
//
//	tenths := seq.Numbers(0, 10.5)
//	tenths.Take(3) // [0 0.1 0.2]
package seq
