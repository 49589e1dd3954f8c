// Package arr provides the array post-processing helpers used across the
// arrkit toolkit: flattening, sanitization, deduplication, stable sorting,
// and the conversion contract that turns slices, maps and strings into a
// []any sequence.
//
// Sanitize followed by a Unique variant is idempotent: applying the pair
// twice yields the same result as applying it once.
package arr
