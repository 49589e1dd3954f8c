// Package str provides string utilities for the arrkit toolkit.
//
// It includes the canonical string/number coercions consumed by the seq
// range generator ([Canonical], [ToNumber]), plus trimming, sanitization
// and case-conversion helpers.
package str
