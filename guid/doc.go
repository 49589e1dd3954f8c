// Package guid wraps github.com/google/uuid with parse helpers that return
// structured errors instead of raw parse failures.
package guid
