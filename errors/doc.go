// Package errors provides unified error handling for the arrkit toolkit.
// It implements structured error types with machine-readable codes and
// HTTP status mapping for the response helpers in package httpx.
package errors
