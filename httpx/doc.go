// Package httpx provides gin response helpers for services embedding the
// toolkit. Errors carrying a structured code map to their HTTP status and
// an RFC 7807-style body; everything else becomes a generic 500.
package httpx
