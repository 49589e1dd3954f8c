package errors

import (
	"fmt"
	"net/http"
)

// Error is the unified toolkit error type.
type Error struct {
	// Code is a machine-readable error code.
	Code Code `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error.
func New(code Code, message string, httpStatus int) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// --- Common Error Constructors ---

// InvalidArgument creates an Error for an argument of the wrong kind or shape.
func InvalidArgument(reason string) *Error {
	return &Error{
		Code: CodeInvalidArgument, Message: fmt.Sprintf("Invalid argument: %s", reason),
		HTTPStatus: http.StatusBadRequest,
	}
}

// IncompatibleBounds creates an Error for range bounds of mismatched kinds.
func IncompatibleBounds(from, to any) *Error {
	return &Error{
		Code: CodeInvalidArgument, Message: "Range bounds must be of the same or mutually coercible kind.",
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"from": fmt.Sprintf("%T", from), "to": fmt.Sprintf("%T", to)},
	}
}

// EmptyQueue creates an Error for a take from an empty queue.
func EmptyQueue() *Error {
	return &Error{
		Code: CodeEmptyQueue, Message: "Cannot take from an empty queue.",
		HTTPStatus: http.StatusConflict,
	}
}

// Misconfigured creates an Error for unsatisfiable construction options.
func Misconfigured(reason string) *Error {
	return &Error{
		Code: CodeMisconfigured, Message: reason,
		HTTPStatus: http.StatusBadRequest,
	}
}

// OutOfRange creates an Error for an index outside the valid range.
func OutOfRange(index, size int) *Error {
	return &Error{
		Code: CodeOutOfRange, Message: fmt.Sprintf("Index %d is outside [0, %d).", index, size),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"index": index, "size": size},
	}
}

// Internal creates an Error for an unexpected internal failure.
func Internal(cause error) *Error {
	return &Error{
		Code: CodeInternal, Message: "An unexpected error occurred.",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}
