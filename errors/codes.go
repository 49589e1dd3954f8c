package errors

// Code is a machine-readable error code.
type Code string

// Argument errors
const (
	// CodeInvalidArgument indicates an argument of the wrong kind or shape.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	// CodeMisconfigured indicates a component constructed with unsatisfiable options.
	CodeMisconfigured Code = "MISCONFIGURED"
)

// Collection errors
const (
	// CodeEmptyQueue indicates a take from a queue with no items.
	CodeEmptyQueue Code = "EMPTY_QUEUE"
	// CodeOutOfRange indicates an index outside the valid range.
	CodeOutOfRange Code = "OUT_OF_RANGE"
)

// Internal errors
const (
	// CodeInternal indicates an unexpected internal failure.
	CodeInternal Code = "INTERNAL_ERROR"
)
