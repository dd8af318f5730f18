// Package errors provides structured error handling for the GenUI core.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindParsing indicates a structurally malformed protocol operation.
	KindParsing
	// KindOperation indicates an operation rejected by the processor.
	KindOperation
	// KindData indicates a data store addressing or write failure.
	KindData
	// KindEval indicates an expression evaluation failure.
	KindEval
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindParsing:
		return "parsing"
	case KindOperation:
		return "operation"
	case KindData:
		return "data"
	case KindEval:
		return "eval"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// GenUIError represents a structured error in the GenUI core.
type GenUIError struct {
	// Op is the operation that failed (e.g., "surface.Apply").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Surface is the surface id the error relates to, if any.
	Surface string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *GenUIError) Error() string {
	if e.Surface != "" {
		return fmt.Sprintf("%s [%s] surface=%s: %v", e.Op, e.Kind, e.Surface, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *GenUIError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "expr.Evaluate").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a structurally malformed protocol message.
// Operations that fail to parse are rejected before any state is touched.
type ParseError struct {
	// Field is the message field that failed validation.
	Field string
	// Want describes the expected shape.
	Want string
	// Got is the actual value received.
	Got any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed operation: field %q: want %s, got %T", e.Field, e.Want, e.Got)
}

// OperationError represents an operation rejected by the processor.
// The surface keeps its last good state.
type OperationError struct {
	// Operation is the wire name of the rejected operation.
	Operation string
	// Surface is the surface id the operation addressed, if known.
	Surface string
	// Err is the underlying cause.
	Err error
}

func (e *OperationError) Error() string {
	if e.Surface != "" {
		return fmt.Sprintf("%s rejected for surface %s: %v", e.Operation, e.Surface, e.Err)
	}
	return fmt.Sprintf("%s rejected: %v", e.Operation, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the GenUI core.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *GenUIError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
