// Package errors provides structured error handling for shapeview.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid or unreadable style document.
	KindConfig
	// KindDecode indicates an input image that could not be read or decoded.
	KindDecode
	// KindRender indicates a failure while drawing a frame.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindOutput indicates a rendered image that could not be encoded or written.
	KindOutput
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindDecode:
		return "decode"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindOutput:
		return "output"
	default:
		return "unknown"
	}
}

// ShapeError represents a structured error raised outside the core geometry.
type ShapeError struct {
	// Op is the operation that failed (e.g., "config.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the file involved, if any.
	Path string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ShapeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first ShapeError in err's chain, or
// KindUnknown if there is none.
func KindOf(err error) ErrorKind {
	var se *ShapeError
	if stderrors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "shape.RenderFrame").
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

// FieldError represents a style document field with an unusable value.
type FieldError struct {
	// Field is the document key, e.g. "shadow.model".
	Field string
	// Value is the rejected value.
	Value any
	// Reason says what was expected.
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// ErrorHandler receives errors reported by shapeview.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ShapeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
