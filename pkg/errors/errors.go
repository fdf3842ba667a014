// Package errors provides structured error handling for drift stream
// utilities.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates an invalid construction-time configuration.
	KindConfig
	// KindClosed indicates use of a controller after it was closed.
	KindClosed
	// KindUnhandled indicates an error delivered to a subscription that
	// registered no error callback.
	KindUnhandled
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindClosed:
		return "closed"
	case KindUnhandled:
		return "unhandled"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// StreamError represents a structured error originating inside the streams
// library. Failures signaled by an upstream stream are never wrapped in a
// StreamError; subscribers receive the original error value.
type StreamError struct {
	// Op is the operation that failed (e.g., "streams.Controller.Add").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

// ConfigError represents an invalid configuration value detected at
// construction time, before any stream is consumed.
type ConfigError struct {
	// Op is the constructor that rejected the configuration.
	Op string
	// Reason describes what was wrong with the supplied value.
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "streams.dispatch").
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

// ErrorHandler receives errors reported by the streams library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *StreamError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
