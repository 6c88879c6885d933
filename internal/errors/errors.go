package errors

import (
	"context"
	"errors"
	"fmt"
)

// Error is a coded failure. Message is the caller-facing text that ends up
// in envelope Error fields and gRPC status messages; Cause stays internal.
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code, so sentinels such as
// batch.ErrNoSelection compare by code rather than identity.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// WithMeta attaches a key to the error and returns it for chaining
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = map[string]interface{}{}
	}
	e.Meta[key] = value
	return e
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap replaces the message and keeps the code and metadata of err when it
// already is an *Error. Context cancellation keeps its own code; anything
// else foreign becomes CodeInternal. A nil err wraps to nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: classify(err), Message: message, Cause: err}
	var inner *Error
	if errors.As(err, &inner) {
		wrapped.Meta = inner.Meta
	}
	return wrapped
}

func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode is Wrap with the code forced to code
func WrapWithCode(err error, code Code, message string) *Error {
	wrapped := Wrap(err, message)
	if wrapped != nil {
		wrapped.Code = code
	}
	return wrapped
}

func classify(err error) Code {
	var inner *Error
	switch {
	case errors.As(err, &inner):
		return inner.Code
	case errors.Is(err, context.Canceled):
		return CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return CodeDeadlineExceeded
	default:
		return CodeInternal
	}
}

// Shorthands for the codes the service raises.

func NotFound(message string) *Error { return New(CodeNotFound, message) }

func NotFoundf(format string, args ...interface{}) *Error {
	return Newf(CodeNotFound, format, args...)
}

func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

func InvalidArgumentf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func PermissionDenied(message string) *Error { return New(CodePermissionDenied, message) }

func FailedPrecondition(message string) *Error { return New(CodeFailedPrecondition, message) }

func FailedPreconditionf(format string, args ...interface{}) *Error {
	return Newf(CodeFailedPrecondition, format, args...)
}

func Internal(message string) *Error { return New(CodeInternal, message) }

func Internalf(format string, args ...interface{}) *Error {
	return Newf(CodeInternal, format, args...)
}

func Unavailable(message string) *Error { return New(CodeUnavailable, message) }

func Unauthenticated(message string) *Error { return New(CodeUnauthenticated, message) }
