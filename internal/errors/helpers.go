package errors

import (
	"errors"
)

// As and Is forward to the standard library so callers need one import.

func As(err error, target **Error) bool {
	return errors.As(err, target)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode is CodeOK for nil and CodeInternal for errors without a code
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeInternal
}

// HasCode reports whether the outermost *Error in err carries code
func HasCode(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// GetMessage returns the caller-facing message, or err.Error() for foreign
// errors.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Message
	}
	return err.Error()
}

func GetMeta(err error) map[string]interface{} {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Meta
	}
	return nil
}

func IsNotFound(err error) bool           { return HasCode(err, CodeNotFound) }
func IsInvalidArgument(err error) bool    { return HasCode(err, CodeInvalidArgument) }
func IsPermissionDenied(err error) bool   { return HasCode(err, CodePermissionDenied) }
func IsFailedPrecondition(err error) bool { return HasCode(err, CodeFailedPrecondition) }
func IsInternal(err error) bool           { return HasCode(err, CodeInternal) }
func IsUnauthenticated(err error) bool    { return HasCode(err, CodeUnauthenticated) }
