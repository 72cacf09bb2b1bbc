package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an error for callers that branch on failure kind
type Code string

const (
	// CodeUnknown is assigned to wrapped foreign errors
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument marks malformed input, such as tokens from two scenes
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound marks a missing kind, entity or flag record
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists marks a duplicate registration
	CodeAlreadyExists Code = "already_exists"

	// CodePermissionDenied marks a mutation attempted by a user who does not own it
	CodePermissionDenied Code = "permission_denied"

	// CodeFailedPrecondition marks an operation against a sealed or unprepared component
	CodeFailedPrecondition Code = "failed_precondition"

	// CodeInternal marks a broken invariant inside the engine
	CodeInternal Code = "internal"

	// CodeValidation marks configuration or parameter validation failures
	CodeValidation Code = "validation"
)

// Error is the engine's coded error. Meta carries structured context such as
// the offending key so log fields can be attached without string parsing.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta attaches a metadata pair and returns the same error
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap adds context to err. An existing code and its metadata survive the wrap.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var coded *Error
	if errors.As(err, &coded) {
		return &Error{
			Code:    coded.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(coded.Meta),
		}
	}

	return &Error{Code: CodeUnknown, Message: message, Cause: err}
}

// Wrapf wraps err with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and overrides its code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// PermissionDeniedf creates a formatted permission denied error
func PermissionDeniedf(format string, args ...any) *Error {
	return Newf(CodePermissionDenied, format, args...)
}

// FailedPreconditionf creates a formatted failed precondition error
func FailedPreconditionf(format string, args ...any) *Error {
	return Newf(CodeFailedPrecondition, format, args...)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Validationf creates a formatted validation error
func Validationf(format string, args ...any) *Error {
	return Newf(CodeValidation, format, args...)
}

// Is reports whether any error in err's chain carries code
func Is(err error, code Code) bool {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code == code
	}
	return false
}

func IsNotFound(err error) bool           { return Is(err, CodeNotFound) }
func IsInvalidArgument(err error) bool    { return Is(err, CodeInvalidArgument) }
func IsAlreadyExists(err error) bool      { return Is(err, CodeAlreadyExists) }
func IsPermissionDenied(err error) bool   { return Is(err, CodePermissionDenied) }
func IsFailedPrecondition(err error) bool { return Is(err, CodeFailedPrecondition) }
func IsValidation(err error) bool         { return Is(err, CodeValidation) }

// GetCode returns the code of the outermost coded error, or CodeUnknown
func GetCode(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeUnknown
}

// GetMeta returns the metadata of the outermost coded error
func GetMeta(err error) map[string]any {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}
	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
