package errors

import (
	"errors"
	"fmt"
)

// Error code constants reported to MCP clients and the CLI.
const (
	CodeUnknownTool      = "UNKNOWN_TOOL"
	CodeInvalidArguments = "INVALID_ARGUMENTS"
	CodeInvalidConfig    = "INVALID_CONFIG"
	CodeInternal         = "INTERNAL_ERROR"
)

// Error represents a vanta-mcp error with a code and message.
// It implements the error interface and supports error wrapping.
type Error struct {
	wrapped error
	Code    string
	Message string
}

// Error returns the error message, implementing the error interface.
func (e *Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error, supporting errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.wrapped
}

// New creates a new error with the given code and message.
func New(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new error that wraps an underlying error.
func Wrap(code string, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		wrapped: err,
	}
}

// Code extracts the error code from an error.
// Returns an empty string if the error is not a vanta-mcp error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr.Code
	}
	return ""
}

// Is checks if an error has a specific error code.
func Is(err error, code string) bool {
	return Code(err) == code
}

// As is a passthrough to the standard library so callers importing this
// package under the name errors keep access to it.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// UnknownTool creates an UNKNOWN_TOOL error naming the requested tool.
func UnknownTool(name string) *Error {
	return New(CodeUnknownTool, fmt.Sprintf("unknown tool: %q", name))
}

// InvalidArguments creates an INVALID_ARGUMENTS error wrapping the binding failure.
func InvalidArguments(tool string, err error) *Error {
	return Wrap(CodeInvalidArguments, fmt.Sprintf("invalid arguments for tool %q", tool), err)
}

// InvalidConfig creates an INVALID_CONFIG error for the named field.
func InvalidConfig(field string, err error) *Error {
	return Wrap(CodeInvalidConfig, fmt.Sprintf("invalid value for %s", field), err)
}

// Internal creates an INTERNAL_ERROR wrapping an unexpected failure.
func Internal(message string, err error) *Error {
	return Wrap(CodeInternal, message, err)
}
