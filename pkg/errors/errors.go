// Package errors gives bmad-swarm failures a stable code so callers and
// tests can branch on the kind of failure instead of its message.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode names a failure kind. Values are stable across releases.
type ErrorCode string

const (
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// swarm.yaml
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// package templates
	ErrTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrTemplateRead     ErrorCode = "TEMPLATE_READ"

	// agents and project lifecycle
	ErrAgentUnknown    ErrorCode = "AGENT_UNKNOWN"
	ErrAgentEjected    ErrorCode = "AGENT_EJECTED"
	ErrAgentNotEjected ErrorCode = "AGENT_NOT_EJECTED"
	ErrGenerate        ErrorCode = "GENERATE"
	ErrProjectExists   ErrorCode = "PROJECT_EXISTS"
	ErrProjectMissing  ErrorCode = "PROJECT_MISSING"
	ErrLaunch          ErrorCode = "LAUNCH"

	// filesystem
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileRead   ErrorCode = "FILE_READ"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFileRemove ErrorCode = "FILE_REMOVE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// SwarmError is a coded failure. Details are structured context for logs.
type SwarmError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *SwarmError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *SwarmError) Unwrap() error {
	return e.Wrapped
}

// Is matches any SwarmError with the same code, so a sentinel built with New
// can be used as an errors.Is target.
func (e *SwarmError) Is(target error) bool {
	var targetErr *SwarmError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New returns a SwarmError with no cause.
func New(code ErrorCode, message string) *SwarmError {
	return &SwarmError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

func Newf(code ErrorCode, format string, args ...interface{}) *SwarmError {
	return &SwarmError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap attaches code and message to err. A nil err stays nil.
func Wrap(err error, code ErrorCode, message string) *SwarmError {
	if err == nil {
		return nil
	}
	return &SwarmError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SwarmError {
	if err == nil {
		return nil
	}
	return &SwarmError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail records key=value on e and returns e for chaining.
func (e *SwarmError) WithDetail(key string, value interface{}) *SwarmError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode reports whether the first SwarmError in err's chain has code.
func IsErrorCode(err error, code ErrorCode) bool {
	var swarmErr *SwarmError
	if errors.As(err, &swarmErr) {
		return swarmErr.Code == code
	}
	return false
}

// GetErrorCode returns the code of the first SwarmError in err's chain, or
// ErrUnknown.
func GetErrorCode(err error) ErrorCode {
	var swarmErr *SwarmError
	if errors.As(err, &swarmErr) {
		return swarmErr.Code
	}
	return ErrUnknown
}

func GetErrorDetails(err error) map[string]interface{} {
	var swarmErr *SwarmError
	if errors.As(err, &swarmErr) {
		return swarmErr.Details
	}
	return nil
}
