package errors

import "errors"

// Code identifies a structured error type used across the application.
type Code string

const (
	// Generic codes
	CodeUnknown Code = "unknown"

	// Local (field scoped) errors
	CodeValidationFailed Code = "validation_failed"
	CodeInvalidJSON      Code = "invalid_json"

	// Backend errors
	CodeConflict        Code = "conflict"
	CodeInvalidRequest  Code = "invalid_request"
	CodeRemoteFailed    Code = "remote_failed"
	CodeTransportFailed Code = "transport_failed"
	CodeStorageFailed   Code = "storage_failed"

	CodeConfigurationError Code = "configuration_error"
)

// Error represents a structured error with a machine-readable code plus message.
// Message is the user-facing text.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

// Unwrap returns the wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// New wraps an error with a code/message.
func New(code Code, msg string, err error) Error {
	return Error{Code: code, Message: msg, Err: err}
}

// CodeOf walks the error chain and returns the first structured code found.
func CodeOf(err error) Code {
	var structured Error
	if errors.As(err, &structured) {
		return structured.Code
	}
	return CodeUnknown
}

// IsCode reports whether the error (or its unwrap chain) matches the provided code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// MessageOf returns the user-facing message for err: the Message of the first
// structured error in the chain, falling back to err.Error().
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var structured Error
	if errors.As(err, &structured) && structured.Message != "" {
		return structured.Message
	}
	return err.Error()
}
