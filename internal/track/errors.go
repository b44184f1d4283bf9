package track

import (
	"errors"
	"fmt"
	"strings"
)

// OpError represents a failed store operation.
//
// Operation errors include:
//   - Not found: a session id that resolves to nothing
//   - Conflict: ending a session that already has an end instant
//   - Validation: malformed dates or configuration values
//   - No running session: ending by default with nothing open
//   - IO/parse failures surfaced by the persistence layer
//
// OpError carries structured fields so callers can report the offending value.
type OpError struct {
	// Code identifies the error category.
	Code OpErrorCode

	// Message is a human-readable description.
	Message string

	// SessionID identifies the affected session, when one is involved.
	SessionID string

	// Labels lists the offending label names, when labels are involved.
	Labels []string

	// Err is the underlying cause, if any.
	Err error
}

// OpErrorCode categorizes operation errors.
type OpErrorCode string

const (
	// ErrCodeNotFound indicates a session id with no matching session.
	ErrCodeNotFound OpErrorCode = "NOT_FOUND"

	// ErrCodeConflict indicates a mutation that contradicts current state.
	ErrCodeConflict OpErrorCode = "CONFLICT"

	// ErrCodeValidation indicates malformed input rejected before any mutation.
	ErrCodeValidation OpErrorCode = "VALIDATION"

	// ErrCodeNoRunningSession indicates an end-by-default with nothing open.
	ErrCodeNoRunningSession OpErrorCode = "NO_RUNNING_SESSION"

	// ErrCodeIOFailure indicates a file open/read/write failure.
	ErrCodeIOFailure OpErrorCode = "IO_FAILURE"

	// ErrCodeParseFailure indicates a persisted document that cannot be decoded.
	ErrCodeParseFailure OpErrorCode = "PARSE_FAILURE"
)

// Error implements the error interface.
func (e *OpError) Error() string {
	switch {
	case e.SessionID != "":
		return fmt.Sprintf("%s: %s (session=%s)", e.Code, e.Message, e.SessionID)
	case len(e.Labels) > 0:
		return fmt.Sprintf("%s: %s (labels=%s)", e.Code, e.Message, strings.Join(e.Labels, ","))
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *OpError) Unwrap() error {
	return e.Err
}

// CodeOf extracts the OpErrorCode from an error, handling wrapped errors.
// Returns the empty code if the error is not an OpError.
func CodeOf(err error) OpErrorCode {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Code
	}
	return ""
}

// IsNotFound reports whether the error is a session lookup miss.
func IsNotFound(err error) bool {
	return CodeOf(err) == ErrCodeNotFound
}

// IsConflict reports whether the error is a state conflict.
func IsConflict(err error) bool {
	return CodeOf(err) == ErrCodeConflict
}

// IsValidation reports whether the error is an input validation failure.
func IsValidation(err error) bool {
	return CodeOf(err) == ErrCodeValidation
}

// IsNoRunningSession reports whether the error is an end-by-default miss.
func IsNoRunningSession(err error) bool {
	return CodeOf(err) == ErrCodeNoRunningSession
}

// NewNotFoundError creates an OpError for an unknown session id.
func NewNotFoundError(sessionID string) *OpError {
	return &OpError{
		Code:      ErrCodeNotFound,
		Message:   "no session with this id",
		SessionID: sessionID,
	}
}

// NewAlreadyEndedError creates an OpError for ending an ended session.
func NewAlreadyEndedError(sessionID string) *OpError {
	return &OpError{
		Code:      ErrCodeConflict,
		Message:   "session already ended",
		SessionID: sessionID,
	}
}

// NewNoRunningSessionError creates an OpError for end-by-default with nothing open.
func NewNoRunningSessionError() *OpError {
	return &OpError{
		Code:    ErrCodeNoRunningSession,
		Message: "no running session to end",
	}
}

// NewValidationError creates an OpError for rejected input.
func NewValidationError(message string) *OpError {
	return &OpError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

// NewIOError wraps a file system failure.
func NewIOError(message string, err error) *OpError {
	return &OpError{
		Code:    ErrCodeIOFailure,
		Message: message,
		Err:     err,
	}
}

// NewParseError wraps a document decode/vetting failure.
func NewParseError(message string, err error) *OpError {
	return &OpError{
		Code:    ErrCodeParseFailure,
		Message: message,
		Err:     err,
	}
}
