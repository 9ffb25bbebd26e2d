package nml

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the validation failures this package can produce.
const (
	// Attribute errors
	ErrCodeInvalidAttribute   Code = "INVALID_ATTRIBUTE"
	ErrCodeUnknownAttribute   Code = "UNKNOWN_ATTRIBUTE"
	ErrCodeImmutableAttribute Code = "IMMUTABLE_ATTRIBUTE"

	// Relation errors
	ErrCodeRelationType        Code = "RELATION_TYPE"
	ErrCodeRelationCardinality Code = "RELATION_CARDINALITY"
	ErrCodeUnknownRelation     Code = "UNKNOWN_RELATION"

	// Registry errors
	ErrCodeDuplicateIdentifier Code = "DUPLICATE_IDENTIFIER"

	// Construction errors
	ErrCodeUnknownKind Code = "UNKNOWN_KIND"
)

// Error is a structured validation error with a code and the name of the
// attribute, relation, or identifier that caused it. Every operation that
// returns an Error leaves the entity and namespace state untouched.
type Error struct {
	Code    Code   // Machine-readable error code
	Subject string // Attribute, relation, or identifier the error refers to
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s: %s: %v", e.Code, e.Subject, e.Message, e.Cause)
	case e.Subject != "":
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Subject, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// newError creates an Error with the given code, subject and formatted message.
func newError(code Code, subject, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Subject: subject,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsCode reports whether err carries the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func IsCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf extracts the error code from an error, if available.
// Returns the empty code if the error is not an *Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// SubjectOf extracts the attribute or relation name an error refers to.
// Returns the empty string if the error is not an *Error.
func SubjectOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Subject
	}
	return ""
}
