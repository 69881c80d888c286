package errors

import (
	"fmt"
)

// ParseError reports a configuration file that could not be read or decoded.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures a configuration value that failed schema checks.
// Field values are not covered here: their validation is advisory and reported
// as display state, never as an error.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SnapshotError reports a rendered catalog that no longer matches its stored snapshot.
type SnapshotError struct {
	Path string
	Diff string
}

// NewSnapshotError constructs a SnapshotError carrying the unified diff.
func NewSnapshotError(path, diff string) error {
	return &SnapshotError{Path: path, Diff: diff}
}

func (e *SnapshotError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("snapshot mismatch: %s", e.Path)
}
