package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrInvalidArgument marks input outside a mapper's declared domain, such as an
// empty identifier or a value of the wrong type for an attribute key.
var ErrInvalidArgument = stderrors.New("invalid argument")

// ParseError represents a scenario parsing failure with optional line metadata.
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

// ValidationError captures a rejected identifier, attribute value or scenario field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

// NewInvalidArgument constructs a ValidationError that matches ErrInvalidArgument.
func NewInvalidArgument(field, message string) error {
	return &ValidationError{Field: field, Message: message, Err: ErrInvalidArgument}
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

// EvaluationError reports a failure while turning a scenario element into attributes.
type EvaluationError struct {
	ElementID string
	Err       error
}

// NewEvaluationError constructs an EvaluationError.
func NewEvaluationError(elementID string, err error) error {
	return &EvaluationError{ElementID: elementID, Err: err}
}

func (e *EvaluationError) Error() string {
	if e == nil {
		return ""
	}
	if e.ElementID != "" {
		return fmt.Sprintf("evaluation error on element %s: %v", e.ElementID, e.Err)
	}
	return fmt.Sprintf("evaluation error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *EvaluationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
