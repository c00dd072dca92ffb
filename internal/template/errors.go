package template

import "fmt"

// RenderErrorType represents the type of rendering error.
type RenderErrorType int

const (
	// UnknownTag indicates an unrecognized {% ... %} tag.
	UnknownTag RenderErrorType = iota
	// MissingVariable indicates a variable reference that doesn't exist.
	MissingVariable
	// TypeMismatch indicates a type conversion error (e.g., non-bool in {% if %}).
	TypeMismatch
	// UnclosedBlock indicates a missing {% endif %} for {% if %}.
	UnclosedBlock
	// InvalidTagSyntax indicates malformed tag syntax.
	InvalidTagSyntax
)

// RenderError represents a template rendering error with tag context.
type RenderError struct {
	// Type is the error type.
	Type RenderErrorType
	// Message is the error message.
	Message string
	// Tag is the problematic tag text.
	Tag string
	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("%s (tag: %s)", e.Message, e.Tag)
	}
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *RenderError) Unwrap() error {
	return e.Cause
}

// newRenderErrorWithTag creates a RenderError with tag context.
func newRenderErrorWithTag(typ RenderErrorType, message, tag string) *RenderError {
	return &RenderError{
		Type:    typ,
		Message: message,
		Tag:     tag,
	}
}
