package name

import "fmt"

// ErrorKind categorizes name validation failures.
type ErrorKind int

const (
	// ErrorEmpty indicates the name was empty.
	ErrorEmpty ErrorKind = iota
	// ErrorInvalidInitialChar indicates the first character was not an ASCII letter.
	ErrorInvalidInitialChar
	// ErrorInvalidChar indicates a character outside [A-Za-z0-9_-] was found.
	ErrorInvalidChar
)

// Error represents an invalid plugin name.
type Error struct {
	// Kind categorizes the failure.
	Kind ErrorKind
	// Value is the rejected input.
	Value string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case ErrorEmpty:
		return "plugin name cannot be empty"
	case ErrorInvalidInitialChar:
		return fmt.Sprintf("plugin name %q must start with an ASCII letter", e.Value)
	case ErrorInvalidChar:
		return fmt.Sprintf("plugin name %q may only contain ASCII letters, digits, '-' or '_'", e.Value)
	default:
		return fmt.Sprintf("invalid plugin name %q", e.Value)
	}
}

// newNameError creates a new Error.
func newNameError(kind ErrorKind, value string) *Error {
	return &Error{Kind: kind, Value: value}
}
