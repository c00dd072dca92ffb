package scaffold

import "fmt"

// ErrorType categorizes scaffold errors.
type ErrorType int

const (
	// TargetExists indicates the destination directory or file is
	// already present. Scaffolding is one-shot; there are no merge or
	// overwrite semantics unless force is requested.
	TargetExists ErrorType = iota
	// WriteFailed indicates a filesystem operation failed.
	WriteFailed
	// RenderFailed indicates an embedded template failed to render.
	// This signals a programming defect, not a user-facing runtime
	// condition: templates and context are fixed at build time.
	RenderFailed
	// GitInitFailed indicates the git init subprocess could not be
	// launched or returned non-zero. The scaffold on disk is already
	// complete and valid when this is reported.
	GitInitFailed
)

// Error represents a scaffold operation failure.
type Error struct {
	// Type categorizes the error.
	Type ErrorType
	// Message is the error message.
	Message string
	// Path is the filesystem path related to the error (if applicable).
	Path string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (path: %s): %v", e.Message, e.Path, e.Cause)
		}
		return fmt.Sprintf("%s (path: %s)", e.Message, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *Error) Unwrap() error {
	return e.Cause
}

// newScaffoldError creates a new Error.
func newScaffoldError(typ ErrorType, message, path string, cause error) *Error {
	return &Error{
		Type:    typ,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}

// IsTargetExists reports whether err is a scaffold Error of type TargetExists.
func IsTargetExists(err error) bool {
	se, ok := err.(*Error)
	return ok && se.Type == TargetExists
}

// IsGitInitFailed reports whether err is a scaffold Error of type GitInitFailed.
func IsGitInitFailed(err error) bool {
	se, ok := err.(*Error)
	return ok && se.Type == GitInitFailed
}
