package config

import "fmt"

// ConfigErrorType categorizes configuration errors.
type ConfigErrorType int

const (
	// ConfigNotFound indicates the configuration file does not exist.
	ConfigNotFound ConfigErrorType = iota
	// ConfigInvalid indicates the file could not be read or parsed.
	ConfigInvalid
	// ConfigValidationFailed indicates a value failed validation.
	ConfigValidationFailed
)

// ConfigError represents a configuration loading or validation error.
type ConfigError struct {
	// Type categorizes the error.
	Type ConfigErrorType
	// Path is the configuration file path.
	Path string
	// Field is the offending field for validation errors.
	Field string
	// Message is the error message.
	Message string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("config field %s: %s", e.Field, e.Message)
	case e.Cause != nil:
		return fmt.Sprintf("%s (path: %s): %v", e.Message, e.Path, e.Cause)
	default:
		return fmt.Sprintf("%s (path: %s)", e.Message, e.Path)
	}
}

// Unwrap returns the underlying cause error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// newConfigError creates a new ConfigError.
func newConfigError(typ ConfigErrorType, path, message string, cause error) *ConfigError {
	return &ConfigError{Type: typ, Path: path, Message: message, Cause: cause}
}

// newConfigErrorWithField creates a validation ConfigError.
func newConfigErrorWithField(typ ConfigErrorType, path, field, message string) *ConfigError {
	return &ConfigError{Type: typ, Path: path, Field: field, Message: message}
}
