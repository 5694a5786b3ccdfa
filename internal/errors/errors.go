// Package errors provides a structured error type (RSLEnvError) used to
// classify failures by category so the CLI can pick exit codes and messages.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrorCategory represents the category of an rslenv error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Project descriptor (pom.xml) errors
	CategoryDescriptor ErrorCategory = "descriptor"

	// External system integration errors
	CategoryGit        ErrorCategory = "git"
	CategoryFileSystem ErrorCategory = "filesystem"

	// Runtime and infrastructure errors
	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// RSLEnvError is a structured error with category, severity and context
type RSLEnvError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for RSLEnvError
type ContextFields map[string]any

// Error implements the error interface
func (e *RSLEnvError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *RSLEnvError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *RSLEnvError) WithContext(key string, value any) *RSLEnvError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new RSLEnvError
func New(category ErrorCategory, severity ErrorSeverity, message string) *RSLEnvError {
	return &RSLEnvError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new RSLEnvError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *RSLEnvError {
	return &RSLEnvError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As returns the outermost RSLEnvError in err's chain.
func As(err error) (*RSLEnvError, bool) {
	var re *RSLEnvError
	if stdErrors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if re, ok := As(err); ok {
		return re.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not an RSLEnvError
func GetCategory(err error) ErrorCategory {
	if re, ok := As(err); ok {
		return re.Category
	}
	return CategoryInternal
}
