package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryNavigation Category = "navigation"
	CategoryModule     Category = "module"
	CategoryData       Category = "data"
	CategoryConfig     Category = "config"
	CategoryCLI        Category = "cli"
)

// LazyNavError is a structured error with suggestions and documentation.
type LazyNavError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (navigation, module, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *LazyNavError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *LazyNavError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *LazyNavError) WithSuggestion(s string) *LazyNavError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *LazyNavError) WithDetail(d string) *LazyNavError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *LazyNavError) Wrap(err error) *LazyNavError {
	e.Wrapped = err
	return e
}

// New creates a LazyNavError from a registered error code.
func New(code string) *LazyNavError {
	template, ok := registry[code]
	if !ok {
		return &LazyNavError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &LazyNavError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new LazyNavError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *LazyNavError {
	return &LazyNavError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a LazyNavError.
func FromError(err error, code string) *LazyNavError {
	if err == nil {
		return nil
	}
	if le, ok := err.(*LazyNavError); ok {
		return le
	}
	return New(code).Wrap(err)
}
