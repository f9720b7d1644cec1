// Package apperrors provides the taxonomised error type used across the
// Thoth services. Every raised error carries a category, a severity, a
// user-safe message, and technical details for the logs.
package apperrors

import (
	"errors"
	"fmt"
)

// Category classifies an error by the subsystem that produced it.
type Category string

const (
	CategoryConfiguration  Category = "CONFIGURATION"
	CategoryDatabase       Category = "DATABASE"
	CategoryVectorDB       Category = "VECTOR_DB"
	CategoryAIAgent        Category = "AI_AGENT"
	CategoryValidation     Category = "VALIDATION"
	CategoryNetwork        Category = "NETWORK"
	CategoryAuthentication Category = "AUTHENTICATION"
	CategoryResource       Category = "RESOURCE"
	CategoryUserInput      Category = "USER_INPUT"
	CategoryInternal       Category = "INTERNAL"
)

// Severity grades how serious an error is for the pipeline.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityError    Severity = "ERROR"
	SeverityWarning  Severity = "WARNING"
	SeverityInfo     Severity = "INFO"
)

// AppError is the canonical error value for Thoth subsystems.
type AppError struct {
	Category Category
	Severity Severity
	// Message is safe to show to end users.
	Message string
	// Detail carries technical information for logs only.
	Detail string
	// Code is an optional machine-readable identifier.
	Code string
	// Context carries extra key/value diagnostics.
	Context map[string]any
	// Err is the wrapped cause, if any.
	Err error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("[%s/%s] %s: %s", e.Category, e.Severity, e.Message, e.Detail)
	}
	return fmt.Sprintf("[%s/%s] %s", e.Category, e.Severity, e.Message)
}

// Unwrap returns the wrapped cause.
func (e *AppError) Unwrap() error {
	return e.Err
}

// IsCritical reports whether the error should terminate the pipeline.
func (e *AppError) IsCritical() bool {
	return e.Severity == SeverityCritical
}

// WithContext attaches a diagnostic key/value pair and returns the error.
func (e *AppError) WithContext(key string, value any) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// WithCode sets the machine-readable code and returns the error.
func (e *AppError) WithCode(code string) *AppError {
	e.Code = code
	return e
}

// New creates an AppError with the given category, severity and user message.
func New(category Category, severity Severity, message string) *AppError {
	return &AppError{Category: category, Severity: severity, Message: message}
}

// Wrap creates an AppError around an existing cause. The cause's text becomes
// the technical detail.
func Wrap(category Category, severity Severity, message string, err error) *AppError {
	ae := &AppError{Category: category, Severity: severity, Message: message, Err: err}
	if err != nil {
		ae.Detail = err.Error()
	}
	return ae
}

// Critical is shorthand for New(category, SeverityCritical, message).
func Critical(category Category, message string) *AppError {
	return New(category, SeverityCritical, message)
}

// As extracts an *AppError from an error chain.
func As(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// CategoryOf returns the category of err, or CategoryInternal when err is not
// an AppError.
func CategoryOf(err error) Category {
	if ae, ok := As(err); ok {
		return ae.Category
	}
	return CategoryInternal
}
