// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides the validation/upstream error taxonomy used by API error mapping

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents an input-validation failure caught at the
// boundary. It never reaches core pipeline logic.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidation builds a ValidationError for a field.
func NewValidation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ExternalAPIError represents a failure reported by an upstream dependency
// (SERP retrieval or the generation provider).
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
