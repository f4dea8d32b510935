package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across layers.
var (
	// ErrInvalidRequest is returned when a preview request fails domain validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnknownCategory is returned when a category key cannot be resolved.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrInvalidCatalog is returned when a category configuration is malformed.
	ErrInvalidCatalog = errors.New("invalid category catalog")
)

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidRequest.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// Validate checks the optional center coordinate.
func (r PreviewRequest) Validate() error {
	if r.Center == nil {
		return nil
	}
	if r.Center.Lat < -90 || r.Center.Lat > 90 {
		return NewValidationError("center.lat", "latitude must be between -90 and 90")
	}
	if r.Center.Lng < -180 || r.Center.Lng > 180 {
		return NewValidationError("center.lng", "longitude must be between -180 and 180")
	}
	return nil
}
