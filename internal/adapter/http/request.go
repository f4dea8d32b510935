// Package http provides the HTTP handler layer for the business import API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"math"
)

// PreviewImportRequest represents the request body for an import preview.
type PreviewImportRequest struct {
	// Category is the business category key (e.g., "restaurant")
	Category string `json:"category" example:"restaurant"`

	// RadiusMeters is the search radius around the center in meters
	RadiusMeters int `json:"radiusMeters" example:"8000"`

	// Center optionally anchors the preview to a location so grid points are returned
	Center *CenterDTO `json:"center,omitempty"`
}

// CenterDTO is a WGS84 coordinate.
// Example: {"lat": 51.8994, "lng": -2.0783}
type CenterDTO struct {
	Lat float64 `json:"lat" example:"51.8994"`
	Lng float64 `json:"lng" example:"-2.0783"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the request shape. Category and radius are deliberately
// unchecked: an unknown category or non-positive radius still gets a preview.
func (r *PreviewImportRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.Center != nil {
		validateCoordinate(errs, "center.lat", r.Center.Lat, 90)
		validateCoordinate(errs, "center.lng", r.Center.Lng, 180)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateCoordinate(errs *ValidationErrors, field string, v, bound float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		errs.Add(field, field+" must be a finite number")
		return
	}
	if v < -bound || v > bound {
		errs.Add(field, fmt.Sprintf("%s must be between %g and %g", field, -bound, bound))
	}
}
