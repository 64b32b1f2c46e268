package services

import (
	"errors"

	apperrors "github.com/formcraft/formbuilder-api/internal/errors"
)

var (
	// Form and response errors
	ErrFormNotFound     = errors.New("form not found")
	ErrResponseNotFound = errors.New("response not found")

	// Upload errors
	ErrNoImageProvided        = errors.New("no image file provided")
	ErrUnsupportedImageFormat = errors.New("unsupported image format")
	ErrImageTooLarge          = errors.New("image exceeds the upload size limit")
	ErrImageIdentifierMissing = errors.New("image identifier is required")
)

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message, rule string, value interface{}) *ValidationError {
	return apperrors.NewValidationErrorWithRule(field, message, rule, value)
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrFormNotFound) ||
		errors.Is(err, ErrResponseNotFound)
}

// IsValidation checks if error represents a client input failure
func IsValidation(err error) bool {
	var ve apperrors.ValidationErrors
	if errors.As(err, &ve) {
		return true
	}
	var single *apperrors.ValidationError
	return errors.As(err, &single)
}

// IsBadUpload checks if error represents a rejected upload
func IsBadUpload(err error) bool {
	return errors.Is(err, ErrNoImageProvided) ||
		errors.Is(err, ErrUnsupportedImageFormat) ||
		errors.Is(err, ErrImageTooLarge) ||
		errors.Is(err, ErrImageIdentifierMissing)
}
