package models

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrInvalidInput marks a form that failed field validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateKey marks an email or username that is already taken.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNotFound marks a lookup of an unknown account or record.
	ErrNotFound = errors.New("not found")
	// ErrOTPNotRequested is returned when a reset is confirmed before any code was issued.
	ErrOTPNotRequested = errors.New("otp not requested")
	// ErrOTPMismatch is returned when the supplied code differs from the issued one.
	ErrOTPMismatch = errors.New("otp mismatch")
	// ErrInvalidTransition is returned when an appointment is not in a state that allows the change.
	ErrInvalidTransition = errors.New("invalid appointment status transition")
	// ErrInvalidCredentials is deliberately generic: it never says whether the account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError carries field-scoped messages for a rejected form.
// Cause classifies the failure and is reachable through errors.Is.
type ValidationError struct {
	Fields map[string]string
	Cause  error
}

// NewValidationError builds a ValidationError; a nil cause means ErrInvalidInput.
func NewValidationError(fields map[string]string, cause error) *ValidationError {
	if cause == nil {
		cause = ErrInvalidInput
	}
	return &ValidationError{Fields: fields, Cause: cause}
}

// FieldError is shorthand for a single failing field.
func FieldError(field, message string, cause error) *ValidationError {
	return NewValidationError(map[string]string{field: message}, cause)
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return e.Cause.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// FieldsOf extracts the field map from err, or nil when err is not a ValidationError.
func FieldsOf(err error) map[string]string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Fields
	}
	return nil
}
