// Package errors provides custom error types for the application.
package errors

import (
	"errors"
	"strings"
)

// Common errors
var (
	ErrInvalidID = errors.New("invalid id")
)

// Movie errors
var (
	ErrMovieNotFound    = errors.New("movie not found")
	ErrGenreNotFound    = errors.New("genre not found")
	ErrDirectorNotFound = errors.New("director not found")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Auth errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenRevoked = errors.New("token revoked")
	ErrForbidden    = errors.New("insufficient permissions")
)

// Storage errors
var (
	ErrStorageDisabled = errors.New("image storage is not configured")
)

// FieldError describes one failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every failed rule for a payload.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// AsValidationError reports whether err is a ValidationError and returns it.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// IsAlreadyExists reports whether err is a uniqueness conflict.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrEmailTaken)
}

// IsNotFound reports whether err is any not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrMovieNotFound) ||
		errors.Is(err, ErrGenreNotFound) ||
		errors.Is(err, ErrDirectorNotFound) ||
		errors.Is(err, ErrUserNotFound)
}
