package errors

import (
	"errors"
	"fmt"
)

// Common application errors with proper types for error handling

var (
	// ErrNotFound indicates a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates invalid input data
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates missing or invalid authentication
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnsupportedOperation indicates a platform has no integration for the requested action
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrUpstream indicates a failed call to an external platform
	ErrUpstream = errors.New("upstream failure")
)

// NotFoundError creates a not found error with context
func NotFoundError(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

// InvalidInputError creates an invalid input error with context
func InvalidInputError(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrInvalidInput)
}

// UnsupportedOperationError reports an action the platform cannot perform
func UnsupportedOperationError(platform, operation string) error {
	return fmt.Errorf("%s does not support %s: %w", platform, operation, ErrUnsupportedOperation)
}

// UpstreamError wraps a failure from an external platform call
func UpstreamError(platform, operation string, err error) error {
	return fmt.Errorf("%s %s: %w: %w", platform, operation, ErrUpstream, err)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
