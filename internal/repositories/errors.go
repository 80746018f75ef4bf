package repositories

import (
	"errors"
	"fmt"
)

// Common repository errors
var (
	// ErrNotFound is returned when an employee record does not exist
	ErrNotFound = errors.New("employee not found")

	// ErrInvalidID is returned when an empty or malformed ID is provided
	ErrInvalidID = errors.New("invalid ID")

	// ErrConnection is returned when the backing store cannot be reached
	ErrConnection = errors.New("store connection error")
)

// RepositoryError represents a repository-specific error with additional context
type RepositoryError struct {
	Op      string // Operation that failed
	ID      string // Employee ID (if applicable)
	Err     error  // Underlying error
	Message string // Human-readable message
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	if e.ID != "" {
		return fmt.Sprintf("employee %s operation failed for ID %s: %v", e.Op, e.ID, e.Err)
	}

	return fmt.Sprintf("employee %s operation failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a new repository error
func NewRepositoryError(op, id string, err error) *RepositoryError {
	return &RepositoryError{Op: op, ID: id, Err: err}
}

// IsNotFound reports whether err represents a missing employee record
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// NotFoundError builds the user-facing not-found error for an ID.
// The message text is returned verbatim in 404 response bodies.
func NotFoundError(id string) error {
	return &RepositoryError{
		Op:      "get",
		ID:      id,
		Err:     ErrNotFound,
		Message: fmt.Sprintf("Employee '%s' not found", id),
	}
}
