package storage

import (
	"errors"
	"fmt"
)

// Common storage errors
var (
	// ErrObjectNotFound is returned when no object exists at the key
	ErrObjectNotFound = errors.New("object not found")

	// ErrInvalidKey is returned for empty keys
	ErrInvalidKey = errors.New("invalid object key")
)

// StorageError wraps a storage failure with operation context
type StorageError struct {
	Op     string
	Bucket string
	Key    string
	Err    error
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed for s3://%s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
}

// Unwrap returns the underlying error
func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new storage error
func NewStorageError(op, bucket, key string, err error) *StorageError {
	return &StorageError{Op: op, Bucket: bucket, Key: key, Err: err}
}
