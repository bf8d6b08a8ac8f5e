package services

import (
	"errors"
	"fmt"
)

// Validation failures. All of them map to a client error.
var (
	ErrMissingCategory       = errors.New("category_id is required")
	ErrUnknownCategory       = errors.New("category_id does not match a category")
	ErrIncompleteCoordinates = errors.New("lat and long must be supplied together")
	ErrInvalidCoordinates    = errors.New("lat and long must be decimal numbers")
)

// ErrResourceNotFound is returned by detail lookups on an unknown id.
var ErrResourceNotFound = errors.New("resource not found")

// IsValidationError reports whether err is one of the search validation failures.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingCategory) ||
		errors.Is(err, ErrUnknownCategory) ||
		errors.Is(err, ErrIncompleteCoordinates) ||
		errors.Is(err, ErrInvalidCoordinates)
}

// StorageError wraps a failure of the storage collaborator so callers can tell
// infrastructure problems apart from bad input.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageError(op string, err error) error {
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// IsStorageError reports whether err carries a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
