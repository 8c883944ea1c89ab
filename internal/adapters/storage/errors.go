package storage

import (
	"errors"
	"fmt"
)

// Common storage error types
var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrInvalidItem   = errors.New("invalid item")
)

// ErrorKind classifies storage failures
type ErrorKind int

const (
	// KindBackend covers remote call and (de)serialization failures
	KindBackend ErrorKind = iota
	// KindNotFound means the store holds no item for the key
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	default:
		return "backend"
	}
}

// StorageError represents a storage operation error with additional context
type StorageError struct {
	Op   string    // Operation that failed (e.g., "Save", "Get")
	Key  string    // Entry key involved in the operation
	Kind ErrorKind // Failure classification
	Err  error     // Underlying error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s operation failed for key '%s': %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewBackendError wraps a failed remote call or an undecodable item
func NewBackendError(op, key string, err error) *StorageError {
	return &StorageError{
		Op:   op,
		Key:  key,
		Kind: KindBackend,
		Err:  err,
	}
}

// NewNotFoundError reports that no item exists for key
func NewNotFoundError(op, key string) *StorageError {
	return &StorageError{
		Op:   op,
		Key:  key,
		Kind: KindNotFound,
		Err:  ErrEntryNotFound,
	}
}

// IsNotFound returns true if the error indicates an entry was not found
func IsNotFound(err error) bool {
	var storageErr *StorageError
	if errors.As(err, &storageErr) {
		return storageErr.Kind == KindNotFound
	}
	return errors.Is(err, ErrEntryNotFound)
}
