// Package domain contains the core domain models and types.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the service edges. The risk engine itself has no
// failure modes.
var (
	// ErrInvalidConfig indicates invalid configuration.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidRequest indicates a request body could not be decoded.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrEmptyBatch indicates a ranking request without animals.
	ErrEmptyBatch = errors.New("no animals to rank")

	// ErrBatchTooLarge indicates a ranking request above the configured limit.
	ErrBatchTooLarge = errors.New("too many animals in one request")

	// ErrUnknownPreset indicates a profile preset name that does not exist.
	ErrUnknownPreset = errors.New("unknown profile preset")
)

// OpError wraps an error with the operation that produced it.
type OpError struct {
	// Op is the operation that failed.
	Op string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *OpError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *OpError) Unwrap() error {
	return e.Err
}

// WrapError creates a new OpError with context.
func WrapError(op string, err error) *OpError {
	return &OpError{
		Op:  op,
		Err: err,
	}
}
