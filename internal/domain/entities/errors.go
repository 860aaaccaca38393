package entities

import (
	"errors"
	"fmt"
)

// ValidationError reports an invariant or illegal-transition violation the
// caller can correct.
type ValidationError struct {
	Message string
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports a referenced id that does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func NewNotFoundError(entity string, id any) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: fmt.Sprint(id)}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Entity, e.ID)
}

// ConflictError reports duplicates and contention.
type ConflictError struct {
	Message string
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func (e *ConflictError) Error() string { return e.Message }

func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsNotFoundError(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsConflictError(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

var (
	// ErrOpenServiceOrderExists enforces one open order per vehicle and client.
	ErrOpenServiceOrderExists = NewConflictError("an open order already exists for this vehicle and client")
	// ErrConcurrentModification is returned when an update loses a version race.
	ErrConcurrentModification = NewConflictError("service order was modified concurrently")
)
