// Package apperrors defines the error taxonomy every service in this backend
// returns. Controllers map the types onto HTTP statuses; services never encode
// transport concerns themselves.
package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError: caller-supplied input violates a precondition. Detectable
// before touching shared state; never leaves partial state behind.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func NewValidation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError: the referenced identity does not exist or is not visible to
// the caller.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func NewNotFound(resource string, id interface{}) error {
	return &NotFoundError{Resource: resource, ID: fmt.Sprint(id)}
}

// StateConflictError: the operation is well-formed but incompatible with the
// entity's current status (room taken, booking already cancelled, order done).
type StateConflictError struct {
	Message string
}

func (e *StateConflictError) Error() string { return e.Message }

func NewStateConflict(message string) error {
	return &StateConflictError{Message: message}
}

// BackendError: opaque persistence/transport failure, surfaced with its cause
// but not interpreted further.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

func NewBackend(op string, err error) error {
	return &BackendError{Op: op, Err: err}
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsStateConflict(err error) bool {
	var target *StateConflictError
	return errors.As(err, &target)
}

func IsBackend(err error) bool {
	var target *BackendError
	return errors.As(err, &target)
}
