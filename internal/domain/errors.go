package domain

import "fmt"

// ValidationError indicates that input failed a business rule check.
type ValidationError struct {
	msg string
}

// NewValidationError creates a new ValidationError.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string { return e.msg }

// NotFoundError indicates that a requested resource does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ConflictError indicates that an operation collides with existing state.
type ConflictError struct {
	msg string
}

// NewConflictError creates a new ConflictError.
func NewConflictError(msg string) *ConflictError {
	return &ConflictError{msg: msg}
}

func (e *ConflictError) Error() string { return e.msg }

// InvalidStateError indicates an illegal lifecycle transition.
type InvalidStateError struct {
	msg string
}

// NewInvalidStateError creates a new InvalidStateError.
func NewInvalidStateError(msg string) *InvalidStateError {
	return &InvalidStateError{msg: msg}
}

func (e *InvalidStateError) Error() string { return e.msg }

// UnauthorizedError indicates failed authentication.
type UnauthorizedError struct {
	msg string
}

// NewUnauthorizedError creates a new UnauthorizedError.
func NewUnauthorizedError(msg string) *UnauthorizedError {
	return &UnauthorizedError{msg: msg}
}

func (e *UnauthorizedError) Error() string { return e.msg }
