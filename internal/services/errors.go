package services

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is returned when real authentication is requested before
// it exists.
var ErrNotImplemented = errors.New("authentication is not implemented yet")

// NotFoundError is raised for a missing or malformed identifier. The two
// cases are deliberately indistinguishable.
type NotFoundError struct {
	Resource string
	ID       string
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ConflictError is raised when a unique field collides with a different
// active record.
type ConflictError struct {
	Resource string
	Field    string
}

func NewConflictError(resource, field string) *ConflictError {
	return &ConflictError{Resource: resource, Field: field}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with this %s already exists", e.Resource, e.Field)
}

func IsNotFoundError(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsConflictError(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}
