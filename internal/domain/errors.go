package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrStudentNotFound signals a tag mutation against an unknown record id.
	ErrStudentNotFound = errors.New("student not found")
	// ErrEmptyTag signals a tag mutation with an empty tag.
	ErrEmptyTag = errors.New("tag is empty")
	// ErrFetchFailed signals a failed roster fetch (transport, status or decode).
	ErrFetchFailed = errors.New("roster fetch failed")
	// ErrInvalidQueryKind signals a query that targets neither name nor tag.
	ErrInvalidQueryKind = errors.New("invalid query kind")
)

// StudentNotFoundError wraps ErrStudentNotFound with the requested id.
type StudentNotFoundError struct {
	ID string
}

func (e *StudentNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrStudentNotFound.Error(), e.ID)
}

func (e *StudentNotFoundError) Unwrap() error { return ErrStudentNotFound }

// NewStudentNotFound creates a not-found error for the given id.
func NewStudentNotFound(id string) error {
	return &StudentNotFoundError{ID: id}
}
