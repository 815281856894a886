package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is the only domain error: no record exists for an identifier
var ErrNotFound = errors.New("not found")

// NotFoundError names the entity and id that could not be found.
// It matches ErrNotFound under errors.Is.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// Is makes errors.Is(err, ErrNotFound) true
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IsNotFound reports whether err is (or wraps) a not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
