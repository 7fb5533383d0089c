package relationship

import (
	"errors"
	"fmt"

	"geomate/backend/internal/store"
)

var (
	// ErrNotFound means a referenced user or request does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument means an identifier is missing or malformed.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAlreadyExists means the request or relation is already in place.
	ErrAlreadyExists = errors.New("already exists")

	// ErrWriteConflict means the store could not commit. Nothing was
	// persisted and the whole operation can be issued again.
	ErrWriteConflict = errors.New("write conflict")
)

// Entities named by NotFoundError.
const (
	EntityUser    = "user"
	EntityFriend  = "friend"
	EntityRequest = "request"
)

// NotFoundError names the record an operation could not find.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q does not exist", e.Entity, e.Key)
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(entity, key string) error {
	return &NotFoundError{Entity: entity, Key: key}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func exists(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrAlreadyExists, fmt.Sprintf(format, args...))
}

// classify maps store sentinels that escaped an operation onto the engine's.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidArgument),
		errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrWriteConflict):
		return err
	case errors.Is(err, store.ErrWriteConflict):
		return fmt.Errorf("%w: %v", ErrWriteConflict, err)
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, store.ErrAlreadyExists):
		return fmt.Errorf("%w: %v", ErrAlreadyExists, err)
	}
	return err
}
