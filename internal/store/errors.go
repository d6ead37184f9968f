package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors below.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidReference is returned when a write references a row that
	// does not exist (foreign key violation).
	ErrInvalidReference = errors.New("invalid reference")

	// Entity-specific "not found" errors.

	ErrUserNotFound        = fmt.Errorf("%w: user", ErrNotFound)
	ErrClientNotFound      = fmt.Errorf("%w: client", ErrNotFound)
	ErrProjectNotFound     = fmt.Errorf("%w: project", ErrNotFound)
	ErrCommentNotFound     = fmt.Errorf("%w: comment", ErrNotFound)
	ErrTransactionNotFound = fmt.Errorf("%w: transaction", ErrNotFound)

	// ErrEmailExists indicates that a user with the given email already
	// exists. Returned when registering an email that is already in use.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError reports whether the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
