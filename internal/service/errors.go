package service

import (
	"errors"
	"fmt"
)

// Validation errors surfaced to the API layer as 400 responses.
var (
	// ErrInvalidClientID is returned when a create references a client
	// that does not exist.
	ErrInvalidClientID = errors.New("invalid client ID")

	// ErrProjectClientMismatch is returned by comment creation when the
	// referenced project does not exist or does not belong to the
	// referenced client.
	ErrProjectClientMismatch = errors.New(
		"invalid project ID or the project does not belong to the client")
)

// MissingReferenceError reports a dangling reference by entity and id. It is
// used by transaction creation, where the response message must identify
// which reference was missing.
type MissingReferenceError struct {
	Entity string // "Client" or "Project"
	ID     int64
}

// Error implements the error interface.
func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}
