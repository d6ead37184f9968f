package store

import (
	"context"

	"github.com/blackbird-crm/crm-api/internal/domain"
)

// ClientStore defines the interface for client persistence.
type ClientStore interface {
	// List returns all clients, optionally narrowed by a case-insensitive
	// substring match against name, email or phone number.
	List(ctx context.Context, searchQuery string) ([]domain.Client, error)

	// GetByID retrieves a client by id.
	// Returns ErrClientNotFound if the client does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Client, error)

	// Exists reports whether a client with the given id exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// Create persists a new client and sets its store-assigned ID.
	Create(ctx context.Context, client *domain.Client) error

	// Update overwrites name, status, email and phone number in place.
	// Returns ErrClientNotFound if the client does not exist.
	Update(ctx context.Context, client *domain.Client) error

	// Delete removes a client. Returns ErrClientNotFound if absent.
	// Referential cleanup of dependent rows is left to the database.
	Delete(ctx context.Context, id int64) error
}
