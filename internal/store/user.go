package store

import (
	"context"

	"github.com/blackbird-crm/crm-api/internal/domain"
)

// UserStore defines the interface for user persistence. Users are written
// once at registration and only ever read back for login.
type UserStore interface {
	// Create saves a new user, hashing the plaintext Password field into
	// HashedPassword before persisting. On success the user's ID is set.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail retrieves a user by their email address (exact,
	// case-sensitive match). Returns ErrUserNotFound if no user matches.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
