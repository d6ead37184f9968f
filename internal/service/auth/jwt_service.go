package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing session tokens.
type JWTService interface {
	// GenerateToken creates a signed token identifying the user by email.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, email string) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns ErrExpiredToken when the token has expired and
	// ErrInvalidToken for any other validation failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the validated content of a session token.
type Claims struct {
	// Email identifies the user the token was issued for (the subject).
	Email string

	// ID is the unique token identifier (jti).
	ID string

	IssuedAt  time.Time
	ExpiresAt time.Time
}
