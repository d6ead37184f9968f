package store

import (
	"context"

	"github.com/blackbird-crm/crm-api/internal/domain"
)

// ProjectWithClient is a project row joined with its owning client's name.
type ProjectWithClient struct {
	domain.Project
	ClientName string `json:"client_name"`
}

// ProjectFilter narrows a project listing. Both filters combine (AND);
// zero values mean "no filter".
type ProjectFilter struct {
	// ClientID restricts results to a single client when non-nil.
	ClientID *int64

	// SearchQuery matches case-insensitively against the project name or
	// the owning client's name.
	SearchQuery string
}

// ProjectStore defines the interface for project persistence.
type ProjectStore interface {
	// List returns all projects joined with their client's name, narrowed
	// by the filter.
	List(ctx context.Context, filter ProjectFilter) ([]ProjectWithClient, error)

	// GetByID retrieves a project joined with its client's name.
	// Returns ErrProjectNotFound if the project does not exist.
	GetByID(ctx context.Context, id int64) (*ProjectWithClient, error)

	// Exists reports whether a project with the given id exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// ListByClient returns all projects belonging to the given client.
	ListByClient(ctx context.Context, clientID int64) ([]domain.Project, error)

	// Create persists a new project and sets its store-assigned ID.
	Create(ctx context.Context, project *domain.Project) error

	// Update overwrites the project's name, status and client link.
	// The start date is never modified. Returns ErrProjectNotFound if the
	// project does not exist.
	Update(ctx context.Context, project *domain.Project) error

	// Delete removes a project. Returns ErrProjectNotFound if absent.
	Delete(ctx context.Context, id int64) error
}
