package store

import (
	"context"

	"github.com/blackbird-crm/crm-api/internal/domain"
)

// CommentWithNames is a comment row joined with the current client and
// project names.
type CommentWithNames struct {
	domain.Comment
	ClientName  string `json:"client_name"`
	ProjectName string `json:"project_name"`
}

// CommentFilter narrows a comment listing. Both filters combine (AND);
// zero values mean "no filter".
type CommentFilter struct {
	// ProjectID restricts results to a single project when non-nil.
	ProjectID *int64

	// SearchQuery matches case-insensitively against the comment text,
	// the client name or the project name.
	SearchQuery string
}

// CommentStore defines the interface for comment persistence.
type CommentStore interface {
	// List returns all comments joined with client and project names,
	// narrowed by the filter.
	List(ctx context.Context, filter CommentFilter) ([]CommentWithNames, error)

	// GetByID retrieves a comment joined with client and project names.
	// Returns ErrCommentNotFound if the comment does not exist.
	GetByID(ctx context.Context, id int64) (*CommentWithNames, error)

	// ListByProject returns all comments for a project, joined with
	// client and project names.
	ListByProject(ctx context.Context, projectID int64) ([]CommentWithNames, error)

	// ListByClient returns all comments belonging to the given client.
	ListByClient(ctx context.Context, clientID int64) ([]domain.Comment, error)

	// Create persists a new comment and sets its store-assigned ID.
	Create(ctx context.Context, comment *domain.Comment) error

	// Update overwrites the comment's text and both foreign keys.
	// Returns ErrCommentNotFound if the comment does not exist.
	Update(ctx context.Context, comment *domain.Comment) error

	// Delete removes a comment. Returns ErrCommentNotFound if absent.
	Delete(ctx context.Context, id int64) error
}
