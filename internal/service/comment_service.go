package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/blackbird-crm/crm-api/internal/domain"
	"github.com/blackbird-crm/crm-api/internal/store"
)

// CommentParams carries the caller-supplied fields for creating or editing
// a comment.
type CommentParams struct {
	ClientID    int64
	ProjectID   int64
	CommentText string
}

// CommentService defines operations on comments.
type CommentService interface {
	// List returns comments joined with client and project names. A
	// non-empty searchQuery matches case-insensitively against text,
	// client name or project name; a non-nil projectID restricts to that
	// project. Filters combine.
	List(ctx context.Context, searchQuery string, projectID *int64) ([]store.CommentWithNames, error)

	// Get returns the comment joined with client and project names, or
	// store.ErrCommentNotFound.
	Get(ctx context.Context, id int64) (*store.CommentWithNames, error)

	// ListByProject returns all comments for the project.
	ListByProject(ctx context.Context, projectID int64) ([]store.CommentWithNames, error)

	// Create validates the references: the client must exist
	// (ErrInvalidClientID) and the project must exist AND belong to that
	// client (ErrProjectClientMismatch). The created date is the current
	// server time.
	Create(ctx context.Context, params CommentParams) (*store.CommentWithNames, error)

	// Update overwrites the text and both links. A new client or project
	// reference that does not exist leaves that particular link unchanged
	// rather than failing (best-effort link update).
	Update(ctx context.Context, id int64, params CommentParams) (*store.CommentWithNames, error)

	// Delete removes the comment or returns store.ErrCommentNotFound.
	Delete(ctx context.Context, id int64) error
}

type commentService struct {
	comments store.CommentStore
	clients  ClientService
	projects ProjectService
	logger   *slog.Logger
}

// NewCommentService creates a new CommentService. The client and project
// services are used for reference checks only.
func NewCommentService(
	comments store.CommentStore,
	clients ClientService,
	projects ProjectService,
	logger *slog.Logger,
) (CommentService, error) {
	if comments == nil {
		return nil, fmt.Errorf("comment service requires a comment store")
	}
	if clients == nil || projects == nil {
		return nil, fmt.Errorf("comment service requires client and project services")
	}
	if logger == nil {
		return nil, fmt.Errorf("comment service requires a logger")
	}

	return &commentService{
		comments: comments,
		clients:  clients,
		projects: projects,
		logger:   logger.With(slog.String("component", "comment_service")),
	}, nil
}

func (s *commentService) List(ctx context.Context, searchQuery string, projectID *int64) ([]store.CommentWithNames, error) {
	return s.comments.List(ctx, store.CommentFilter{
		ProjectID:   projectID,
		SearchQuery: searchQuery,
	})
}

func (s *commentService) Get(ctx context.Context, id int64) (*store.CommentWithNames, error) {
	return s.comments.GetByID(ctx, id)
}

func (s *commentService) ListByProject(ctx context.Context, projectID int64) ([]store.CommentWithNames, error) {
	return s.comments.ListByProject(ctx, projectID)
}

func (s *commentService) Create(ctx context.Context, params CommentParams) (*store.CommentWithNames, error) {
	exists, err := s.clients.Exists(ctx, params.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to check client existence: %w", err)
	}
	if !exists {
		return nil, ErrInvalidClientID
	}

	project, err := s.projects.Get(ctx, params.ProjectID)
	if err != nil {
		if errors.Is(err, store.ErrProjectNotFound) {
			return nil, ErrProjectClientMismatch
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if project.ClientID != params.ClientID {
		return nil, ErrProjectClientMismatch
	}

	comment := &domain.Comment{
		ClientID:    params.ClientID,
		ProjectID:   params.ProjectID,
		CommentText: params.CommentText,
		CreatedDate: time.Now().UTC(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment created",
		slog.Int64("comment_id", comment.ID),
		slog.Int64("project_id", comment.ProjectID))

	return s.comments.GetByID(ctx, comment.ID)
}

func (s *commentService) Update(ctx context.Context, id int64, params CommentParams) (*store.CommentWithNames, error) {
	existing, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Best-effort link update: adopt a new reference only when it resolves,
	// otherwise keep the previous link.
	clientID := existing.ClientID
	if ok, err := s.clients.Exists(ctx, params.ClientID); err != nil {
		return nil, fmt.Errorf("failed to check client existence: %w", err)
	} else if ok {
		clientID = params.ClientID
	}

	projectID := existing.ProjectID
	if ok, err := s.projects.Exists(ctx, params.ProjectID); err != nil {
		return nil, fmt.Errorf("failed to check project existence: %w", err)
	} else if ok {
		projectID = params.ProjectID
	}

	updated := &domain.Comment{
		ID:          id,
		ClientID:    clientID,
		ProjectID:   projectID,
		CommentText: params.CommentText,
	}
	if err := s.comments.Update(ctx, updated); err != nil {
		return nil, err
	}

	return s.comments.GetByID(ctx, id)
}

func (s *commentService) Delete(ctx context.Context, id int64) error {
	return s.comments.Delete(ctx, id)
}
