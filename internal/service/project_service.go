package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/blackbird-crm/crm-api/internal/domain"
	"github.com/blackbird-crm/crm-api/internal/store"
)

// ProjectParams carries the caller-supplied fields for creating or editing
// a project. Any supplied start date is ignored: the server assigns it at
// creation and it never changes afterwards.
type ProjectParams struct {
	ClientID    int64
	ProjectName string
	Status      string
}

// ProjectService defines operations on projects.
type ProjectService interface {
	// List returns projects joined with their client's name. A non-nil
	// clientID restricts to that client; a non-empty searchQuery matches
	// case-insensitively against project or client name. Filters combine.
	List(ctx context.Context, clientID *int64, searchQuery string) ([]store.ProjectWithClient, error)

	// Get returns the project joined with its client, or
	// store.ErrProjectNotFound.
	Get(ctx context.Context, id int64) (*store.ProjectWithClient, error)

	// Exists reports whether the project exists. Used by the comment and
	// transaction services for reference checks.
	Exists(ctx context.Context, id int64) (bool, error)

	// Create validates that the referenced client exists
	// (ErrInvalidClientID otherwise), then persists a project whose start
	// date is the current server time.
	Create(ctx context.Context, params ProjectParams) (*store.ProjectWithClient, error)

	// Update overwrites name, status and client link. Returns
	// store.ErrProjectNotFound if the project is absent and
	// ErrInvalidClientID if the new client does not exist. The start date
	// is left untouched.
	Update(ctx context.Context, id int64, params ProjectParams) (*store.ProjectWithClient, error)

	// Delete removes the project or returns store.ErrProjectNotFound.
	Delete(ctx context.Context, id int64) error
}

type projectService struct {
	projects store.ProjectStore
	clients  ClientService
	logger   *slog.Logger
}

// NewProjectService creates a new ProjectService. The client service is
// used only for existence checks.
func NewProjectService(
	projects store.ProjectStore,
	clients ClientService,
	logger *slog.Logger,
) (ProjectService, error) {
	if projects == nil {
		return nil, fmt.Errorf("project service requires a project store")
	}
	if clients == nil {
		return nil, fmt.Errorf("project service requires a client service")
	}
	if logger == nil {
		return nil, fmt.Errorf("project service requires a logger")
	}

	return &projectService{
		projects: projects,
		clients:  clients,
		logger:   logger.With(slog.String("component", "project_service")),
	}, nil
}

func (s *projectService) List(ctx context.Context, clientID *int64, searchQuery string) ([]store.ProjectWithClient, error) {
	return s.projects.List(ctx, store.ProjectFilter{
		ClientID:    clientID,
		SearchQuery: searchQuery,
	})
}

func (s *projectService) Get(ctx context.Context, id int64) (*store.ProjectWithClient, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) Exists(ctx context.Context, id int64) (bool, error) {
	return s.projects.Exists(ctx, id)
}

func (s *projectService) Create(ctx context.Context, params ProjectParams) (*store.ProjectWithClient, error) {
	exists, err := s.clients.Exists(ctx, params.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to check client existence: %w", err)
	}
	if !exists {
		return nil, ErrInvalidClientID
	}

	project := &domain.Project{
		ClientID:    params.ClientID,
		ProjectName: params.ProjectName,
		StartDate:   time.Now().UTC(),
		Status:      params.Status,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		slog.Int64("project_id", project.ID),
		slog.Int64("client_id", project.ClientID))

	return s.projects.GetByID(ctx, project.ID)
}

func (s *projectService) Update(ctx context.Context, id int64, params ProjectParams) (*store.ProjectWithClient, error) {
	existing, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.clients.Exists(ctx, params.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to check client existence: %w", err)
	}
	if !exists {
		return nil, ErrInvalidClientID
	}

	updated := &domain.Project{
		ID:          existing.ID,
		ClientID:    params.ClientID,
		ProjectName: params.ProjectName,
		Status:      params.Status,
		// StartDate intentionally not carried into the update.
	}
	if err := s.projects.Update(ctx, updated); err != nil {
		return nil, err
	}

	return s.projects.GetByID(ctx, id)
}

func (s *projectService) Delete(ctx context.Context, id int64) error {
	return s.projects.Delete(ctx, id)
}
