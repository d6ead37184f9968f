package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/blackbird-crm/crm-api/internal/domain"
	"github.com/blackbird-crm/crm-api/internal/platform/logger"
	"github.com/blackbird-crm/crm-api/internal/store"
)

// PostgresProjectStore implements the store.ProjectStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProjectStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProjectStore creates a new PostgreSQL implementation of the
// ProjectStore interface.
func NewPostgresProjectStore(db store.DBTX, logger *slog.Logger) *PostgresProjectStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProjectStore{
		db:     db,
		logger: logger.With(slog.String("component", "project_store")),
	}
}

var _ store.ProjectStore = (*PostgresProjectStore)(nil)

const projectJoinedColumns = `
	p.id, p.client_id, p.project_name, p.start_date, p.status, c.client_name
`

// List implements store.ProjectStore.List. The search query matches
// case-insensitively against the project name or the client name; a non-nil
// ClientID restricts results to that client. Both filters combine (AND).
func (s *PostgresProjectStore) List(ctx context.Context, filter store.ProjectFilter) ([]store.ProjectWithClient, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + projectJoinedColumns + `
		FROM projects p
		JOIN clients c ON c.id = p.client_id
		WHERE 1=1
	`
	var args []any
	if filter.SearchQuery != "" {
		args = append(args, filter.SearchQuery)
		query += fmt.Sprintf(`
		AND (p.project_name ILIKE '%%' || $%d || '%%' OR c.client_name ILIKE '%%' || $%d || '%%')`,
			len(args), len(args))
	}
	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		query += fmt.Sprintf(` AND p.client_id = $%d`, len(args))
	}
	query += ` ORDER BY p.id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list projects", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	projects := []store.ProjectWithClient{}
	for rows.Next() {
		var p store.ProjectWithClient
		if err := rows.Scan(&p.ID, &p.ClientID, &p.ProjectName, &p.StartDate, &p.Status, &p.ClientName); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetByID implements store.ProjectStore.GetByID.
func (s *PostgresProjectStore) GetByID(ctx context.Context, id int64) (*store.ProjectWithClient, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + projectJoinedColumns + `
		FROM projects p
		JOIN clients c ON c.id = p.client_id
		WHERE p.id = $1
	`

	var p store.ProjectWithClient
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.ClientID, &p.ProjectName, &p.StartDate, &p.Status, &p.ClientName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProjectNotFound
		}
		log.Error("failed to get project by ID",
			slog.String("error", err.Error()),
			slog.Int64("project_id", id))
		return nil, err
	}
	return &p, nil
}

// Exists implements store.ProjectStore.Exists.
func (s *PostgresProjectStore) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// ListByClient implements store.ProjectStore.ListByClient.
func (s *PostgresProjectStore) ListByClient(ctx context.Context, clientID int64) ([]domain.Project, error) {
	query := `
		SELECT id, client_id, project_name, start_date, status
		FROM projects
		WHERE client_id = $1
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	projects := []domain.Project{}
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.ClientID, &p.ProjectName, &p.StartDate, &p.Status); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// Create implements store.ProjectStore.Create.
// Returns store.ErrInvalidReference if the client does not exist.
func (s *PostgresProjectStore) Create(ctx context.Context, project *domain.Project) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO projects (client_id, project_name, start_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		project.ClientID, project.ProjectName, project.StartDate, project.Status).
		Scan(&project.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: client %d", store.ErrInvalidReference, project.ClientID)
		}
		log.Error("failed to create project", slog.String("error", err.Error()))
		return err
	}

	log.Info("project created successfully",
		slog.Int64("project_id", project.ID),
		slog.Int64("client_id", project.ClientID))
	return nil
}

// Update implements store.ProjectStore.Update. The start date column is
// deliberately left out of the SET list.
func (s *PostgresProjectStore) Update(ctx context.Context, project *domain.Project) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE projects
		SET project_name = $1, status = $2, client_id = $3
		WHERE id = $4
	`
	result, err := s.db.ExecContext(ctx, query,
		project.ProjectName, project.Status, project.ClientID, project.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: client %d", store.ErrInvalidReference, project.ClientID)
		}
		log.Error("failed to update project",
			slog.String("error", err.Error()),
			slog.Int64("project_id", project.ID))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrProjectNotFound
	}
	return nil
}

// Delete implements store.ProjectStore.Delete.
func (s *PostgresProjectStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete project",
			slog.String("error", err.Error()),
			slog.Int64("project_id", id))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrProjectNotFound
	}

	log.Info("project deleted successfully", slog.Int64("project_id", id))
	return nil
}
