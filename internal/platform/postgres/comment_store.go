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

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the
// CommentStore interface.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

var _ store.CommentStore = (*PostgresCommentStore)(nil)

const commentJoinedColumns = `
	cm.id, cm.client_id, cm.project_id, cm.comment_text, cm.created_date,
	c.client_name, p.project_name
`

const commentJoinedFrom = `
	FROM comments cm
	JOIN clients c ON c.id = cm.client_id
	JOIN projects p ON p.id = cm.project_id
`

func scanCommentWithNames(rows *sql.Rows) (store.CommentWithNames, error) {
	var cm store.CommentWithNames
	err := rows.Scan(&cm.ID, &cm.ClientID, &cm.ProjectID, &cm.CommentText,
		&cm.CreatedDate, &cm.ClientName, &cm.ProjectName)
	return cm, err
}

// List implements store.CommentStore.List. The search query matches
// case-insensitively against the comment text, the client name or the
// project name; a non-nil ProjectID restricts results to that project.
func (s *PostgresCommentStore) List(ctx context.Context, filter store.CommentFilter) ([]store.CommentWithNames, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + commentJoinedColumns + commentJoinedFrom + ` WHERE 1=1`
	var args []any
	if filter.SearchQuery != "" {
		args = append(args, filter.SearchQuery)
		n := len(args)
		query += fmt.Sprintf(`
		AND (cm.comment_text ILIKE '%%' || $%d || '%%'
			OR c.client_name ILIKE '%%' || $%d || '%%'
			OR p.project_name ILIKE '%%' || $%d || '%%')`, n, n, n)
	}
	if filter.ProjectID != nil {
		args = append(args, *filter.ProjectID)
		query += fmt.Sprintf(` AND cm.project_id = $%d`, len(args))
	}
	query += ` ORDER BY cm.id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list comments", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	comments := []store.CommentWithNames{}
	for rows.Next() {
		cm, err := scanCommentWithNames(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, cm)
	}
	return comments, rows.Err()
}

// GetByID implements store.CommentStore.GetByID.
func (s *PostgresCommentStore) GetByID(ctx context.Context, id int64) (*store.CommentWithNames, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + commentJoinedColumns + commentJoinedFrom + ` WHERE cm.id = $1`

	var cm store.CommentWithNames
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&cm.ID, &cm.ClientID, &cm.ProjectID, &cm.CommentText,
			&cm.CreatedDate, &cm.ClientName, &cm.ProjectName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCommentNotFound
		}
		log.Error("failed to get comment by ID",
			slog.String("error", err.Error()),
			slog.Int64("comment_id", id))
		return nil, err
	}
	return &cm, nil
}

// ListByProject implements store.CommentStore.ListByProject.
func (s *PostgresCommentStore) ListByProject(ctx context.Context, projectID int64) ([]store.CommentWithNames, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + commentJoinedColumns + commentJoinedFrom + `
		WHERE cm.project_id = $1 ORDER BY cm.id`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		log.Error("failed to list comments by project",
			slog.String("error", err.Error()),
			slog.Int64("project_id", projectID))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	comments := []store.CommentWithNames{}
	for rows.Next() {
		cm, err := scanCommentWithNames(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, cm)
	}
	return comments, rows.Err()
}

// ListByClient implements store.CommentStore.ListByClient.
func (s *PostgresCommentStore) ListByClient(ctx context.Context, clientID int64) ([]domain.Comment, error) {
	query := `
		SELECT id, client_id, project_id, comment_text, created_date
		FROM comments
		WHERE client_id = $1
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	comments := []domain.Comment{}
	for rows.Next() {
		var cm domain.Comment
		if err := rows.Scan(&cm.ID, &cm.ClientID, &cm.ProjectID, &cm.CommentText, &cm.CreatedDate); err != nil {
			return nil, err
		}
		comments = append(comments, cm)
	}
	return comments, rows.Err()
}

// Create implements store.CommentStore.Create.
// Returns store.ErrInvalidReference if either foreign key is dangling.
func (s *PostgresCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO comments (client_id, project_id, comment_text, created_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		comment.ClientID, comment.ProjectID, comment.CommentText, comment.CreatedDate).
		Scan(&comment.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: client %d or project %d",
				store.ErrInvalidReference, comment.ClientID, comment.ProjectID)
		}
		log.Error("failed to create comment", slog.String("error", err.Error()))
		return err
	}

	log.Info("comment created successfully",
		slog.Int64("comment_id", comment.ID),
		slog.Int64("project_id", comment.ProjectID))
	return nil
}

// Update implements store.CommentStore.Update.
func (s *PostgresCommentStore) Update(ctx context.Context, comment *domain.Comment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE comments
		SET comment_text = $1, client_id = $2, project_id = $3
		WHERE id = $4
	`
	result, err := s.db.ExecContext(ctx, query,
		comment.CommentText, comment.ClientID, comment.ProjectID, comment.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: client %d or project %d",
				store.ErrInvalidReference, comment.ClientID, comment.ProjectID)
		}
		log.Error("failed to update comment",
			slog.String("error", err.Error()),
			slog.Int64("comment_id", comment.ID))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrCommentNotFound
	}
	return nil
}

// Delete implements store.CommentStore.Delete.
func (s *PostgresCommentStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete comment",
			slog.String("error", err.Error()),
			slog.Int64("comment_id", id))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrCommentNotFound
	}

	log.Info("comment deleted successfully", slog.Int64("comment_id", id))
	return nil
}
