package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/blackbird-crm/crm-api/internal/domain"
	"github.com/blackbird-crm/crm-api/internal/platform/logger"
	"github.com/blackbird-crm/crm-api/internal/store"
)

// PostgresClientStore implements the store.ClientStore interface
// using a PostgreSQL database as the storage backend.
type PostgresClientStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresClientStore creates a new PostgreSQL implementation of the
// ClientStore interface.
func NewPostgresClientStore(db store.DBTX, logger *slog.Logger) *PostgresClientStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresClientStore{
		db:     db,
		logger: logger.With(slog.String("component", "client_store")),
	}
}

var _ store.ClientStore = (*PostgresClientStore)(nil)

// List implements store.ClientStore.List. A non-empty searchQuery matches
// as a case-insensitive substring against name, email or phone number.
func (s *PostgresClientStore) List(ctx context.Context, searchQuery string) ([]domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, client_name, status, email, phone_number
		FROM clients
	`
	var args []any
	if searchQuery != "" {
		query += `
		WHERE client_name ILIKE '%' || $1 || '%'
		   OR email ILIKE '%' || $1 || '%'
		   OR phone_number ILIKE '%' || $1 || '%'
		`
		args = append(args, searchQuery)
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list clients", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	clients := []domain.Client{}
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.ClientName, &c.Status, &c.Email, &c.PhoneNumber); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// GetByID implements store.ClientStore.GetByID.
func (s *PostgresClientStore) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, client_name, status, email, phone_number
		FROM clients
		WHERE id = $1
	`

	var c domain.Client
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.ClientName, &c.Status, &c.Email, &c.PhoneNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrClientNotFound
		}
		log.Error("failed to get client by ID",
			slog.String("error", err.Error()),
			slog.Int64("client_id", id))
		return nil, err
	}
	return &c, nil
}

// Exists implements store.ClientStore.Exists.
func (s *PostgresClientStore) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Create implements store.ClientStore.Create.
func (s *PostgresClientStore) Create(ctx context.Context, client *domain.Client) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO clients (client_name, status, email, phone_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		client.ClientName, client.Status, client.Email, client.PhoneNumber).
		Scan(&client.ID)
	if err != nil {
		log.Error("failed to create client", slog.String("error", err.Error()))
		return err
	}

	log.Info("client created successfully", slog.Int64("client_id", client.ID))
	return nil
}

// Update implements store.ClientStore.Update.
func (s *PostgresClientStore) Update(ctx context.Context, client *domain.Client) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE clients
		SET client_name = $1, status = $2, email = $3, phone_number = $4
		WHERE id = $5
	`
	result, err := s.db.ExecContext(ctx, query,
		client.ClientName, client.Status, client.Email, client.PhoneNumber, client.ID)
	if err != nil {
		log.Error("failed to update client",
			slog.String("error", err.Error()),
			slog.Int64("client_id", client.ID))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrClientNotFound
	}
	return nil
}

// Delete implements store.ClientStore.Delete.
func (s *PostgresClientStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete client",
			slog.String("error", err.Error()),
			slog.Int64("client_id", id))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrClientNotFound
	}

	log.Info("client deleted successfully", slog.Int64("client_id", id))
	return nil
}
