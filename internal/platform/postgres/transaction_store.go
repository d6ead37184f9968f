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

// PostgresTransactionStore implements the store.TransactionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTransactionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTransactionStore creates a new PostgreSQL implementation of
// the TransactionStore interface.
func NewPostgresTransactionStore(db store.DBTX, logger *slog.Logger) *PostgresTransactionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTransactionStore{
		db:     db,
		logger: logger.With(slog.String("component", "transaction_store")),
	}
}

var _ store.TransactionStore = (*PostgresTransactionStore)(nil)

const transactionJoinedColumns = `
	t.id, t.client_id, t.project_id, t.amount, t.due_amount, t.due_date,
	t.transaction_status, t.currency, c.client_name, p.project_name
`

const transactionJoinedFrom = `
	FROM transactions t
	JOIN clients c ON c.id = t.client_id
	JOIN projects p ON p.id = t.project_id
`

func scanTransactionWithNames(rows *sql.Rows) (store.TransactionWithNames, error) {
	var t store.TransactionWithNames
	err := rows.Scan(&t.ID, &t.ClientID, &t.ProjectID, &t.Amount, &t.DueAmount,
		&t.DueDate, &t.TransactionStatus, &t.Currency, &t.ClientName, &t.ProjectName)
	return t, err
}

// List implements store.TransactionStore.List. The search query matches
// case-insensitively against the client name or the project name only;
// a non-nil ProjectID restricts results to that project.
func (s *PostgresTransactionStore) List(ctx context.Context, filter store.TransactionFilter) ([]store.TransactionWithNames, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + transactionJoinedColumns + transactionJoinedFrom + ` WHERE 1=1`
	var args []any
	if filter.SearchQuery != "" {
		args = append(args, filter.SearchQuery)
		n := len(args)
		query += fmt.Sprintf(`
		AND (c.client_name ILIKE '%%' || $%d || '%%'
			OR p.project_name ILIKE '%%' || $%d || '%%')`, n, n)
	}
	if filter.ProjectID != nil {
		args = append(args, *filter.ProjectID)
		query += fmt.Sprintf(` AND t.project_id = $%d`, len(args))
	}
	query += ` ORDER BY t.id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list transactions", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	transactions := []store.TransactionWithNames{}
	for rows.Next() {
		t, err := scanTransactionWithNames(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// GetByID implements store.TransactionStore.GetByID.
func (s *PostgresTransactionStore) GetByID(ctx context.Context, id int64) (*store.TransactionWithNames, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + transactionJoinedColumns + transactionJoinedFrom + ` WHERE t.id = $1`

	var t store.TransactionWithNames
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&t.ID, &t.ClientID, &t.ProjectID, &t.Amount, &t.DueAmount,
			&t.DueDate, &t.TransactionStatus, &t.Currency, &t.ClientName, &t.ProjectName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTransactionNotFound
		}
		log.Error("failed to get transaction by ID",
			slog.String("error", err.Error()),
			slog.Int64("transaction_id", id))
		return nil, err
	}
	return &t, nil
}

// ListByClient implements store.TransactionStore.ListByClient.
func (s *PostgresTransactionStore) ListByClient(ctx context.Context, clientID int64) ([]domain.Transaction, error) {
	query := `
		SELECT id, client_id, project_id, amount, due_amount, due_date,
			transaction_status, currency
		FROM transactions
		WHERE client_id = $1
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.ClientID, &t.ProjectID, &t.Amount, &t.DueAmount,
			&t.DueDate, &t.TransactionStatus, &t.Currency); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// Create implements store.TransactionStore.Create.
// Returns store.ErrInvalidReference if either foreign key is dangling.
func (s *PostgresTransactionStore) Create(ctx context.Context, transaction *domain.Transaction) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO transactions
			(client_id, project_id, amount, due_amount, due_date, transaction_status, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		transaction.ClientID, transaction.ProjectID, transaction.Amount,
		transaction.DueAmount, transaction.DueDate, transaction.TransactionStatus,
		transaction.Currency).
		Scan(&transaction.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: client %d or project %d",
				store.ErrInvalidReference, transaction.ClientID, transaction.ProjectID)
		}
		log.Error("failed to create transaction", slog.String("error", err.Error()))
		return err
	}

	log.Info("transaction created successfully",
		slog.Int64("transaction_id", transaction.ID),
		slog.Int64("client_id", transaction.ClientID),
		slog.Int64("project_id", transaction.ProjectID))
	return nil
}

// Update implements store.TransactionStore.Update. Unlike project updates,
// the due date is written from the caller-supplied value.
func (s *PostgresTransactionStore) Update(ctx context.Context, transaction *domain.Transaction) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE transactions
		SET amount = $1, due_amount = $2, due_date = $3, transaction_status = $4,
			currency = $5, client_id = $6, project_id = $7
		WHERE id = $8
	`
	result, err := s.db.ExecContext(ctx, query,
		transaction.Amount, transaction.DueAmount, transaction.DueDate,
		transaction.TransactionStatus, transaction.Currency,
		transaction.ClientID, transaction.ProjectID, transaction.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: client %d or project %d",
				store.ErrInvalidReference, transaction.ClientID, transaction.ProjectID)
		}
		log.Error("failed to update transaction",
			slog.String("error", err.Error()),
			slog.Int64("transaction_id", transaction.ID))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrTransactionNotFound
	}
	return nil
}

// Delete implements store.TransactionStore.Delete.
func (s *PostgresTransactionStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete transaction",
			slog.String("error", err.Error()),
			slog.Int64("transaction_id", id))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrTransactionNotFound
	}

	log.Info("transaction deleted successfully", slog.Int64("transaction_id", id))
	return nil
}
