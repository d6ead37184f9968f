package store

import (
	"context"

	"github.com/blackbird-crm/crm-api/internal/domain"
)

// TransactionWithNames is a transaction row joined with the current client
// and project names.
type TransactionWithNames struct {
	domain.Transaction
	ClientName  string `json:"client_name"`
	ProjectName string `json:"project_name"`
}

// TransactionFilter narrows a transaction listing. Both filters combine
// (AND); zero values mean "no filter".
type TransactionFilter struct {
	// ProjectID restricts results to a single project when non-nil.
	ProjectID *int64

	// SearchQuery matches case-insensitively against the client name or
	// the project name. Amount, status and currency are not searchable.
	SearchQuery string
}

// TransactionStore defines the interface for transaction persistence.
type TransactionStore interface {
	// List returns all transactions joined with client and project names,
	// narrowed by the filter.
	List(ctx context.Context, filter TransactionFilter) ([]TransactionWithNames, error)

	// GetByID retrieves a transaction joined with client and project names.
	// Returns ErrTransactionNotFound if the transaction does not exist.
	GetByID(ctx context.Context, id int64) (*TransactionWithNames, error)

	// ListByClient returns all transactions belonging to the given client.
	ListByClient(ctx context.Context, clientID int64) ([]domain.Transaction, error)

	// Create persists a new transaction and sets its store-assigned ID.
	Create(ctx context.Context, transaction *domain.Transaction) error

	// Update overwrites all mutable fields including both foreign keys.
	// Returns ErrTransactionNotFound if the transaction does not exist.
	Update(ctx context.Context, transaction *domain.Transaction) error

	// Delete removes a transaction. Returns ErrTransactionNotFound if absent.
	Delete(ctx context.Context, id int64) error
}
