package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/blackbird-crm/crm-api/internal/domain"
	"github.com/blackbird-crm/crm-api/internal/store"
)

// TransactionParams carries the caller-supplied fields for creating or
// editing a transaction. The due date is ignored at creation (the server
// assigns the current time) but honored on update.
type TransactionParams struct {
	ClientID          int64
	ProjectID         int64
	Amount            decimal.Decimal
	DueAmount         decimal.Decimal
	DueDate           time.Time
	TransactionStatus string
	Currency          string
}

// TransactionService defines operations on transactions.
type TransactionService interface {
	// List returns transactions joined with client and project names. A
	// non-empty searchQuery matches case-insensitively against client or
	// project name only; a non-nil projectID restricts to that project.
	List(ctx context.Context, projectID *int64, searchQuery string) ([]store.TransactionWithNames, error)

	// Get returns the transaction joined with client and project names,
	// or store.ErrTransactionNotFound.
	Get(ctx context.Context, id int64) (*store.TransactionWithNames, error)

	// Create checks that the client and project each exist, without
	// cross-validating them against each other, and persists the
	// transaction with a server-assigned due date. A dangling reference
	// yields a *MissingReferenceError naming it.
	Create(ctx context.Context, params TransactionParams) (*store.TransactionWithNames, error)

	// Update overwrites all mutable fields, honoring the caller-supplied
	// due date. A new client or project reference that does not exist
	// leaves that particular link unchanged (best-effort link update).
	Update(ctx context.Context, id int64, params TransactionParams) (*store.TransactionWithNames, error)

	// Delete removes the transaction or returns store.ErrTransactionNotFound.
	Delete(ctx context.Context, id int64) error
}

type transactionService struct {
	transactions store.TransactionStore
	clients      ClientService
	projects     ProjectService
	logger       *slog.Logger
}

// NewTransactionService creates a new TransactionService. The client and
// project services are used for reference checks only.
func NewTransactionService(
	transactions store.TransactionStore,
	clients ClientService,
	projects ProjectService,
	logger *slog.Logger,
) (TransactionService, error) {
	if transactions == nil {
		return nil, fmt.Errorf("transaction service requires a transaction store")
	}
	if clients == nil || projects == nil {
		return nil, fmt.Errorf("transaction service requires client and project services")
	}
	if logger == nil {
		return nil, fmt.Errorf("transaction service requires a logger")
	}

	return &transactionService{
		transactions: transactions,
		clients:      clients,
		projects:     projects,
		logger:       logger.With(slog.String("component", "transaction_service")),
	}, nil
}

func (s *transactionService) List(ctx context.Context, projectID *int64, searchQuery string) ([]store.TransactionWithNames, error) {
	return s.transactions.List(ctx, store.TransactionFilter{
		ProjectID:   projectID,
		SearchQuery: searchQuery,
	})
}

func (s *transactionService) Get(ctx context.Context, id int64) (*store.TransactionWithNames, error) {
	return s.transactions.GetByID(ctx, id)
}

func (s *transactionService) Create(ctx context.Context, params TransactionParams) (*store.TransactionWithNames, error) {
	exists, err := s.clients.Exists(ctx, params.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to check client existence: %w", err)
	}
	if !exists {
		return nil, &MissingReferenceError{Entity: "Client", ID: params.ClientID}
	}

	exists, err = s.projects.Exists(ctx, params.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check project existence: %w", err)
	}
	if !exists {
		return nil, &MissingReferenceError{Entity: "Project", ID: params.ProjectID}
	}

	transaction := &domain.Transaction{
		ClientID:          params.ClientID,
		ProjectID:         params.ProjectID,
		Amount:            params.Amount,
		DueAmount:         params.DueAmount,
		DueDate:           time.Now().UTC(), // caller-supplied due date is ignored on create
		TransactionStatus: params.TransactionStatus,
		Currency:          params.Currency,
	}
	if err := s.transactions.Create(ctx, transaction); err != nil {
		return nil, err
	}

	s.logger.Info("transaction created",
		slog.Int64("transaction_id", transaction.ID),
		slog.Int64("client_id", transaction.ClientID),
		slog.Int64("project_id", transaction.ProjectID))

	return s.transactions.GetByID(ctx, transaction.ID)
}

func (s *transactionService) Update(ctx context.Context, id int64, params TransactionParams) (*store.TransactionWithNames, error) {
	existing, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Best-effort link update, as with comments.
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

	updated := &domain.Transaction{
		ID:                id,
		ClientID:          clientID,
		ProjectID:         projectID,
		Amount:            params.Amount,
		DueAmount:         params.DueAmount,
		DueDate:           params.DueDate, // caller-supplied due date is honored on update
		TransactionStatus: params.TransactionStatus,
		Currency:          params.Currency,
	}
	if err := s.transactions.Update(ctx, updated); err != nil {
		return nil, err
	}

	return s.transactions.GetByID(ctx, id)
}

func (s *transactionService) Delete(ctx context.Context, id int64) error {
	return s.transactions.Delete(ctx, id)
}
