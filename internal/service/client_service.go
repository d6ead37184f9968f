package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blackbird-crm/crm-api/internal/domain"
	"github.com/blackbird-crm/crm-api/internal/store"
)

// ClientDetails aggregates a client with everything attached to it. Each
// sub-list is queried independently by the client dimension only; for
// example transactions are not cross-checked against the client's projects.
type ClientDetails struct {
	Client       domain.Client
	Projects     []domain.Project
	Comments     []domain.Comment
	Transactions []domain.Transaction
}

// ClientService defines operations on clients.
type ClientService interface {
	// List returns all clients, optionally narrowed by a case-insensitive
	// substring search across name, email and phone number.
	List(ctx context.Context, searchQuery string) ([]domain.Client, error)

	// Get returns the client or store.ErrClientNotFound.
	Get(ctx context.Context, id int64) (*domain.Client, error)

	// GetDetails returns the client plus its projects, comments and
	// transactions, or store.ErrClientNotFound.
	GetDetails(ctx context.Context, id int64) (*ClientDetails, error)

	// Exists reports whether the client exists. Used by the other
	// services for reference checks.
	Exists(ctx context.Context, id int64) (bool, error)

	// Create persists a new client, setting its ID.
	Create(ctx context.Context, client *domain.Client) error

	// Update overwrites the client's mutable fields in place.
	Update(ctx context.Context, client *domain.Client) error

	// Delete removes the client. Dependent rows are not cleaned up;
	// referential integrity is the database's concern.
	Delete(ctx context.Context, id int64) error
}

type clientService struct {
	clients      store.ClientStore
	projects     store.ProjectStore
	comments     store.CommentStore
	transactions store.TransactionStore
	logger       *slog.Logger
}

// NewClientService creates a new ClientService with the given dependencies.
func NewClientService(
	clients store.ClientStore,
	projects store.ProjectStore,
	comments store.CommentStore,
	transactions store.TransactionStore,
	logger *slog.Logger,
) (ClientService, error) {
	if clients == nil || projects == nil || comments == nil || transactions == nil {
		return nil, fmt.Errorf("client service requires all stores")
	}
	if logger == nil {
		return nil, fmt.Errorf("client service requires a logger")
	}

	return &clientService{
		clients:      clients,
		projects:     projects,
		comments:     comments,
		transactions: transactions,
		logger:       logger.With(slog.String("component", "client_service")),
	}, nil
}

func (s *clientService) List(ctx context.Context, searchQuery string) ([]domain.Client, error) {
	return s.clients.List(ctx, searchQuery)
}

func (s *clientService) Get(ctx context.Context, id int64) (*domain.Client, error) {
	return s.clients.GetByID(ctx, id)
}

func (s *clientService) GetDetails(ctx context.Context, id int64) (*ClientDetails, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	projects, err := s.projects.ListByClient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load client projects: %w", err)
	}

	comments, err := s.comments.ListByClient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load client comments: %w", err)
	}

	transactions, err := s.transactions.ListByClient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load client transactions: %w", err)
	}

	return &ClientDetails{
		Client:       *client,
		Projects:     projects,
		Comments:     comments,
		Transactions: transactions,
	}, nil
}

func (s *clientService) Exists(ctx context.Context, id int64) (bool, error) {
	return s.clients.Exists(ctx, id)
}

func (s *clientService) Create(ctx context.Context, client *domain.Client) error {
	return s.clients.Create(ctx, client)
}

func (s *clientService) Update(ctx context.Context, client *domain.Client) error {
	return s.clients.Update(ctx, client)
}

func (s *clientService) Delete(ctx context.Context, id int64) error {
	return s.clients.Delete(ctx, id)
}
