package service

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/blackbird-crm/crm-api/internal/domain"
	"github.com/blackbird-crm/crm-api/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// In-memory store fakes. They reproduce the store contracts (sentinel
// errors, join behavior, filter semantics) without a database.

type fakeClientStore struct {
	nextID  int64
	clients map[int64]domain.Client
}

func newFakeClientStore() *fakeClientStore {
	return &fakeClientStore{clients: make(map[int64]domain.Client)}
}

func (s *fakeClientStore) List(_ context.Context, searchQuery string) ([]domain.Client, error) {
	var out []domain.Client
	q := strings.ToLower(searchQuery)
	for _, c := range s.clients {
		if q == "" ||
			strings.Contains(strings.ToLower(c.ClientName), q) ||
			strings.Contains(strings.ToLower(c.Email), q) ||
			strings.Contains(strings.ToLower(c.PhoneNumber), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *fakeClientStore) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	c, ok := s.clients[id]
	if !ok {
		return nil, store.ErrClientNotFound
	}
	return &c, nil
}

func (s *fakeClientStore) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := s.clients[id]
	return ok, nil
}

func (s *fakeClientStore) Create(_ context.Context, client *domain.Client) error {
	s.nextID++
	client.ID = s.nextID
	s.clients[client.ID] = *client
	return nil
}

func (s *fakeClientStore) Update(_ context.Context, client *domain.Client) error {
	if _, ok := s.clients[client.ID]; !ok {
		return store.ErrClientNotFound
	}
	s.clients[client.ID] = *client
	return nil
}

func (s *fakeClientStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.clients[id]; !ok {
		return store.ErrClientNotFound
	}
	delete(s.clients, id)
	return nil
}

type fakeProjectStore struct {
	nextID   int64
	projects map[int64]domain.Project
	clients  *fakeClientStore
}

func newFakeProjectStore(clients *fakeClientStore) *fakeProjectStore {
	return &fakeProjectStore{projects: make(map[int64]domain.Project), clients: clients}
}

func (s *fakeProjectStore) clientName(id int64) string {
	if c, ok := s.clients.clients[id]; ok {
		return c.ClientName
	}
	return ""
}

func (s *fakeProjectStore) List(_ context.Context, filter store.ProjectFilter) ([]store.ProjectWithClient, error) {
	var out []store.ProjectWithClient
	q := strings.ToLower(filter.SearchQuery)
	for _, p := range s.projects {
		if filter.ClientID != nil && p.ClientID != *filter.ClientID {
			continue
		}
		name := s.clientName(p.ClientID)
		if q != "" &&
			!strings.Contains(strings.ToLower(p.ProjectName), q) &&
			!strings.Contains(strings.ToLower(name), q) {
			continue
		}
		out = append(out, store.ProjectWithClient{Project: p, ClientName: name})
	}
	return out, nil
}

func (s *fakeProjectStore) GetByID(_ context.Context, id int64) (*store.ProjectWithClient, error) {
	p, ok := s.projects[id]
	if !ok {
		return nil, store.ErrProjectNotFound
	}
	return &store.ProjectWithClient{Project: p, ClientName: s.clientName(p.ClientID)}, nil
}

func (s *fakeProjectStore) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := s.projects[id]
	return ok, nil
}

func (s *fakeProjectStore) ListByClient(_ context.Context, clientID int64) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range s.projects {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakeProjectStore) Create(_ context.Context, project *domain.Project) error {
	s.nextID++
	project.ID = s.nextID
	s.projects[project.ID] = *project
	return nil
}

func (s *fakeProjectStore) Update(_ context.Context, project *domain.Project) error {
	existing, ok := s.projects[project.ID]
	if !ok {
		return store.ErrProjectNotFound
	}
	// Start date is never touched by updates.
	updated := *project
	updated.StartDate = existing.StartDate
	s.projects[project.ID] = updated
	return nil
}

func (s *fakeProjectStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.projects[id]; !ok {
		return store.ErrProjectNotFound
	}
	delete(s.projects, id)
	return nil
}

type fakeCommentStore struct {
	nextID   int64
	comments map[int64]domain.Comment
	clients  *fakeClientStore
	projects *fakeProjectStore
}

func newFakeCommentStore(clients *fakeClientStore, projects *fakeProjectStore) *fakeCommentStore {
	return &fakeCommentStore{
		comments: make(map[int64]domain.Comment),
		clients:  clients,
		projects: projects,
	}
}

func (s *fakeCommentStore) join(c domain.Comment) store.CommentWithNames {
	joined := store.CommentWithNames{Comment: c}
	if client, ok := s.clients.clients[c.ClientID]; ok {
		joined.ClientName = client.ClientName
	}
	if project, ok := s.projects.projects[c.ProjectID]; ok {
		joined.ProjectName = project.ProjectName
	}
	return joined
}

func (s *fakeCommentStore) List(_ context.Context, filter store.CommentFilter) ([]store.CommentWithNames, error) {
	var out []store.CommentWithNames
	q := strings.ToLower(filter.SearchQuery)
	for _, c := range s.comments {
		if filter.ProjectID != nil && c.ProjectID != *filter.ProjectID {
			continue
		}
		joined := s.join(c)
		if q != "" &&
			!strings.Contains(strings.ToLower(c.CommentText), q) &&
			!strings.Contains(strings.ToLower(joined.ClientName), q) &&
			!strings.Contains(strings.ToLower(joined.ProjectName), q) {
			continue
		}
		out = append(out, joined)
	}
	return out, nil
}

func (s *fakeCommentStore) GetByID(_ context.Context, id int64) (*store.CommentWithNames, error) {
	c, ok := s.comments[id]
	if !ok {
		return nil, store.ErrCommentNotFound
	}
	joined := s.join(c)
	return &joined, nil
}

func (s *fakeCommentStore) ListByProject(_ context.Context, projectID int64) ([]store.CommentWithNames, error) {
	var out []store.CommentWithNames
	for _, c := range s.comments {
		if c.ProjectID == projectID {
			out = append(out, s.join(c))
		}
	}
	return out, nil
}

func (s *fakeCommentStore) ListByClient(_ context.Context, clientID int64) ([]domain.Comment, error) {
	var out []domain.Comment
	for _, c := range s.comments {
		if c.ClientID == clientID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *fakeCommentStore) Create(_ context.Context, comment *domain.Comment) error {
	s.nextID++
	comment.ID = s.nextID
	s.comments[comment.ID] = *comment
	return nil
}

func (s *fakeCommentStore) Update(_ context.Context, comment *domain.Comment) error {
	existing, ok := s.comments[comment.ID]
	if !ok {
		return store.ErrCommentNotFound
	}
	updated := *comment
	updated.CreatedDate = existing.CreatedDate
	s.comments[comment.ID] = updated
	return nil
}

func (s *fakeCommentStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.comments[id]; !ok {
		return store.ErrCommentNotFound
	}
	delete(s.comments, id)
	return nil
}

type fakeTransactionStore struct {
	nextID       int64
	transactions map[int64]domain.Transaction
	clients      *fakeClientStore
	projects     *fakeProjectStore
}

func newFakeTransactionStore(clients *fakeClientStore, projects *fakeProjectStore) *fakeTransactionStore {
	return &fakeTransactionStore{
		transactions: make(map[int64]domain.Transaction),
		clients:      clients,
		projects:     projects,
	}
}

func (s *fakeTransactionStore) join(t domain.Transaction) store.TransactionWithNames {
	joined := store.TransactionWithNames{Transaction: t}
	if client, ok := s.clients.clients[t.ClientID]; ok {
		joined.ClientName = client.ClientName
	}
	if project, ok := s.projects.projects[t.ProjectID]; ok {
		joined.ProjectName = project.ProjectName
	}
	return joined
}

func (s *fakeTransactionStore) List(_ context.Context, filter store.TransactionFilter) ([]store.TransactionWithNames, error) {
	var out []store.TransactionWithNames
	q := strings.ToLower(filter.SearchQuery)
	for _, t := range s.transactions {
		if filter.ProjectID != nil && t.ProjectID != *filter.ProjectID {
			continue
		}
		joined := s.join(t)
		if q != "" &&
			!strings.Contains(strings.ToLower(joined.ClientName), q) &&
			!strings.Contains(strings.ToLower(joined.ProjectName), q) {
			continue
		}
		out = append(out, joined)
	}
	return out, nil
}

func (s *fakeTransactionStore) GetByID(_ context.Context, id int64) (*store.TransactionWithNames, error) {
	t, ok := s.transactions[id]
	if !ok {
		return nil, store.ErrTransactionNotFound
	}
	joined := s.join(t)
	return &joined, nil
}

func (s *fakeTransactionStore) ListByClient(_ context.Context, clientID int64) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for _, t := range s.transactions {
		if t.ClientID == clientID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeTransactionStore) Create(_ context.Context, transaction *domain.Transaction) error {
	s.nextID++
	transaction.ID = s.nextID
	s.transactions[transaction.ID] = *transaction
	return nil
}

func (s *fakeTransactionStore) Update(_ context.Context, transaction *domain.Transaction) error {
	if _, ok := s.transactions[transaction.ID]; !ok {
		return store.ErrTransactionNotFound
	}
	s.transactions[transaction.ID] = *transaction
	return nil
}

func (s *fakeTransactionStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.transactions[id]; !ok {
		return store.ErrTransactionNotFound
	}
	delete(s.transactions, id)
	return nil
}

// testEnv wires the full service graph over the fakes.
type testEnv struct {
	clientStore      *fakeClientStore
	projectStore     *fakeProjectStore
	commentStore     *fakeCommentStore
	transactionStore *fakeTransactionStore

	clients      ClientService
	projects     ProjectService
	comments     CommentService
	transactions TransactionService
}

func newTestEnv(t interface {
	Helper()
	Fatalf(format string, args ...any)
}) *testEnv {
	t.Helper()

	clientStore := newFakeClientStore()
	projectStore := newFakeProjectStore(clientStore)
	commentStore := newFakeCommentStore(clientStore, projectStore)
	transactionStore := newFakeTransactionStore(clientStore, projectStore)

	logger := discardLogger()

	clients, err := NewClientService(clientStore, projectStore, commentStore, transactionStore, logger)
	if err != nil {
		t.Fatalf("client service: %v", err)
	}
	projects, err := NewProjectService(projectStore, clients, logger)
	if err != nil {
		t.Fatalf("project service: %v", err)
	}
	comments, err := NewCommentService(commentStore, clients, projects, logger)
	if err != nil {
		t.Fatalf("comment service: %v", err)
	}
	transactions, err := NewTransactionService(transactionStore, clients, projects, logger)
	if err != nil {
		t.Fatalf("transaction service: %v", err)
	}

	return &testEnv{
		clientStore:      clientStore,
		projectStore:     projectStore,
		commentStore:     commentStore,
		transactionStore: transactionStore,
		clients:          clients,
		projects:         projects,
		comments:         comments,
		transactions:     transactions,
	}
}
