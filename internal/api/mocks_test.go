package api

import (
	"context"
	"io"
	"log/slog"

	"github.com/blackbird-crm/crm-api/internal/domain"
	"github.com/blackbird-crm/crm-api/internal/service"
	"github.com/blackbird-crm/crm-api/internal/service/auth"
	"github.com/blackbird-crm/crm-api/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Function-field stubs so each test can script exactly the calls it needs.

type mockUserStore struct {
	createFn     func(ctx context.Context, user *domain.User) error
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) error {
	return m.createFn(ctx, user)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.getByEmailFn(ctx, email)
}

type mockJWTService struct {
	generateFn func(ctx context.Context, email string) (string, error)
	validateFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

func (m *mockJWTService) GenerateToken(ctx context.Context, email string) (string, error) {
	return m.generateFn(ctx, email)
}

func (m *mockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	return m.validateFn(ctx, tokenString)
}

type mockPasswordVerifier struct {
	compareFn func(hashedPassword, password string) error
}

func (m *mockPasswordVerifier) Compare(hashedPassword, password string) error {
	return m.compareFn(hashedPassword, password)
}

type mockClientService struct {
	listFn       func(ctx context.Context, searchQuery string) ([]domain.Client, error)
	getFn        func(ctx context.Context, id int64) (*domain.Client, error)
	getDetailsFn func(ctx context.Context, id int64) (*service.ClientDetails, error)
	existsFn     func(ctx context.Context, id int64) (bool, error)
	createFn     func(ctx context.Context, client *domain.Client) error
	updateFn     func(ctx context.Context, client *domain.Client) error
	deleteFn     func(ctx context.Context, id int64) error
}

func (m *mockClientService) List(ctx context.Context, searchQuery string) ([]domain.Client, error) {
	return m.listFn(ctx, searchQuery)
}

func (m *mockClientService) Get(ctx context.Context, id int64) (*domain.Client, error) {
	return m.getFn(ctx, id)
}

func (m *mockClientService) GetDetails(ctx context.Context, id int64) (*service.ClientDetails, error) {
	return m.getDetailsFn(ctx, id)
}

func (m *mockClientService) Exists(ctx context.Context, id int64) (bool, error) {
	return m.existsFn(ctx, id)
}

func (m *mockClientService) Create(ctx context.Context, client *domain.Client) error {
	return m.createFn(ctx, client)
}

func (m *mockClientService) Update(ctx context.Context, client *domain.Client) error {
	return m.updateFn(ctx, client)
}

func (m *mockClientService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockCommentService struct {
	listFn          func(ctx context.Context, searchQuery string, projectID *int64) ([]store.CommentWithNames, error)
	getFn           func(ctx context.Context, id int64) (*store.CommentWithNames, error)
	listByProjectFn func(ctx context.Context, projectID int64) ([]store.CommentWithNames, error)
	createFn        func(ctx context.Context, params service.CommentParams) (*store.CommentWithNames, error)
	updateFn        func(ctx context.Context, id int64, params service.CommentParams) (*store.CommentWithNames, error)
	deleteFn        func(ctx context.Context, id int64) error
}

func (m *mockCommentService) List(ctx context.Context, searchQuery string, projectID *int64) ([]store.CommentWithNames, error) {
	return m.listFn(ctx, searchQuery, projectID)
}

func (m *mockCommentService) Get(ctx context.Context, id int64) (*store.CommentWithNames, error) {
	return m.getFn(ctx, id)
}

func (m *mockCommentService) ListByProject(ctx context.Context, projectID int64) ([]store.CommentWithNames, error) {
	return m.listByProjectFn(ctx, projectID)
}

func (m *mockCommentService) Create(ctx context.Context, params service.CommentParams) (*store.CommentWithNames, error) {
	return m.createFn(ctx, params)
}

func (m *mockCommentService) Update(ctx context.Context, id int64, params service.CommentParams) (*store.CommentWithNames, error) {
	return m.updateFn(ctx, id, params)
}

func (m *mockCommentService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockTransactionService struct {
	listFn   func(ctx context.Context, projectID *int64, searchQuery string) ([]store.TransactionWithNames, error)
	getFn    func(ctx context.Context, id int64) (*store.TransactionWithNames, error)
	createFn func(ctx context.Context, params service.TransactionParams) (*store.TransactionWithNames, error)
	updateFn func(ctx context.Context, id int64, params service.TransactionParams) (*store.TransactionWithNames, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockTransactionService) List(ctx context.Context, projectID *int64, searchQuery string) ([]store.TransactionWithNames, error) {
	return m.listFn(ctx, projectID, searchQuery)
}

func (m *mockTransactionService) Get(ctx context.Context, id int64) (*store.TransactionWithNames, error) {
	return m.getFn(ctx, id)
}

func (m *mockTransactionService) Create(ctx context.Context, params service.TransactionParams) (*store.TransactionWithNames, error) {
	return m.createFn(ctx, params)
}

func (m *mockTransactionService) Update(ctx context.Context, id int64, params service.TransactionParams) (*store.TransactionWithNames, error) {
	return m.updateFn(ctx, id, params)
}

func (m *mockTransactionService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}
