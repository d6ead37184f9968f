package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackbird-crm/crm-api/internal/domain"
	"github.com/blackbird-crm/crm-api/internal/service"
	"github.com/blackbird-crm/crm-api/internal/store"
)

func newTransactionRouter(transactions *mockTransactionService) http.Handler {
	handler := NewTransactionHandler(transactions, discardLogger())
	r := chi.NewRouter()
	r.Route("/api/transactions", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Post("/", handler.Create)
		r.Get("/{id}", handler.Get)
		r.Put("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
	return r
}

func TestTransactionCreate(t *testing.T) {
	transactions := &mockTransactionService{
		createFn: func(_ context.Context, params service.TransactionParams) (*store.TransactionWithNames, error) {
			return &store.TransactionWithNames{
				Transaction: domain.Transaction{
					ID:        3,
					ClientID:  params.ClientID,
					ProjectID: params.ProjectID,
					Amount:    params.Amount,
					Currency:  params.Currency,
				},
				ClientName:  "Acme",
				ProjectName: "Site",
			}, nil
		},
	}
	router := newTransactionRouter(transactions)

	body, _ := json.Marshal(TransactionRequest{
		ClientID:  1,
		ProjectID: 2,
		Amount:    decimal.NewFromInt(100),
		Currency:  "USD",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/transactions/", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/transactions/3", rec.Header().Get("Location"))
	assert.Contains(t, rec.Body.String(), `"client_name":"Acme"`)
}

func TestTransactionCreateMissingReference(t *testing.T) {
	transactions := &mockTransactionService{
		createFn: func(_ context.Context, _ service.TransactionParams) (*store.TransactionWithNames, error) {
			return nil, &service.MissingReferenceError{Entity: "Client", ID: 41}
		},
	}
	router := newTransactionRouter(transactions)

	body, _ := json.Marshal(TransactionRequest{ClientID: 41, ProjectID: 2})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/transactions/", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Client with ID 41 not found")
}

// Unexpected failures must not leak their detail to the caller.
func TestTransactionCreateOpaqueError(t *testing.T) {
	transactions := &mockTransactionService{
		createFn: func(_ context.Context, _ service.TransactionParams) (*store.TransactionWithNames, error) {
			return nil, errors.New("pq: connection reset by peer")
		},
	}
	router := newTransactionRouter(transactions)

	body, _ := json.Marshal(TransactionRequest{ClientID: 1, ProjectID: 2})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/transactions/", bytes.NewReader(body)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to create transaction")
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestTransactionListPassesFilters(t *testing.T) {
	transactions := &mockTransactionService{
		listFn: func(_ context.Context, projectID *int64, searchQuery string) ([]store.TransactionWithNames, error) {
			require.NotNil(t, projectID)
			assert.Equal(t, int64(5), *projectID)
			assert.Equal(t, "acme", searchQuery)
			return []store.TransactionWithNames{}, nil
		},
	}
	router := newTransactionRouter(transactions)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/transactions/?projectId=5&searchQuery=acme", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTransactionUpdateInvalidID(t *testing.T) {
	router := newTransactionRouter(&mockTransactionService{})

	body, _ := json.Marshal(TransactionRequest{ClientID: 1, ProjectID: 2})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/transactions/0", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid transaction ID.")
}

func TestTransactionGetNotFound(t *testing.T) {
	transactions := &mockTransactionService{
		getFn: func(_ context.Context, id int64) (*store.TransactionWithNames, error) {
			return nil, store.ErrTransactionNotFound
		},
	}
	router := newTransactionRouter(transactions)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/transactions/42", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Transaction not found")
}
