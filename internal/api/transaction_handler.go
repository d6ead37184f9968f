package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/blackbird-crm/crm-api/internal/api/shared"
	"github.com/blackbird-crm/crm-api/internal/service"
)

// TransactionHandler handles transaction resource endpoints.
type TransactionHandler struct {
	transactions service.TransactionService
	logger       *slog.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactions service.TransactionService, logger *slog.Logger) *TransactionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionHandler{
		transactions: transactions,
		logger:       logger.With(slog.String("component", "transaction_handler")),
	}
}

// List handles GET /api/transactions?projectId=&searchQuery=.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID := parseOptionalIDQuery(r, "projectId")
	searchQuery := r.URL.Query().Get("searchQuery")

	transactions, err := h.transactions.List(r.Context(), projectID, searchQuery)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, transactions)
}

// Get handles GET /api/transactions/{id}.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid transaction ID.")
		return
	}

	transaction, err := h.transactions.Get(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, transaction)
}

// Create handles POST /api/transactions. Dangling references are 400s that
// name the missing entity; any other failure is an opaque 500 with the
// detail kept in the server log.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req TransactionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	transaction, err := h.transactions.Create(r.Context(), service.TransactionParams{
		ClientID:          req.ClientID,
		ProjectID:         req.ProjectID,
		Amount:            req.Amount,
		DueAmount:         req.DueAmount,
		DueDate:           req.DueDate,
		TransactionStatus: req.TransactionStatus,
		Currency:          req.Currency,
	})
	if err != nil {
		var missingRef *service.MissingReferenceError
		if errors.As(err, &missingRef) {
			shared.RespondWithError(w, r, http.StatusBadRequest, missingRef.Error())
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create transaction", err)
		return
	}

	h.logger.Info("transaction created", slog.Int64("transaction_id", transaction.ID))
	w.Header().Set("Location", fmt.Sprintf("/api/transactions/%d", transaction.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, transaction)
}

// Update handles PUT /api/transactions/{id}. The caller-supplied due date
// is honored here, unlike at creation.
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid transaction ID.")
		return
	}

	var req TransactionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	transaction, err := h.transactions.Update(r.Context(), id, service.TransactionParams{
		ClientID:          req.ClientID,
		ProjectID:         req.ProjectID,
		Amount:            req.Amount,
		DueAmount:         req.DueAmount,
		DueDate:           req.DueDate,
		TransactionStatus: req.TransactionStatus,
		Currency:          req.Currency,
	})
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, transaction)
}

// Delete handles DELETE /api/transactions/{id}.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid transaction ID.")
		return
	}

	if err := h.transactions.Delete(r.Context(), id); err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
