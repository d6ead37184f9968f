package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/blackbird-crm/crm-api/internal/api/shared"
	"github.com/blackbird-crm/crm-api/internal/domain"
	"github.com/blackbird-crm/crm-api/internal/service"
)

// ClientHandler handles client resource endpoints.
type ClientHandler struct {
	clients service.ClientService
	logger  *slog.Logger
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clients service.ClientService, logger *slog.Logger) *ClientHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClientHandler{
		clients: clients,
		logger:  logger.With(slog.String("component", "client_handler")),
	}
}

// List handles GET /api/clients?searchQuery=.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.List(r.Context(), r.URL.Query().Get("searchQuery"))
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, clientListResponse(clients))
}

// Get handles GET /api/clients/{id}.
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid client ID.")
		return
	}

	client, err := h.clients.Get(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, client)
}

// GetDetails handles GET /api/clients/{id}/details.
func (h *ClientHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid client ID.")
		return
	}

	details, err := h.clients.GetDetails(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newClientDetailsResponse(details))
}

// Create handles POST /api/clients. Responds 201 with a Location header
// pointing at the new resource.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ClientRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	client := &domain.Client{
		ClientName:  req.ClientName,
		Status:      req.Status,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if err := h.clients.Create(r.Context(), client); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	h.logger.Info("client created", slog.Int64("client_id", client.ID))
	w.Header().Set("Location", fmt.Sprintf("/api/clients/%d", client.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, client)
}

// Update handles PUT /api/clients/{id}. The payload id must match the path
// id.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid client ID.")
		return
	}

	var req ClientRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.ID != id {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Client ID mismatch")
		return
	}

	client := &domain.Client{
		ID:          id,
		ClientName:  req.ClientName,
		Status:      req.Status,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if err := h.clients.Update(r.Context(), client); err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, client)
}

// Delete handles DELETE /api/clients/{id}.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid client ID.")
		return
	}

	if err := h.clients.Delete(r.Context(), id); err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
