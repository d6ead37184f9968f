package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/blackbird-crm/crm-api/internal/api/shared"
	"github.com/blackbird-crm/crm-api/internal/service"
)

// CommentHandler handles comment resource endpoints.
type CommentHandler struct {
	comments service.CommentService
	logger   *slog.Logger
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments service.CommentService, logger *slog.Logger) *CommentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommentHandler{
		comments: comments,
		logger:   logger.With(slog.String("component", "comment_handler")),
	}
}

// List handles GET /api/comments?searchQuery=&selectedProjectId=. An
// unparsable selectedProjectId is ignored rather than rejected. The list
// projection omits the created date.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	searchQuery := r.URL.Query().Get("searchQuery")
	projectID := parseOptionalIDQuery(r, "selectedProjectId")

	comments, err := h.comments.List(r.Context(), searchQuery, projectID)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newCommentListItems(comments))
}

// Get handles GET /api/comments/{id}.
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid comment ID.")
		return
	}

	comment, err := h.comments.Get(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, comment)
}

// ListByProject handles GET /api/comments/project/{projectId}. Unlike the
// general listing this projection includes the created date.
func (h *CommentHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseIDParam(r, "projectId")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid project ID.")
		return
	}

	comments, err := h.comments.ListByProject(r.Context(), projectID)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, comments)
}

// Create handles POST /api/comments. The referenced project must belong to
// the referenced client.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	comment, err := h.comments.Create(r.Context(), service.CommentParams{
		ClientID:    req.ClientID,
		ProjectID:   req.ProjectID,
		CommentText: req.CommentText,
	})
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	h.logger.Info("comment created", slog.Int64("comment_id", comment.ID))
	w.Header().Set("Location", fmt.Sprintf("/api/comments/%d", comment.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, comment)
}

// Update handles PUT /api/comments/{id}. A new client or project reference
// that does not resolve keeps the previous link.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid comment ID.")
		return
	}

	var req CommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	comment, err := h.comments.Update(r.Context(), id, service.CommentParams{
		ClientID:    req.ClientID,
		ProjectID:   req.ProjectID,
		CommentText: req.CommentText,
	})
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, comment)
}

// Delete handles DELETE /api/comments/{id}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid comment ID.")
		return
	}

	if err := h.comments.Delete(r.Context(), id); err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
