package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/blackbird-crm/crm-api/internal/api/shared"
	"github.com/blackbird-crm/crm-api/internal/service"
)

// ProjectHandler handles project resource endpoints.
type ProjectHandler struct {
	projects service.ProjectService
	logger   *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projects service.ProjectService, logger *slog.Logger) *ProjectHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectHandler{
		projects: projects,
		logger:   logger.With(slog.String("component", "project_handler")),
	}
}

// List handles GET /api/projects?clientId=&searchQuery=. The start date is
// projected to a calendar day.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	clientID := parseOptionalIDQuery(r, "clientId")
	searchQuery := r.URL.Query().Get("searchQuery")

	projects, err := h.projects.List(r.Context(), clientID, searchQuery)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newProjectListItems(projects))
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid project ID.")
		return
	}

	project, err := h.projects.Get(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, project)
}

// Create handles POST /api/projects. The start date is server-assigned; a
// non-existent client id is a 400.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	project, err := h.projects.Create(r.Context(), service.ProjectParams{
		ClientID:    req.ClientID,
		ProjectName: req.ProjectName,
		Status:      req.Status,
	})
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	h.logger.Info("project created", slog.Int64("project_id", project.ID))
	w.Header().Set("Location", fmt.Sprintf("/api/projects/%d", project.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, project)
}

// Update handles PUT /api/projects/{id}. The start date never changes on
// update.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid project ID.")
		return
	}

	var req ProjectRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	project, err := h.projects.Update(r.Context(), id, service.ProjectParams{
		ClientID:    req.ClientID,
		ProjectName: req.ProjectName,
		Status:      req.Status,
	})
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, project)
}

// Delete handles DELETE /api/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid project ID.")
		return
	}

	if err := h.projects.Delete(r.Context(), id); err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
