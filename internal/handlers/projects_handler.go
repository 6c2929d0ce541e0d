package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/hospitek/vitrine/internal/services/projects"
)

// ProjectsHandler handles case study HTTP requests
type ProjectsHandler struct {
	service *projects.Service
	logger  arbor.ILogger
}

// NewProjectsHandler creates a new projects handler with dependencies
func NewProjectsHandler(service *projects.Service, logger arbor.ILogger) *ProjectsHandler {
	return &ProjectsHandler{
		service: service,
		logger:  logger,
	}
}

// ListHandler handles GET /api/projects requests
func (h *ProjectsHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	filters := projects.Filters{
		HospitalType: r.URL.Query().Get("hospital_type"),
		Year:         QueryInt(r, "year"),
		Featured:     QueryBoolPtr(r, "featured"),
		Page:         QueryInt(r, "page"),
		Limit:        QueryInt(r, "limit"),
	}

	result, err := h.service.List(r.Context(), filters)
	if err != nil {
		h.logger.Error().Err(err).Msg("Project listing failed")
		WriteError(w, http.StatusInternalServerError, "Failed to list projects")
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// ItemHandler handles GET /api/projects/{slug} and GET /api/projects/facets
func (h *ProjectsHandler) ItemHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	suffix := PathSuffix(r, "/api/projects/")
	if suffix == "" {
		h.ListHandler(w, r)
		return
	}

	if suffix == "facets" {
		facets, err := h.service.Facets(r.Context())
		if err != nil {
			h.logger.Error().Err(err).Msg("Project facets failed")
			WriteError(w, http.StatusInternalServerError, "Failed to load project facets")
			return
		}
		WriteJSON(w, http.StatusOK, facets)
		return
	}

	detail, err := h.service.GetBySlug(r.Context(), suffix)
	if err != nil {
		h.logger.Error().Err(err).Str("slug", suffix).Msg("Project retrieval failed")
		WriteError(w, http.StatusInternalServerError, "Failed to load project")
		return
	}
	if detail == nil {
		WriteError(w, http.StatusNotFound, "Project not found")
		return
	}

	WriteJSON(w, http.StatusOK, detail)
}
