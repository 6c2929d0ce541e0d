package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/hospitek/vitrine/internal/services/resources"
)

// ResourcesHandler handles resource library HTTP requests
type ResourcesHandler struct {
	service *resources.Service
	logger  arbor.ILogger
}

// NewResourcesHandler creates a new resources handler with dependencies
func NewResourcesHandler(service *resources.Service, logger arbor.ILogger) *ResourcesHandler {
	return &ResourcesHandler{
		service: service,
		logger:  logger,
	}
}

// ListHandler handles GET /api/resources requests
func (h *ResourcesHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	filters := resources.Filters{
		Category: r.URL.Query().Get("category"),
		Featured: QueryBoolPtr(r, "featured"),
		Page:     QueryInt(r, "page"),
		Limit:    QueryInt(r, "limit"),
	}

	result, err := h.service.List(r.Context(), filters)
	if err != nil {
		h.logger.Error().Err(err).Msg("Resource listing failed")
		WriteError(w, http.StatusInternalServerError, "Failed to list resources")
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// ItemHandler handles GET /api/resources/facets. Resources have no detail
// pages, so any other suffix is a 404.
func (h *ResourcesHandler) ItemHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	suffix := PathSuffix(r, "/api/resources/")
	if suffix == "" {
		h.ListHandler(w, r)
		return
	}

	if suffix == "facets" {
		facets, err := h.service.Facets(r.Context())
		if err != nil {
			h.logger.Error().Err(err).Msg("Resource facets failed")
			WriteError(w, http.StatusInternalServerError, "Failed to load resource facets")
			return
		}
		WriteJSON(w, http.StatusOK, facets)
		return
	}

	WriteError(w, http.StatusNotFound, "Resource not found")
}
