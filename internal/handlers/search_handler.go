package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/hospitek/vitrine/internal/services/search"
)

// SearchHandler handles cross-content search HTTP requests
type SearchHandler struct {
	service *search.Service
	logger  arbor.ILogger
}

// NewSearchHandler creates a new search handler with dependencies
func NewSearchHandler(service *search.Service, logger arbor.ILogger) *SearchHandler {
	return &SearchHandler{
		service: service,
		logger:  logger,
	}
}

// SearchHandler handles GET /api/search?q=query&type=products requests
func (h *SearchHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	query := r.URL.Query().Get("q")
	typeFilter := r.URL.Query().Get("type")

	if !search.ValidType(typeFilter) {
		WriteError(w, http.StatusBadRequest, "Unknown content type: "+typeFilter)
		return
	}

	results, err := h.service.Search(r.Context(), query, typeFilter)
	if err != nil {
		h.logger.Error().Err(err).Str("query", query).Msg("Search failed")
		WriteError(w, http.StatusInternalServerError, "Search failed")
		return
	}

	WriteJSON(w, http.StatusOK, results)
}
