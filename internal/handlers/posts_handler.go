package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/hospitek/vitrine/internal/services/posts"
)

// PostsHandler handles blog post HTTP requests
type PostsHandler struct {
	service *posts.Service
	logger  arbor.ILogger
}

// NewPostsHandler creates a new posts handler with dependencies
func NewPostsHandler(service *posts.Service, logger arbor.ILogger) *PostsHandler {
	return &PostsHandler{
		service: service,
		logger:  logger,
	}
}

// ListHandler handles GET /api/posts requests
func (h *PostsHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	filters := posts.Filters{
		Category: r.URL.Query().Get("category"),
		Page:     QueryInt(r, "page"),
		Limit:    QueryInt(r, "limit"),
	}

	result, err := h.service.List(r.Context(), filters)
	if err != nil {
		h.logger.Error().Err(err).Msg("Post listing failed")
		WriteError(w, http.StatusInternalServerError, "Failed to list posts")
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// ItemHandler handles GET /api/posts/{slug} and GET /api/posts/facets
func (h *PostsHandler) ItemHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	suffix := PathSuffix(r, "/api/posts/")
	if suffix == "" {
		h.ListHandler(w, r)
		return
	}

	if suffix == "facets" {
		facets, err := h.service.Facets(r.Context())
		if err != nil {
			h.logger.Error().Err(err).Msg("Post facets failed")
			WriteError(w, http.StatusInternalServerError, "Failed to load post facets")
			return
		}
		WriteJSON(w, http.StatusOK, facets)
		return
	}

	view, err := h.service.GetBySlug(r.Context(), suffix)
	if err != nil {
		h.logger.Error().Err(err).Str("slug", suffix).Msg("Post retrieval failed")
		WriteError(w, http.StatusInternalServerError, "Failed to load post")
		return
	}
	if view == nil {
		WriteError(w, http.StatusNotFound, "Post not found")
		return
	}

	WriteJSON(w, http.StatusOK, view)
}
