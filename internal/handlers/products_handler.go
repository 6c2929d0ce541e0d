package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/hospitek/vitrine/internal/services/products"
)

// ProductsHandler handles product catalog HTTP requests
type ProductsHandler struct {
	service *products.Service
	logger  arbor.ILogger
}

// NewProductsHandler creates a new products handler with dependencies
func NewProductsHandler(service *products.Service, logger arbor.ILogger) *ProductsHandler {
	return &ProductsHandler{
		service: service,
		logger:  logger,
	}
}

// ListHandler handles GET /api/products requests
func (h *ProductsHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	filters := products.Filters{
		Category: r.URL.Query().Get("category"),
		Featured: QueryBoolPtr(r, "featured"),
		Page:     QueryInt(r, "page"),
		Limit:    QueryInt(r, "limit"),
	}

	result, err := h.service.List(r.Context(), filters)
	if err != nil {
		h.logger.Error().Err(err).Msg("Product listing failed")
		WriteError(w, http.StatusInternalServerError, "Failed to list products")
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// ItemHandler handles GET /api/products/{slug} and GET /api/products/facets
func (h *ProductsHandler) ItemHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	suffix := PathSuffix(r, "/api/products/")
	if suffix == "" {
		h.ListHandler(w, r)
		return
	}

	if suffix == "facets" {
		facets, err := h.service.Facets(r.Context())
		if err != nil {
			h.logger.Error().Err(err).Msg("Product facets failed")
			WriteError(w, http.StatusInternalServerError, "Failed to load product facets")
			return
		}
		WriteJSON(w, http.StatusOK, facets)
		return
	}

	detail, err := h.service.GetBySlug(r.Context(), suffix)
	if err != nil {
		h.logger.Error().Err(err).Str("slug", suffix).Msg("Product retrieval failed")
		WriteError(w, http.StatusInternalServerError, "Failed to load product")
		return
	}
	if detail == nil {
		WriteError(w, http.StatusNotFound, "Product not found")
		return
	}

	WriteJSON(w, http.StatusOK, detail)
}
