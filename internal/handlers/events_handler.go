package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/hospitek/vitrine/internal/services/events"
)

// EventsHandler handles event listing HTTP requests
type EventsHandler struct {
	service *events.Service
	logger  arbor.ILogger
}

// NewEventsHandler creates a new events handler with dependencies
func NewEventsHandler(service *events.Service, logger arbor.ILogger) *EventsHandler {
	return &EventsHandler{
		service: service,
		logger:  logger,
	}
}

// ListHandler handles GET /api/events requests
func (h *EventsHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	filters := events.Filters{
		EventType:   r.URL.Query().Get("event_type"),
		EventStatus: r.URL.Query().Get("status"),
		Featured:    QueryBoolPtr(r, "featured"),
		Page:        QueryInt(r, "page"),
		Limit:       QueryInt(r, "limit"),
	}

	result, err := h.service.List(r.Context(), filters)
	if err != nil {
		h.logger.Error().Err(err).Msg("Event listing failed")
		WriteError(w, http.StatusInternalServerError, "Failed to list events")
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// ItemHandler handles GET /api/events/{slug} and GET /api/events/facets
func (h *EventsHandler) ItemHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	suffix := PathSuffix(r, "/api/events/")
	if suffix == "" {
		h.ListHandler(w, r)
		return
	}

	if suffix == "facets" {
		facets, err := h.service.Facets(r.Context())
		if err != nil {
			h.logger.Error().Err(err).Msg("Event facets failed")
			WriteError(w, http.StatusInternalServerError, "Failed to load event facets")
			return
		}
		WriteJSON(w, http.StatusOK, facets)
		return
	}

	detail, err := h.service.GetBySlug(r.Context(), suffix)
	if err != nil {
		h.logger.Error().Err(err).Str("slug", suffix).Msg("Event retrieval failed")
		WriteError(w, http.StatusInternalServerError, "Failed to load event")
		return
	}
	if detail == nil {
		WriteError(w, http.StatusNotFound, "Event not found")
		return
	}

	WriteJSON(w, http.StatusOK, detail)
}
