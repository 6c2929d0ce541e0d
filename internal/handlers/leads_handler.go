package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/hospitek/vitrine/internal/services/leads"
)

// maxLeadBodyBytes caps form submission bodies
const maxLeadBodyBytes = 64 * 1024

// LeadsHandler handles public form submission HTTP requests
type LeadsHandler struct {
	service *leads.Service
	logger  arbor.ILogger
}

// NewLeadsHandler creates a new leads handler with dependencies
func NewLeadsHandler(service *leads.Service, logger arbor.ILogger) *LeadsHandler {
	return &LeadsHandler{
		service: service,
		logger:  logger,
	}
}

// ContactHandler handles POST /api/leads/contact requests
func (h *LeadsHandler) ContactHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req leads.ContactRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	lead, err := h.service.SubmitContact(r.Context(), &req)
	if err != nil {
		h.writeSubmitError(w, err, "contact")
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"lead_id": lead.ID,
	})
}

// QuoteHandler handles POST /api/leads/quote requests
func (h *LeadsHandler) QuoteHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req leads.QuoteRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	lead, err := h.service.SubmitQuote(r.Context(), &req)
	if err != nil {
		h.writeSubmitError(w, err, "quote")
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"lead_id": lead.ID,
	})
}

// NewsletterHandler handles POST /api/leads/newsletter requests
func (h *LeadsHandler) NewsletterHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req leads.NewsletterRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	lead, err := h.service.SubmitNewsletter(r.Context(), &req)
	if err != nil {
		h.writeSubmitError(w, err, "newsletter")
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"lead_id": lead.ID,
	})
}

// decodeBody parses the JSON request body into dst. Returns false after
// writing a 400 when the body is unreadable.
func (h *LeadsHandler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxLeadBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// writeSubmitError maps service errors onto HTTP responses: validation
// failures answer 400 with per-field details, duplicates answer 409.
func (h *LeadsHandler) writeSubmitError(w http.ResponseWriter, err error, form string) {
	var invalid *leads.ValidationError
	if errors.As(err, &invalid) {
		WriteJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "Validation failed",
			"errors":  invalid.Fields,
		})
		return
	}

	if errors.Is(err, leads.ErrDuplicate) {
		WriteError(w, http.StatusConflict, "Email is already subscribed")
		return
	}

	h.logger.Error().Err(err).Str("form", form).Msg("Lead submission failed")
	WriteError(w, http.StatusInternalServerError, "Failed to submit form")
}
