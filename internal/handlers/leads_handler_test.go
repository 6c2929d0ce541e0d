package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospitek/vitrine/internal/common"
	"github.com/hospitek/vitrine/internal/interfaces"
	"github.com/hospitek/vitrine/internal/models"
	"github.com/hospitek/vitrine/internal/services/leads"
)

// stubLeadStorage implements interfaces.LeadStorage for handler tests
type stubLeadStorage struct {
	duplicate bool
	saved     []*models.Lead
}

func (s *stubLeadStorage) Save(ctx context.Context, lead *models.Lead) error {
	s.saved = append(s.saved, lead)
	return nil
}

func (s *stubLeadStorage) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	return nil, nil
}

func (s *stubLeadStorage) ExistsByEmailAndSource(ctx context.Context, email string, source models.LeadSource) (bool, error) {
	return s.duplicate, nil
}

func (s *stubLeadStorage) List(ctx context.Context, opts interfaces.LeadListOptions) ([]*models.Lead, int, error) {
	return nil, 0, nil
}

func (s *stubLeadStorage) Delete(ctx context.Context, id string) error { return nil }

func newLeadsTestHandler(storage *stubLeadStorage) *LeadsHandler {
	service := leads.NewService(storage, nil, &common.FormsConfig{}, common.GetLogger())
	return NewLeadsHandler(service, common.GetLogger())
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestContactHandlerSuccess(t *testing.T) {
	storage := &stubLeadStorage{}
	handler := newLeadsTestHandler(storage)

	rec := postJSON(t, handler.ContactHandler, "/api/leads/contact", `{
		"name": "Jordan Mehta",
		"email": "jordan@example.com",
		"message": "We are planning two new operating theatres."
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["lead_id"])
	assert.Len(t, storage.saved, 1)
}

func TestContactHandlerValidationErrors(t *testing.T) {
	storage := &stubLeadStorage{}
	handler := newLeadsTestHandler(storage)

	rec := postJSON(t, handler.ContactHandler, "/api/leads/contact", `{"name":"J","email":"bad"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.NotEmpty(t, body.Errors)

	fields := make(map[string]bool)
	for _, fe := range body.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["email"])
	assert.True(t, fields["message"])
	assert.Empty(t, storage.saved)
}

func TestContactHandlerMalformedBody(t *testing.T) {
	handler := newLeadsTestHandler(&stubLeadStorage{})

	rec := postJSON(t, handler.ContactHandler, "/api/leads/contact", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactHandlerMethodNotAllowed(t *testing.T) {
	handler := newLeadsTestHandler(&stubLeadStorage{})

	req := httptest.NewRequest(http.MethodGet, "/api/leads/contact", nil)
	rec := httptest.NewRecorder()
	handler.ContactHandler(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestNewsletterHandlerDuplicate(t *testing.T) {
	storage := &stubLeadStorage{duplicate: true}
	handler := newLeadsTestHandler(storage)

	rec := postJSON(t, handler.NewsletterHandler, "/api/leads/newsletter", `{"email":"reader@example.com"}`)

	require.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Empty(t, storage.saved)
}

func TestNewsletterHandlerSuccess(t *testing.T) {
	storage := &stubLeadStorage{}
	handler := newLeadsTestHandler(storage)

	rec := postJSON(t, handler.NewsletterHandler, "/api/leads/newsletter", `{"email":"reader@example.com"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, storage.saved, 1)
}
