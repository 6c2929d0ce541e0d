package leads

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospitek/vitrine/internal/common"
	"github.com/hospitek/vitrine/internal/interfaces"
	"github.com/hospitek/vitrine/internal/models"
)

// mockLeadStorage implements interfaces.LeadStorage for testing
type mockLeadStorage struct {
	saved      []*models.Lead
	existsFunc func(ctx context.Context, email string, source models.LeadSource) (bool, error)
	saveErr    error
}

func (m *mockLeadStorage) Save(ctx context.Context, lead *models.Lead) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, lead)
	return nil
}

func (m *mockLeadStorage) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	return nil, nil
}

func (m *mockLeadStorage) ExistsByEmailAndSource(ctx context.Context, email string, source models.LeadSource) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, email, source)
	}
	return false, nil
}

func (m *mockLeadStorage) List(ctx context.Context, opts interfaces.LeadListOptions) ([]*models.Lead, int, error) {
	return nil, 0, nil
}

func (m *mockLeadStorage) Delete(ctx context.Context, id string) error { return nil }

// mockNotifier records notification sends
type mockNotifier struct {
	sent    []string
	sendErr error
}

func (m *mockNotifier) IsConfigured() bool { return true }

func (m *mockNotifier) SendEmail(ctx context.Context, to, subject, body string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, to)
	return nil
}

func newTestService(storage *mockLeadStorage, notifier Notifier) *Service {
	cfg := &common.FormsConfig{NotifyEmail: "sales@example.com"}
	return NewService(storage, notifier, cfg, common.GetLogger())
}

func validContact() *ContactRequest {
	return &ContactRequest{
		Name:    "Jordan Mehta",
		Email:   "jordan@example.com",
		Message: "We are planning two new operating theatres.",
	}
}

func TestSubmitContact(t *testing.T) {
	storage := &mockLeadStorage{}
	notifier := &mockNotifier{}
	svc := newTestService(storage, notifier)

	lead, err := svc.SubmitContact(context.Background(), validContact())
	require.NoError(t, err)
	require.NotNil(t, lead)
	assert.Equal(t, models.LeadSourceContact, lead.Source)
	assert.Equal(t, models.LeadStatusNew, lead.Status)
	assert.NotEmpty(t, lead.ID)
	require.Len(t, storage.saved, 1)
	assert.Equal(t, []string{"sales@example.com"}, notifier.sent)
}

func TestSubmitContactValidationFailure(t *testing.T) {
	storage := &mockLeadStorage{}
	svc := newTestService(storage, &mockNotifier{})

	_, err := svc.SubmitContact(context.Background(), &ContactRequest{
		Name:  "J",
		Email: "not-an-email",
	})
	require.Error(t, err)

	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)

	fields := make(map[string]string)
	for _, fe := range invalid.Fields {
		fields[fe.Field] = fe.Message
	}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "message")
	assert.Equal(t, "must be a valid email address", fields["email"])

	// Rejected submissions persist nothing
	assert.Empty(t, storage.saved)
}

func TestSubmitContactNotificationFailureIsNonFatal(t *testing.T) {
	storage := &mockLeadStorage{}
	notifier := &mockNotifier{sendErr: errors.New("smtp unreachable")}
	svc := newTestService(storage, notifier)

	lead, err := svc.SubmitContact(context.Background(), validContact())
	require.NoError(t, err)
	assert.NotNil(t, lead)
	assert.Len(t, storage.saved, 1)
}

func TestSubmitQuote(t *testing.T) {
	storage := &mockLeadStorage{}
	svc := newTestService(storage, &mockNotifier{})

	lead, err := svc.SubmitQuote(context.Background(), &QuoteRequest{
		Name:    "Asha Rao",
		Email:   "asha@example.com",
		Company: "Lakeside Healthcare",
		Message: "Requesting a quote for a modular theatre.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.LeadSourceQuote, lead.Source)
	assert.Equal(t, "Lakeside Healthcare", lead.Company)
}

func TestSubmitNewsletter(t *testing.T) {
	storage := &mockLeadStorage{}
	svc := newTestService(storage, &mockNotifier{})

	lead, err := svc.SubmitNewsletter(context.Background(), &NewsletterRequest{Email: "reader@example.com"})
	require.NoError(t, err)
	assert.Equal(t, models.LeadSourceNewsletter, lead.Source)
	assert.Len(t, storage.saved, 1)
}

func TestSubmitNewsletterDuplicate(t *testing.T) {
	storage := &mockLeadStorage{
		existsFunc: func(ctx context.Context, email string, source models.LeadSource) (bool, error) {
			assert.Equal(t, models.LeadSourceNewsletter, source)
			return true, nil
		},
	}
	svc := newTestService(storage, &mockNotifier{})

	_, err := svc.SubmitNewsletter(context.Background(), &NewsletterRequest{Email: "reader@example.com"})
	require.ErrorIs(t, err, ErrDuplicate)
	// Duplicate signups create no lead
	assert.Empty(t, storage.saved)
}
