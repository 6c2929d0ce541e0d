package leads

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"

	"github.com/hospitek/vitrine/internal/common"
	"github.com/hospitek/vitrine/internal/interfaces"
	"github.com/hospitek/vitrine/internal/models"
)

// ErrDuplicate signals that a newsletter email was already recorded for
// that source. Surfaced distinctly so the handler can answer 409.
var ErrDuplicate = errors.New("email already subscribed")

// FieldError describes a single failed validation rule
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the structured list of field errors for a
// rejected submission. The submission persists nothing.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ContactRequest is the payload of the public contact form
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

// QuoteRequest is the payload of the request-a-quote form
type QuoteRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Company string `json:"company" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

// NewsletterRequest is the payload of the newsletter signup form
type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Notifier sends the non-critical notification email for new leads.
// mailer.Service satisfies this.
type Notifier interface {
	IsConfigured() bool
	SendEmail(ctx context.Context, to, subject, body string) error
}

// Service validates public form submissions and persists leads
type Service struct {
	storage     interfaces.LeadStorage
	validate    *validator.Validate
	notifier    Notifier
	notifyEmail string
	logger      arbor.ILogger
}

// NewService creates a new lead service. notifier may be nil when no
// outbound mail is configured.
func NewService(storage interfaces.LeadStorage, notifier Notifier, cfg *common.FormsConfig, logger arbor.ILogger) *Service {
	return &Service{
		storage:     storage,
		validate:    validator.New(),
		notifier:    notifier,
		notifyEmail: cfg.NotifyEmail,
		logger:      logger,
	}
}

// SubmitContact validates and persists a contact form submission
func (s *Service) SubmitContact(ctx context.Context, req *ContactRequest) (*models.Lead, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	lead := &models.Lead{
		ID:      common.NewLeadID(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Source:  models.LeadSourceContact,
		Status:  models.LeadStatusNew,
	}

	if err := s.storage.Save(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to save contact lead: %w", err)
	}

	s.notify(ctx, lead)
	return lead, nil
}

// SubmitQuote validates and persists a quote request submission
func (s *Service) SubmitQuote(ctx context.Context, req *QuoteRequest) (*models.Lead, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	lead := &models.Lead{
		ID:      common.NewLeadID(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Message: req.Message,
		Source:  models.LeadSourceQuote,
		Status:  models.LeadStatusNew,
	}

	if err := s.storage.Save(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to save quote lead: %w", err)
	}

	s.notify(ctx, lead)
	return lead, nil
}

// SubmitNewsletter validates and persists a newsletter signup. An email
// already recorded for source=newsletter returns ErrDuplicate and creates
// nothing.
func (s *Service) SubmitNewsletter(ctx context.Context, req *NewsletterRequest) (*models.Lead, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	exists, err := s.storage.ExistsByEmailAndSource(ctx, req.Email, models.LeadSourceNewsletter)
	if err != nil {
		return nil, fmt.Errorf("failed to check newsletter subscription: %w", err)
	}
	if exists {
		return nil, ErrDuplicate
	}

	lead := &models.Lead{
		ID:     common.NewLeadID(),
		Email:  req.Email,
		Source: models.LeadSourceNewsletter,
		Status: models.LeadStatusNew,
	}

	if err := s.storage.Save(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to save newsletter lead: %w", err)
	}

	return lead, nil
}

// validateRequest runs struct validation and converts validator output
// into the structured field error list
func (s *Service) validateRequest(req interface{}) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return fmt.Errorf("validation failed: %w", err)
	}

	fields := make([]FieldError, 0, len(invalid))
	for _, fe := range invalid {
		fields = append(fields, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return &ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// notify sends the internal notification email. Failures are logged and
// never fail the submission.
func (s *Service) notify(ctx context.Context, lead *models.Lead) {
	if s.notifier == nil || s.notifyEmail == "" || !s.notifier.IsConfigured() {
		return
	}

	subject := fmt.Sprintf("New %s lead: %s", lead.Source, lead.Name)
	body := fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nCompany: %s\nSubject: %s\n\n%s\n",
		lead.Name, lead.Email, lead.Phone, lead.Company, lead.Subject, lead.Message)

	if err := s.notifier.SendEmail(ctx, s.notifyEmail, subject, body); err != nil {
		s.logger.Warn().Err(err).Str("lead_id", lead.ID).Msg("Lead notification email failed")
	}
}
