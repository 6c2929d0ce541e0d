package models

import "time"

// LeadSource identifies which public form produced a lead
type LeadSource string

const (
	LeadSourceContact    LeadSource = "contact"
	LeadSourceQuote      LeadSource = "quote"
	LeadSourceSurvey     LeadSource = "survey"
	LeadSourceNewsletter LeadSource = "newsletter"
)

// LeadStatus tracks a lead through the sales pipeline
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusClosed    LeadStatus = "closed"
)

// Lead is a record of an inbound form submission. Leads are created only
// through the public POST endpoints; the retrieval layer never writes them.
type Lead struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name,omitempty"`
	Email     string                 `json:"email"`
	Phone     string                 `json:"phone,omitempty"`
	Company   string                 `json:"company,omitempty"`
	Subject   string                 `json:"subject,omitempty"`
	Message   string                 `json:"message,omitempty"`
	Source    LeadSource             `json:"source"`
	Status    LeadStatus             `json:"status"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Notes     string                 `json:"notes,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}
