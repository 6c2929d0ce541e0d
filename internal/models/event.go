package models

import "time"

// EventStatus is the lifecycle state of an event listing
type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventPast      EventStatus = "past"
	EventCancelled EventStatus = "cancelled"
)

// Event represents a trade show, conference or webinar listing
type Event struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Slug             string        `json:"slug"`
	EventType        string        `json:"event_type,omitempty"`
	StartDate        time.Time     `json:"start_date"`
	EndDate          time.Time     `json:"end_date"`
	Location         string        `json:"location,omitempty"`
	Venue            string        `json:"venue,omitempty"`
	VenueAddress     string        `json:"venue_address,omitempty"`
	Description      RichText      `json:"description,omitempty"`
	Image            MediaRef      `json:"image,omitempty"`
	Gallery          []MediaRef    `json:"gallery,omitempty"`
	EventStatus      EventStatus   `json:"event_status"`
	Featured         bool          `json:"featured"`
	RegistrationLink string        `json:"registration_link,omitempty"`
	Status           ContentStatus `json:"status"`
	SEO              SEO           `json:"seo,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
