package transform

import (
	"fmt"
	"time"

	"github.com/hospitek/vitrine/internal/models"
)

// EventView is the UI-ready event listing shape
type EventView struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Slug             string  `json:"slug"`
	EventType        string  `json:"event_type"`
	DateRange        string  `json:"date_range"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	Location         string  `json:"location"`
	Venue            string  `json:"venue"`
	VenueAddress     string  `json:"venue_address"`
	Description      string  `json:"description"`
	Image            string  `json:"image"`
	Gallery          []string `json:"gallery"`
	EventStatus      string  `json:"event_status"`
	Featured         bool    `json:"featured"`
	RegistrationLink string  `json:"registration_link"`
	SEO              SEOView `json:"seo"`
}

// FormatDateRange renders an event's start/end dates as a compact display
// string. Four mutually exclusive branches, driven by comparing date
// components:
//
//	identical day          -> "1 Dec 2024"
//	same month and year    -> "1-3 Dec 2024"
//	same year              -> "28 Nov - 2 Dec 2024"
//	different years        -> "30 Dec 2023 - 2 Jan 2024"
func FormatDateRange(start, end time.Time) string {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()

	switch {
	case sy == ey && sm == em && sd == ed:
		return fmt.Sprintf("%d %s %d", sd, sm.String()[:3], sy)
	case sy == ey && sm == em:
		return fmt.Sprintf("%d-%d %s %d", sd, ed, sm.String()[:3], sy)
	case sy == ey:
		return fmt.Sprintf("%d %s - %d %s %d", sd, sm.String()[:3], ed, em.String()[:3], sy)
	default:
		return fmt.Sprintf("%d %s %d - %d %s %d", sd, sm.String()[:3], sy, ed, em.String()[:3], ey)
	}
}

// Event maps a raw event document into its view model
func (t *Transformer) Event(e *models.Event) EventView {
	eventStatus := string(e.EventStatus)
	if eventStatus == "" {
		eventStatus = string(models.EventUpcoming)
	}

	view := EventView{
		ID:               e.ID,
		Title:            e.Title,
		Slug:             e.Slug,
		EventType:        labelOrFallback(e.EventType, "N/A"),
		DateRange:        FormatDateRange(e.StartDate, e.EndDate),
		StartDate:        e.StartDate.Format(time.RFC3339),
		EndDate:          e.EndDate.Format(time.RFC3339),
		Location:         labelOrFallback(e.Location, "N/A"),
		Venue:            e.Venue,
		VenueAddress:     e.VenueAddress,
		Description:      e.Description.PlainText(),
		Image:            t.imageOrPlaceholder(e.Image),
		Gallery:          t.gallery(e.Gallery),
		EventStatus:      eventStatus,
		Featured:         e.Featured,
		RegistrationLink: e.RegistrationLink,
	}

	view.SEO = t.eventSEO(e, view)
	return view
}

func (t *Transformer) eventSEO(e *models.Event, view EventView) SEOView {
	seo := SEOView{
		Title:       e.SEO.Title,
		Description: e.SEO.Description,
		Image:       t.resolveMedia(e.SEO.Image),
	}
	if seo.Title == "" {
		seo.Title = e.Title
	}
	if seo.Description == "" {
		seo.Description = fmt.Sprintf("%s, %s. %s.", e.Title, view.DateRange, view.Location)
	}
	if seo.Image == "" {
		seo.Image = view.Image
	}
	return seo
}
