package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hospitek/vitrine/internal/common"
	"github.com/hospitek/vitrine/internal/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 10, 0, 0, 0, time.UTC)
}

func TestFormatDateRange(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  string
	}{
		{"single day", day(2024, time.December, 1), day(2024, time.December, 1), "1 Dec 2024"},
		{"same month", day(2024, time.December, 1), day(2024, time.December, 3), "1-3 Dec 2024"},
		{"cross month", day(2024, time.November, 28), day(2024, time.December, 2), "28 Nov - 2 Dec 2024"},
		{"cross year", day(2023, time.December, 30), day(2024, time.January, 2), "30 Dec 2023 - 2 Jan 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDateRange(tt.start, tt.end))
		})
	}
}

func TestEventViewDefaults(t *testing.T) {
	tr := New(&common.MediaConfig{})

	view := tr.Event(&models.Event{
		ID:        "evt_1",
		Title:     "Open Day",
		Slug:      "open-day",
		StartDate: day(2026, time.March, 5),
		EndDate:   day(2026, time.March, 5),
	})

	assert.Equal(t, "N/A", view.EventType)
	assert.Equal(t, "N/A", view.Location)
	assert.Equal(t, "upcoming", view.EventStatus)
	assert.Equal(t, "5 Mar 2026", view.DateRange)
	assert.Equal(t, "/images/placeholder.svg", view.Image)
	assert.NotNil(t, view.Gallery)
	assert.Empty(t, view.Gallery)
}

func TestEventViewSEOFallbacks(t *testing.T) {
	tr := New(&common.MediaConfig{})

	view := tr.Event(&models.Event{
		ID:        "evt_2",
		Title:     "Hospital Expo",
		Slug:      "hospital-expo",
		Location:  "Mumbai",
		StartDate: day(2026, time.November, 12),
		EndDate:   day(2026, time.November, 14),
		Image:     models.ExpandedMedia(models.Media{URL: "/images/expo.jpg"}),
	})

	assert.Equal(t, "Hospital Expo", view.SEO.Title)
	assert.Equal(t, "Hospital Expo, 12-14 Nov 2026. Mumbai.", view.SEO.Description)
	assert.Equal(t, "/images/expo.jpg", view.SEO.Image)
}
