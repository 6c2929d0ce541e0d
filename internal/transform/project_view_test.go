package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hospitek/vitrine/internal/common"
	"github.com/hospitek/vitrine/internal/models"
)

func TestProjectViewDefaults(t *testing.T) {
	tr := New(&common.MediaConfig{})

	view := tr.Project(&models.Project{
		ID:    "prj_1",
		Title: "Clinic Fit-Out",
		Slug:  "clinic-fit-out",
	})

	assert.Equal(t, "N/A", view.Client)
	assert.Equal(t, "N/A", view.Location)
	assert.Equal(t, "Other", view.HospitalType)
	assert.Equal(t, "N/A", view.Year)
	assert.NotNil(t, view.Metrics)
	assert.Empty(t, view.Metrics)
	assert.Nil(t, view.Testimonial)
}

func TestProjectViewPopulated(t *testing.T) {
	tr := New(&common.MediaConfig{})

	view := tr.Project(&models.Project{
		ID:           "prj_2",
		Title:        "Hospital Modernization",
		Slug:         "hospital-modernization",
		Client:       "City General",
		Location:     "Pune",
		HospitalType: "Government",
		Year:         2024,
		Metrics: []models.Metric{
			{Label: "Theatres", Value: "6"},
		},
		Testimonial: &models.Testimonial{
			Quote:  "Handed over ahead of schedule.",
			Author: "Dr. Deshmukh",
		},
	})

	assert.Equal(t, "2024", view.Year)
	assert.Len(t, view.Metrics, 1)
	if assert.NotNil(t, view.Testimonial) {
		assert.Equal(t, "Handed over ahead of schedule.", view.Testimonial.Quote)
	}
}

func TestProjectViewEmptyQuoteDropsTestimonial(t *testing.T) {
	tr := New(&common.MediaConfig{})

	view := tr.Project(&models.Project{
		ID:          "prj_3",
		Title:       "Ward Refurbishment",
		Slug:        "ward-refurbishment",
		Testimonial: &models.Testimonial{Author: "Anonymous"},
	})

	assert.Nil(t, view.Testimonial)
}
