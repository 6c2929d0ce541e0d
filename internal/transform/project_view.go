package transform

import (
	"fmt"
	"strconv"

	"github.com/hospitek/vitrine/internal/models"
)

// TestimonialView is a flattened client quote
type TestimonialView struct {
	Quote        string `json:"quote"`
	Author       string `json:"author"`
	Designation  string `json:"designation"`
	Organization string `json:"organization"`
}

// ProjectView is the UI-ready project case study shape
type ProjectView struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Slug         string           `json:"slug"`
	Client       string           `json:"client"`
	Location     string           `json:"location"`
	HospitalType string           `json:"hospital_type"`
	Year         string           `json:"year"`
	Metrics      []models.Metric  `json:"metrics"`
	Image        string           `json:"image"`
	Gallery      []string         `json:"gallery"`
	Testimonial  *TestimonialView `json:"testimonial,omitempty"`
	SEO          SEOView          `json:"seo"`
}

// Project maps a raw project document into its view model
func (t *Transformer) Project(p *models.Project) ProjectView {
	metrics := p.Metrics
	if metrics == nil {
		metrics = []models.Metric{}
	}

	year := "N/A"
	if p.Year > 0 {
		year = strconv.Itoa(p.Year)
	}

	view := ProjectView{
		ID:           p.ID,
		Title:        p.Title,
		Slug:         p.Slug,
		Client:       labelOrFallback(p.Client, "N/A"),
		Location:     labelOrFallback(p.Location, "N/A"),
		HospitalType: labelOrFallback(p.HospitalType, "Other"),
		Year:         year,
		Metrics:      metrics,
		Image:        t.imageOrPlaceholder(p.Image),
		Gallery:      t.gallery(p.Gallery),
	}

	if p.Testimonial != nil && p.Testimonial.Quote != "" {
		view.Testimonial = &TestimonialView{
			Quote:        p.Testimonial.Quote,
			Author:       p.Testimonial.Author,
			Designation:  p.Testimonial.Designation,
			Organization: p.Testimonial.Organization,
		}
	}

	view.SEO = t.projectSEO(p, view)
	return view
}

func (t *Transformer) projectSEO(p *models.Project, view ProjectView) SEOView {
	seo := SEOView{
		Title:       p.SEO.Title,
		Description: p.SEO.Description,
		Image:       t.resolveMedia(p.SEO.Image),
	}
	if seo.Title == "" {
		seo.Title = p.Title
	}
	if seo.Description == "" {
		seo.Description = fmt.Sprintf("%s: a %s healthcare project delivered for %s in %s.",
			p.Title, view.HospitalType, view.Client, view.Location)
	}
	if seo.Image == "" {
		seo.Image = view.Image
	}
	return seo
}
