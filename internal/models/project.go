package models

import "time"

// Metric is a single headline figure on a project case study
// (e.g. "Operating Theatres" / "12")
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Testimonial is an optional client quote attached to a project
type Testimonial struct {
	Quote        string `json:"quote"`
	Author       string `json:"author"`
	Designation  string `json:"designation,omitempty"`
	Organization string `json:"organization,omitempty"`
}

// Project represents a completed installation case study
type Project struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Slug         string        `json:"slug"`
	Client       string        `json:"client,omitempty"`
	Location     string        `json:"location,omitempty"`
	HospitalType string        `json:"hospital_type,omitempty"`
	Year         int           `json:"year,omitempty"`
	Metrics      []Metric      `json:"metrics,omitempty"`
	Image        MediaRef      `json:"image,omitempty"`
	Gallery      []MediaRef    `json:"gallery,omitempty"`
	Testimonial  *Testimonial  `json:"testimonial,omitempty"`
	Status       ContentStatus `json:"status"`
	SEO          SEO           `json:"seo,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
