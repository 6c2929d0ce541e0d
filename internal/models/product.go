package models

import "time"

// Spec is a single labelled value in a product's key specification table
type Spec struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Product represents a catalog entry: modular theatres, medical gas
// systems, pendants and the like. Slug is the external addressing key.
type Product struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Category    string        `json:"category"`
	Description RichText      `json:"description"`
	Specs       []Spec        `json:"specs,omitempty"`
	Features    []string      `json:"features,omitempty"`
	Image       MediaRef      `json:"image,omitempty"`
	Gallery     []MediaRef    `json:"gallery,omitempty"`
	Datasheet   MediaRef      `json:"datasheet,omitempty"`
	Featured    bool          `json:"featured"`
	Status      ContentStatus `json:"status"`
	SEO         SEO           `json:"seo,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
