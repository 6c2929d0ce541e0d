package models

import "time"

// Resource represents a downloadable asset: brochures, certifications,
// compliance documents. The file reference is required; resources without
// a resolvable file are not listed.
type Resource struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Category    string        `json:"category"`
	File        MediaRef      `json:"file"`
	Thumbnail   MediaRef      `json:"thumbnail,omitempty"`
	Featured    bool          `json:"featured"`
	Status      ContentStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
