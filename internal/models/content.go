package models

// ContentStatus is the publication status of a content entity. Only
// published documents are visible through the public retrieval paths.
type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusPublished ContentStatus = "published"
)

// SEO is the per-entity metadata block edited alongside the content
type SEO struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Image       MediaRef `json:"image,omitempty"`
}

// TermRef is a taxonomy relation (e.g. a blog category) that may arrive as
// a bare identifier or as an expanded term object.
type TermRef struct {
	Ref  string `json:"ref,omitempty"`
	Term *Term  `json:"term,omitempty"`
}

// Term is an expanded taxonomy term
type Term struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// IsExpanded reports whether the relation resolved to a full term
func (t TermRef) IsExpanded() bool {
	return t.Term != nil
}
