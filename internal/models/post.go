package models

import "time"

// Post represents a blog article. Content is markdown-first; legacy HTML
// bodies are converted to markdown at seed time.
type Post struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Slug       string        `json:"slug"`
	Categories []TermRef     `json:"categories,omitempty"`
	Excerpt    string        `json:"excerpt,omitempty"`
	Content    string        `json:"content"` // Markdown
	Image      MediaRef      `json:"image,omitempty"`
	Status     ContentStatus `json:"status"`
	SEO        SEO           `json:"seo,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
