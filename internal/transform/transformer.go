package transform

import (
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/hospitek/vitrine/internal/common"
	"github.com/hospitek/vitrine/internal/models"
)

// ShortDescriptionLimit is the character cutoff for list-card descriptions
const ShortDescriptionLimit = 150

// Transformer maps raw content documents into flat, UI-ready view models.
// Every transform is pure and total: absent source fields map to explicit
// placeholder defaults, never to null.
type Transformer struct {
	baseURL     string
	placeholder string
	markdown    goldmark.Markdown
}

// New creates a transformer using the media resolution configuration
func New(cfg *common.MediaConfig) *Transformer {
	placeholder := cfg.Placeholder
	if placeholder == "" {
		placeholder = "/images/placeholder.svg"
	}

	return &Transformer{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		placeholder: placeholder,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.Table, extension.Strikethrough, extension.Linkify),
		),
	}
}

// resolveURL turns a stored media path into a servable URL. Absolute URLs
// pass through; root-relative and bare paths get the configured base.
func (t *Transformer) resolveURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return t.baseURL + path
}

// resolveMedia extracts a URL from a relation field. Unexpanded references
// and absent fields do not resolve.
func (t *Transformer) resolveMedia(ref models.MediaRef) string {
	if ref.Media == nil || ref.Media.URL == "" {
		return ""
	}
	return t.resolveURL(ref.Media.URL)
}

// imageOrPlaceholder resolves a relation field, substituting the fixed
// placeholder path when the image cannot be resolved.
func (t *Transformer) imageOrPlaceholder(ref models.MediaRef) string {
	if url := t.resolveMedia(ref); url != "" {
		return url
	}
	return t.placeholder
}

// gallery maps a gallery list, dropping entries whose image did not
// resolve and preserving order.
func (t *Transformer) gallery(refs []models.MediaRef) []string {
	urls := []string{}
	for _, ref := range refs {
		if url := t.resolveMedia(ref); url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}

// truncate cuts s to limit characters, appending an ellipsis only when the
// input was actually truncated.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}

// labelOrFallback substitutes a fixed fallback label for absent
// categorical values so string-typed view fields stay total.
func labelOrFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
