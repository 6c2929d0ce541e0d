package transform

import (
	"github.com/hospitek/vitrine/internal/models"
)

// ResourceView is the UI-ready downloadable asset shape
type ResourceView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	FileURL     string `json:"file_url"`
	Thumbnail   string `json:"thumbnail"`
	Featured    bool   `json:"featured"`
}

// Resource maps a raw resource document into its view model
func (t *Transformer) Resource(r *models.Resource) ResourceView {
	return ResourceView{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    labelOrFallback(r.Category, "Uncategorized"),
		FileURL:     t.resolveMedia(r.File),
		Thumbnail:   t.imageOrPlaceholder(r.Thumbnail),
		Featured:    r.Featured,
	}
}
