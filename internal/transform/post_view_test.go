package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hospitek/vitrine/internal/common"
	"github.com/hospitek/vitrine/internal/models"
)

func TestPostViewMarkdownRendering(t *testing.T) {
	tr := New(&common.MediaConfig{})

	view := tr.Post(&models.Post{
		ID:      "post_1",
		Title:   "Airflow Regimes",
		Slug:    "airflow-regimes",
		Content: "## Laminar airflow\n\nUnidirectional flow over the surgical field.",
	})

	assert.Contains(t, view.ContentHTML, "<h2")
	assert.Contains(t, view.ContentHTML, "Laminar airflow")
	assert.Contains(t, view.ContentHTML, "<p>Unidirectional flow over the surgical field.</p>")
}

func TestPostViewCategoryDefault(t *testing.T) {
	tr := New(&common.MediaConfig{})

	view := tr.Post(&models.Post{ID: "post_2", Title: "Untagged", Slug: "untagged"})
	assert.Equal(t, []string{"Uncategorized"}, view.Categories)

	view = tr.Post(&models.Post{
		ID:    "post_3",
		Title: "Tagged",
		Slug:  "tagged",
		Categories: []models.TermRef{
			{Term: &models.Term{ID: "eng", Name: "Engineering", Slug: "engineering"}},
			{Ref: "unexpanded-ref"},
		},
	})
	assert.Equal(t, []string{"Engineering"}, view.Categories)
}

func TestPostViewExcerptFallback(t *testing.T) {
	tr := New(&common.MediaConfig{})

	long := strings.Repeat("x", 300)
	view := tr.Post(&models.Post{ID: "post_4", Title: "Long", Slug: "long", Content: long})
	assert.Equal(t, strings.Repeat("x", 150)+"...", view.Excerpt)

	view = tr.Post(&models.Post{ID: "post_5", Title: "Short", Slug: "short", Content: long, Excerpt: "Hand-written summary."})
	assert.Equal(t, "Hand-written summary.", view.Excerpt)
}
