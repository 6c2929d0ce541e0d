package transform

import (
	"bytes"
	"fmt"
	"time"

	"github.com/hospitek/vitrine/internal/models"
)

// PostView is the UI-ready blog article shape. Content renders from
// markdown to HTML at transform time.
type PostView struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Categories  []string `json:"categories"`
	Excerpt     string   `json:"excerpt"`
	ContentHTML string   `json:"content_html"`
	Image       string   `json:"image"`
	PublishedAt string   `json:"published_at"`
	SEO         SEOView  `json:"seo"`
}

// Post maps a raw post document into its view model
func (t *Transformer) Post(p *models.Post) PostView {
	categories := []string{}
	for _, ref := range p.Categories {
		if ref.Term != nil && ref.Term.Name != "" {
			categories = append(categories, ref.Term.Name)
		}
	}
	if len(categories) == 0 {
		categories = []string{"Uncategorized"}
	}

	var buf bytes.Buffer
	if err := t.markdown.Convert([]byte(p.Content), &buf); err != nil {
		// Rendering failure degrades to the raw markdown body
		buf.Reset()
		buf.WriteString(p.Content)
	}

	excerpt := p.Excerpt
	if excerpt == "" {
		excerpt = truncate(p.Content, ShortDescriptionLimit)
	}

	view := PostView{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Categories:  categories,
		Excerpt:     excerpt,
		ContentHTML: buf.String(),
		Image:       t.imageOrPlaceholder(p.Image),
		PublishedAt: p.CreatedAt.Format(time.RFC3339),
	}

	view.SEO = t.postSEO(p, view)
	return view
}

func (t *Transformer) postSEO(p *models.Post, view PostView) SEOView {
	seo := SEOView{
		Title:       p.SEO.Title,
		Description: p.SEO.Description,
		Image:       t.resolveMedia(p.SEO.Image),
	}
	if seo.Title == "" {
		seo.Title = p.Title
	}
	if seo.Description == "" {
		if view.Excerpt != "" {
			seo.Description = view.Excerpt
		} else {
			seo.Description = fmt.Sprintf("%s, from the Hospitek journal.", p.Title)
		}
	}
	if seo.Image == "" {
		seo.Image = view.Image
	}
	return seo
}
