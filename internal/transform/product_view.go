package transform

import (
	"fmt"

	"github.com/hospitek/vitrine/internal/models"
)

// SEOView is the flattened metadata block rendered into page heads
type SEOView struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ProductView is the UI-ready product shape. Every field the UI renders
// unconditionally is guaranteed non-null.
type ProductView struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Slug             string        `json:"slug"`
	Category         string        `json:"category"`
	Description      string        `json:"description"`
	ShortDescription string        `json:"short_description"`
	SpecValues       []string      `json:"spec_values"`
	SpecRows         []models.Spec `json:"spec_rows"`
	Features         []string      `json:"features"`
	Image            string        `json:"image"`
	Gallery          []string      `json:"gallery"`
	DatasheetURL     string        `json:"datasheet_url"`
	Featured         bool          `json:"featured"`
	SEO              SEOView       `json:"seo"`
}

// Product maps a raw product document into its view model
func (t *Transformer) Product(p *models.Product) ProductView {
	description := p.Description.PlainText()

	// Specs are dual-projected: a flat value list for compact badges, and
	// label/value rows (both sides non-empty) for the detail table.
	specValues := []string{}
	specRows := []models.Spec{}
	for _, spec := range p.Specs {
		if spec.Value != "" {
			specValues = append(specValues, spec.Value)
		}
		if spec.Label != "" && spec.Value != "" {
			specRows = append(specRows, spec)
		}
	}

	features := p.Features
	if features == nil {
		features = []string{}
	}

	view := ProductView{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		Category:         labelOrFallback(p.Category, "Uncategorized"),
		Description:      description,
		ShortDescription: truncate(description, ShortDescriptionLimit),
		SpecValues:       specValues,
		SpecRows:         specRows,
		Features:         features,
		Image:            t.imageOrPlaceholder(p.Image),
		Gallery:          t.gallery(p.Gallery),
		DatasheetURL:     t.resolveMedia(p.Datasheet),
		Featured:         p.Featured,
	}

	view.SEO = t.productSEO(p, view)
	return view
}

func (t *Transformer) productSEO(p *models.Product, view ProductView) SEOView {
	seo := SEOView{
		Title:       p.SEO.Title,
		Description: p.SEO.Description,
		Image:       t.resolveMedia(p.SEO.Image),
	}
	if seo.Title == "" {
		seo.Title = p.Title
	}
	if seo.Description == "" {
		if view.ShortDescription != "" {
			seo.Description = view.ShortDescription
		} else {
			seo.Description = fmt.Sprintf("Learn more about %s, part of the %s range.", p.Title, view.Category)
		}
	}
	if seo.Image == "" {
		seo.Image = view.Image
	}
	return seo
}
