package badger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/pelletier/go-toml/v2"
	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"
	"gopkg.in/yaml.v3"

	"github.com/hospitek/vitrine/internal/common"
	"github.com/hospitek/vitrine/internal/interfaces"
	"github.com/hospitek/vitrine/internal/models"
)

// Seed file schema. Relation fields are flat strings (paths or media IDs)
// in seed files; they are converted into typed references on load.

type seedSpec struct {
	Label string `toml:"label" yaml:"label"`
	Value string `toml:"value" yaml:"value"`
}

type seedTestimonial struct {
	Quote        string `toml:"quote" yaml:"quote"`
	Author       string `toml:"author" yaml:"author"`
	Designation  string `toml:"designation" yaml:"designation"`
	Organization string `toml:"organization" yaml:"organization"`
}

type seedSEO struct {
	Title       string `toml:"title" yaml:"title"`
	Description string `toml:"description" yaml:"description"`
	Image       string `toml:"image" yaml:"image"`
}

type seedProduct struct {
	ID          string     `toml:"id" yaml:"id"`
	Title       string     `toml:"title" yaml:"title"`
	Slug        string     `toml:"slug" yaml:"slug"`
	Category    string     `toml:"category" yaml:"category"`
	Description string     `toml:"description" yaml:"description"`
	Specs       []seedSpec `toml:"specs" yaml:"specs"`
	Features    []string   `toml:"features" yaml:"features"`
	Image       string     `toml:"image" yaml:"image"`
	Gallery     []string   `toml:"gallery" yaml:"gallery"`
	Datasheet   string     `toml:"datasheet" yaml:"datasheet"`
	Featured    bool       `toml:"featured" yaml:"featured"`
	Status      string     `toml:"status" yaml:"status"`
	SEO         seedSEO    `toml:"seo" yaml:"seo"`
}

type seedProject struct {
	ID           string           `toml:"id" yaml:"id"`
	Title        string           `toml:"title" yaml:"title"`
	Slug         string           `toml:"slug" yaml:"slug"`
	Client       string           `toml:"client" yaml:"client"`
	Location     string           `toml:"location" yaml:"location"`
	HospitalType string           `toml:"hospital_type" yaml:"hospital_type"`
	Year         int              `toml:"year" yaml:"year"`
	Metrics      []seedSpec       `toml:"metrics" yaml:"metrics"`
	Image        string           `toml:"image" yaml:"image"`
	Gallery      []string         `toml:"gallery" yaml:"gallery"`
	Testimonial  *seedTestimonial `toml:"testimonial" yaml:"testimonial"`
	Status       string           `toml:"status" yaml:"status"`
	SEO          seedSEO          `toml:"seo" yaml:"seo"`
}

type seedEvent struct {
	ID               string   `toml:"id" yaml:"id"`
	Title            string   `toml:"title" yaml:"title"`
	Slug             string   `toml:"slug" yaml:"slug"`
	EventType        string   `toml:"event_type" yaml:"event_type"`
	StartDate        string   `toml:"start_date" yaml:"start_date"`
	EndDate          string   `toml:"end_date" yaml:"end_date"`
	Location         string   `toml:"location" yaml:"location"`
	Venue            string   `toml:"venue" yaml:"venue"`
	VenueAddress     string   `toml:"venue_address" yaml:"venue_address"`
	Description      string   `toml:"description" yaml:"description"`
	Image            string   `toml:"image" yaml:"image"`
	Gallery          []string `toml:"gallery" yaml:"gallery"`
	EventStatus      string   `toml:"event_status" yaml:"event_status"`
	Featured         bool     `toml:"featured" yaml:"featured"`
	RegistrationLink string   `toml:"registration_link" yaml:"registration_link"`
	Status           string   `toml:"status" yaml:"status"`
	SEO              seedSEO  `toml:"seo" yaml:"seo"`
}

type seedPost struct {
	ID          string   `toml:"id" yaml:"id"`
	Title       string   `toml:"title" yaml:"title"`
	Slug        string   `toml:"slug" yaml:"slug"`
	Categories  []string `toml:"categories" yaml:"categories"`
	Excerpt     string   `toml:"excerpt" yaml:"excerpt"`
	Content     string   `toml:"content" yaml:"content"`           // Markdown
	ContentHTML string   `toml:"content_html" yaml:"content_html"` // Legacy HTML, converted on load
	Image       string   `toml:"image" yaml:"image"`
	Status      string   `toml:"status" yaml:"status"`
	SEO         seedSEO  `toml:"seo" yaml:"seo"`
}

type seedResource struct {
	ID          string `toml:"id" yaml:"id"`
	Title       string `toml:"title" yaml:"title"`
	Description string `toml:"description" yaml:"description"`
	Category    string `toml:"category" yaml:"category"`
	File        string `toml:"file" yaml:"file"`
	Thumbnail   string `toml:"thumbnail" yaml:"thumbnail"`
	Featured    bool   `toml:"featured" yaml:"featured"`
	Status      string `toml:"status" yaml:"status"`
}

type seedFile struct {
	Products  []seedProduct  `toml:"products" yaml:"products"`
	Projects  []seedProject  `toml:"projects" yaml:"projects"`
	Events    []seedEvent    `toml:"events" yaml:"events"`
	Posts     []seedPost     `toml:"posts" yaml:"posts"`
	Resources []seedResource `toml:"resources" yaml:"resources"`
}

// LoadContentFromFiles loads content entities from TOML/YAML seed files in
// the given directory and upserts them by slug. Existing entities keep
// their IDs and creation timestamps.
func LoadContentFromFiles(ctx context.Context, manager interfaces.StorageManager, seedDir string, logger arbor.ILogger) error {
	if _, err := os.Stat(seedDir); os.IsNotExist(err) {
		logger.Debug().Str("dir", seedDir).Msg("Content seed directory does not exist, skipping")
		return nil
	}

	logger.Info().Str("dir", seedDir).Msg("Loading content from seed files")

	entries, err := os.ReadDir(seedDir)
	if err != nil {
		return fmt.Errorf("failed to read content seed directory: %w", err)
	}

	htmlConverter := md.NewConverter("", true, nil)

	loadedCount := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := filepath.Ext(entry.Name())
		if ext != ".toml" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		filePath := filepath.Join(seedDir, entry.Name())
		data, err := os.ReadFile(filePath)
		if err != nil {
			logger.Warn().Err(err).Str("file", entry.Name()).Msg("Failed to read content seed file")
			continue
		}

		var seed seedFile
		if ext == ".toml" {
			err = toml.Unmarshal(data, &seed)
		} else {
			err = yaml.Unmarshal(data, &seed)
		}
		if err != nil {
			logger.Warn().Err(err).Str("file", entry.Name()).Msg("Failed to parse content seed file")
			continue
		}

		n, err := loadSeed(ctx, manager, &seed, htmlConverter, logger)
		if err != nil {
			logger.Warn().Err(err).Str("file", entry.Name()).Msg("Failed to load content seed file")
			continue
		}

		logger.Info().Str("file", entry.Name()).Int("entities", n).Msg("Content seed file loaded")
		loadedCount += n
	}

	logger.Info().Int("entities", loadedCount).Msg("Content seeding complete")
	return nil
}

func loadSeed(ctx context.Context, manager interfaces.StorageManager, seed *seedFile, htmlConverter *md.Converter, logger arbor.ILogger) (int, error) {
	badgerManager, ok := manager.(*Manager)
	if !ok {
		return 0, fmt.Errorf("content seeding requires badger storage")
	}
	store := badgerManager.DB().Store()

	loaded := 0

	for _, sp := range seed.Products {
		product := &models.Product{
			ID:          sp.ID,
			Title:       sp.Title,
			Slug:        sp.Slug,
			Category:    sp.Category,
			Description: models.PlainRichText(sp.Description),
			Features:    sp.Features,
			Image:       mediaFromPath(sp.Image),
			Gallery:     galleryFromPaths(sp.Gallery),
			Datasheet:   mediaFromPath(sp.Datasheet),
			Featured:    sp.Featured,
			Status:      statusFromString(sp.Status),
			SEO:         seoFromSeed(sp.SEO),
		}
		for _, spec := range sp.Specs {
			product.Specs = append(product.Specs, models.Spec{Label: spec.Label, Value: spec.Value})
		}
		if product.ID == "" {
			product.ID = existingIDBySlug(store, &models.Product{}, product.Slug, common.NewProductID)
		}
		if err := manager.ProductStorage().Save(ctx, product); err != nil {
			return loaded, fmt.Errorf("failed to seed product %q: %w", sp.Slug, err)
		}
		loaded++
	}

	for _, sp := range seed.Projects {
		project := &models.Project{
			ID:           sp.ID,
			Title:        sp.Title,
			Slug:         sp.Slug,
			Client:       sp.Client,
			Location:     sp.Location,
			HospitalType: sp.HospitalType,
			Year:         sp.Year,
			Image:        mediaFromPath(sp.Image),
			Gallery:      galleryFromPaths(sp.Gallery),
			Status:       statusFromString(sp.Status),
			SEO:          seoFromSeed(sp.SEO),
		}
		for _, m := range sp.Metrics {
			project.Metrics = append(project.Metrics, models.Metric{Label: m.Label, Value: m.Value})
		}
		if sp.Testimonial != nil {
			project.Testimonial = &models.Testimonial{
				Quote:        sp.Testimonial.Quote,
				Author:       sp.Testimonial.Author,
				Designation:  sp.Testimonial.Designation,
				Organization: sp.Testimonial.Organization,
			}
		}
		if project.ID == "" {
			project.ID = existingIDBySlug(store, &models.Project{}, project.Slug, common.NewProjectID)
		}
		if err := manager.ProjectStorage().Save(ctx, project); err != nil {
			return loaded, fmt.Errorf("failed to seed project %q: %w", sp.Slug, err)
		}
		loaded++
	}

	for _, se := range seed.Events {
		startDate, err := parseSeedDate(se.StartDate)
		if err != nil {
			logger.Warn().Err(err).Str("slug", se.Slug).Msg("Invalid event start date, skipping")
			continue
		}
		endDate, err := parseSeedDate(se.EndDate)
		if err != nil {
			endDate = startDate
		}

		event := &models.Event{
			ID:               se.ID,
			Title:            se.Title,
			Slug:             se.Slug,
			EventType:        se.EventType,
			StartDate:        startDate,
			EndDate:          endDate,
			Location:         se.Location,
			Venue:            se.Venue,
			VenueAddress:     se.VenueAddress,
			Description:      models.PlainRichText(se.Description),
			Image:            mediaFromPath(se.Image),
			Gallery:          galleryFromPaths(se.Gallery),
			EventStatus:      eventStatusFromString(se.EventStatus, endDate),
			Featured:         se.Featured,
			RegistrationLink: se.RegistrationLink,
			Status:           statusFromString(se.Status),
			SEO:              seoFromSeed(se.SEO),
		}
		if event.ID == "" {
			event.ID = existingIDBySlug(store, &models.Event{}, event.Slug, common.NewEventID)
		}
		if err := manager.EventStorage().Save(ctx, event); err != nil {
			return loaded, fmt.Errorf("failed to seed event %q: %w", se.Slug, err)
		}
		loaded++
	}

	for _, sp := range seed.Posts {
		content := sp.Content
		if content == "" && sp.ContentHTML != "" {
			converted, err := htmlConverter.ConvertString(sp.ContentHTML)
			if err != nil {
				logger.Warn().Err(err).Str("slug", sp.Slug).Msg("HTML to markdown conversion failed for post")
			} else {
				content = converted
			}
		}

		post := &models.Post{
			ID:      sp.ID,
			Title:   sp.Title,
			Slug:    sp.Slug,
			Excerpt: sp.Excerpt,
			Content: content,
			Image:   mediaFromPath(sp.Image),
			Status:  statusFromString(sp.Status),
			SEO:     seoFromSeed(sp.SEO),
		}
		for _, c := range sp.Categories {
			post.Categories = append(post.Categories, models.TermRef{
				Term: &models.Term{ID: c, Name: c, Slug: slugify(c)},
			})
		}
		if post.ID == "" {
			post.ID = existingIDBySlug(store, &models.Post{}, post.Slug, common.NewPostID)
		}
		if err := manager.PostStorage().Save(ctx, post); err != nil {
			return loaded, fmt.Errorf("failed to seed post %q: %w", sp.Slug, err)
		}
		loaded++
	}

	for _, sr := range seed.Resources {
		resource := &models.Resource{
			ID:          sr.ID,
			Title:       sr.Title,
			Description: sr.Description,
			Category:    sr.Category,
			File:        mediaFromPath(sr.File),
			Thumbnail:   mediaFromPath(sr.Thumbnail),
			Featured:    sr.Featured,
			Status:      statusFromString(sr.Status),
		}
		if resource.ID == "" {
			resource.ID = common.NewResourceID()
		}
		if err := manager.ResourceStorage().Save(ctx, resource); err != nil {
			return loaded, fmt.Errorf("failed to seed resource %q: %w", sr.Title, err)
		}
		loaded++
	}

	return loaded, nil
}

// existingIDBySlug reuses the ID of an already-stored entity with the same
// slug (any status) so repeated seeding stays idempotent.
func existingIDBySlug(store *badgerhold.Store, zero interface{}, slug string, newID func() string) string {
	switch zero.(type) {
	case *models.Product:
		var items []models.Product
		if err := store.Find(&items, badgerhold.Where("Slug").Eq(slug).Limit(1)); err == nil && len(items) > 0 {
			return items[0].ID
		}
	case *models.Project:
		var items []models.Project
		if err := store.Find(&items, badgerhold.Where("Slug").Eq(slug).Limit(1)); err == nil && len(items) > 0 {
			return items[0].ID
		}
	case *models.Event:
		var items []models.Event
		if err := store.Find(&items, badgerhold.Where("Slug").Eq(slug).Limit(1)); err == nil && len(items) > 0 {
			return items[0].ID
		}
	case *models.Post:
		var items []models.Post
		if err := store.Find(&items, badgerhold.Where("Slug").Eq(slug).Limit(1)); err == nil && len(items) > 0 {
			return items[0].ID
		}
	}
	return newID()
}

func mediaFromPath(path string) models.MediaRef {
	if path == "" {
		return models.MediaRef{}
	}
	// Paths resolve to URLs through the media resolver at transform time;
	// bare IDs (no slash) stay as unexpanded references.
	if strings.Contains(path, "/") || strings.Contains(path, ".") {
		return models.ExpandedMedia(models.Media{URL: path})
	}
	return models.RefMedia(path)
}

func galleryFromPaths(paths []string) []models.MediaRef {
	if len(paths) == 0 {
		return nil
	}
	refs := make([]models.MediaRef, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		refs = append(refs, mediaFromPath(p))
	}
	return refs
}

func seoFromSeed(s seedSEO) models.SEO {
	return models.SEO{
		Title:       s.Title,
		Description: s.Description,
		Image:       mediaFromPath(s.Image),
	}
}

func statusFromString(s string) models.ContentStatus {
	if strings.EqualFold(s, string(models.StatusPublished)) {
		return models.StatusPublished
	}
	return models.StatusDraft
}

func eventStatusFromString(s string, endDate time.Time) models.EventStatus {
	switch strings.ToLower(s) {
	case string(models.EventUpcoming):
		return models.EventUpcoming
	case string(models.EventPast):
		return models.EventPast
	case string(models.EventCancelled):
		return models.EventCancelled
	}
	if endDate.Before(time.Now()) {
		return models.EventPast
	}
	return models.EventUpcoming
}

func parseSeedDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %s", s)
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	return s
}
