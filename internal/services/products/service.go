package products

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/hospitek/vitrine/internal/common"
	"github.com/hospitek/vitrine/internal/interfaces"
	"github.com/hospitek/vitrine/internal/models"
	"github.com/hospitek/vitrine/internal/transform"
)

// Filters are the public list options exposed through the catalog API.
// Absent optional filters are omitted from the store predicate entirely.
type Filters struct {
	Category string
	Featured *bool
	Page     int
	Limit    int
}

// ListResult is a page of product view models
type ListResult struct {
	Items      []transform.ProductView `json:"items"`
	Pagination models.Pagination       `json:"pagination"`
}

// DetailResult is a product detail page: the primary entity plus related
// items sharing its category
type DetailResult struct {
	Product transform.ProductView   `json:"product"`
	Related []transform.ProductView `json:"related"`
}

// Facets are the distinct filter values for the catalog filter UI
type Facets struct {
	Categories []string `json:"categories"`
}

// Service provides published-only product retrieval
type Service struct {
	storage      interfaces.ProductStorage
	transformer  *transform.Transformer
	logger       arbor.ILogger
	defaultLimit int
	facetCap     int
	relatedCount int
}

// NewService creates a new product service
func NewService(storage interfaces.ProductStorage, transformer *transform.Transformer, cfg *common.ContentConfig, logger arbor.ILogger) *Service {
	return &Service{
		storage:      storage,
		transformer:  transformer,
		logger:       logger,
		defaultLimit: cfg.DefaultLimit,
		facetCap:     cfg.FacetCap,
		relatedCount: cfg.RelatedCount,
	}
}

// List returns a page of published products matching the filters. A store
// failure surfaces as an error after a bounded retry; it is never masked
// as an empty page.
func (s *Service) List(ctx context.Context, filters Filters) (*ListResult, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}
	page := filters.Page
	if page < 1 {
		page = 1
	}

	opts := interfaces.ProductListOptions{
		Category: filters.Category,
		Featured: filters.Featured,
		Status:   models.StatusPublished,
		Limit:    limit,
		Page:     page,
	}

	var items []*models.Product
	var total int
	err := common.Retry(common.DefaultRetryAttempts, common.DefaultRetryDelay, func() error {
		var e error
		items, total, e = s.storage.List(ctx, opts)
		return e
	})
	if err != nil {
		return nil, fmt.Errorf("product retrieval failed: %w", err)
	}

	views := make([]transform.ProductView, 0, len(items))
	for _, item := range items {
		views = append(views, s.transformer.Product(item))
	}

	return &ListResult{
		Items:      views,
		Pagination: models.NewPagination(total, page, limit),
	}, nil
}

// GetBySlug returns the detail view for a published product, or nil when
// no such product exists. nil is the sole not-found signal; errors mean
// the store call itself failed.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*DetailResult, error) {
	var product *models.Product
	err := common.Retry(common.DefaultRetryAttempts, common.DefaultRetryDelay, func() error {
		var e error
		product, e = s.storage.GetBySlug(ctx, slug)
		return e
	})
	if err != nil {
		return nil, fmt.Errorf("product retrieval failed: %w", err)
	}
	if product == nil {
		return nil, nil
	}

	related, err := s.related(ctx, product)
	if err != nil {
		// Related items are display convenience; their failure should not
		// take down the detail page
		s.logger.Warn().Err(err).Str("slug", slug).Msg("Failed to load related products")
		related = []transform.ProductView{}
	}

	return &DetailResult{
		Product: s.transformer.Product(product),
		Related: related,
	}, nil
}

// related selects up to relatedCount products sharing the primary's
// category, excluding the primary itself. When the primary has no category
// the query broadens to any published product; most recent items win.
func (s *Service) related(ctx context.Context, primary *models.Product) ([]transform.ProductView, error) {
	opts := interfaces.ProductListOptions{
		Category: primary.Category,
		Status:   models.StatusPublished,
		Limit:    s.relatedCount + 1, // tolerate the self-match
		Page:     1,
	}

	items, _, err := s.storage.List(ctx, opts)
	if err != nil {
		return nil, err
	}

	views := []transform.ProductView{}
	for _, item := range items {
		if item.ID == primary.ID {
			continue
		}
		if len(views) >= s.relatedCount {
			break
		}
		views = append(views, s.transformer.Product(item))
	}
	return views, nil
}

// Facets returns the distinct category values for the filter UI
func (s *Service) Facets(ctx context.Context) (*Facets, error) {
	var categories []string
	err := common.Retry(common.DefaultRetryAttempts, common.DefaultRetryDelay, func() error {
		var e error
		categories, e = s.storage.Categories(ctx, s.facetCap)
		return e
	})
	if err != nil {
		return nil, fmt.Errorf("product facet retrieval failed: %w", err)
	}

	return &Facets{Categories: categories}, nil
}
