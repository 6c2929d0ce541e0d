package posts

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/hospitek/vitrine/internal/common"
	"github.com/hospitek/vitrine/internal/interfaces"
	"github.com/hospitek/vitrine/internal/models"
	"github.com/hospitek/vitrine/internal/transform"
)

// Filters are the public list options for the blog index
type Filters struct {
	Category string
	Page     int
	Limit    int
}

// ListResult is a page of post view models
type ListResult struct {
	Items      []transform.PostView `json:"items"`
	Pagination models.Pagination    `json:"pagination"`
}

// Facets are the distinct category names for the blog filter UI
type Facets struct {
	Categories []string `json:"categories"`
}

// Service provides published-only blog retrieval
type Service struct {
	storage      interfaces.PostStorage
	transformer  *transform.Transformer
	logger       arbor.ILogger
	defaultLimit int
	facetCap     int
}

// NewService creates a new post service
func NewService(storage interfaces.PostStorage, transformer *transform.Transformer, cfg *common.ContentConfig, logger arbor.ILogger) *Service {
	return &Service{
		storage:      storage,
		transformer:  transformer,
		logger:       logger,
		defaultLimit: cfg.DefaultLimit,
		facetCap:     cfg.FacetCap,
	}
}

// List returns a page of published posts matching the filters
func (s *Service) List(ctx context.Context, filters Filters) (*ListResult, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}
	page := filters.Page
	if page < 1 {
		page = 1
	}

	opts := interfaces.PostListOptions{
		Category: filters.Category,
		Status:   models.StatusPublished,
		Limit:    limit,
		Page:     page,
	}

	var items []*models.Post
	var total int
	err := common.Retry(common.DefaultRetryAttempts, common.DefaultRetryDelay, func() error {
		var e error
		items, total, e = s.storage.List(ctx, opts)
		return e
	})
	if err != nil {
		return nil, fmt.Errorf("post retrieval failed: %w", err)
	}

	views := make([]transform.PostView, 0, len(items))
	for _, item := range items {
		views = append(views, s.transformer.Post(item))
	}

	return &ListResult{
		Items:      views,
		Pagination: models.NewPagination(total, page, limit),
	}, nil
}

// GetBySlug returns the view for a published post, or nil when no such
// post exists
func (s *Service) GetBySlug(ctx context.Context, slug string) (*transform.PostView, error) {
	var post *models.Post
	err := common.Retry(common.DefaultRetryAttempts, common.DefaultRetryDelay, func() error {
		var e error
		post, e = s.storage.GetBySlug(ctx, slug)
		return e
	})
	if err != nil {
		return nil, fmt.Errorf("post retrieval failed: %w", err)
	}
	if post == nil {
		return nil, nil
	}

	view := s.transformer.Post(post)
	return &view, nil
}

// Facets returns the distinct category names for the filter UI
func (s *Service) Facets(ctx context.Context) (*Facets, error) {
	var categories []string
	err := common.Retry(common.DefaultRetryAttempts, common.DefaultRetryDelay, func() error {
		var e error
		categories, e = s.storage.Categories(ctx, s.facetCap)
		return e
	})
	if err != nil {
		return nil, fmt.Errorf("post facet retrieval failed: %w", err)
	}

	return &Facets{Categories: categories}, nil
}
