package resources

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/hospitek/vitrine/internal/common"
	"github.com/hospitek/vitrine/internal/interfaces"
	"github.com/hospitek/vitrine/internal/models"
	"github.com/hospitek/vitrine/internal/transform"
)

// Filters are the public list options for the resource library
type Filters struct {
	Category string
	Featured *bool
	Page     int
	Limit    int
}

// ListResult is a page of resource view models
type ListResult struct {
	Items      []transform.ResourceView `json:"items"`
	Pagination models.Pagination        `json:"pagination"`
}

// Facets are the distinct category values for the resource filter UI
type Facets struct {
	Categories []string `json:"categories"`
}

// Service provides published-only resource retrieval
type Service struct {
	storage      interfaces.ResourceStorage
	transformer  *transform.Transformer
	logger       arbor.ILogger
	defaultLimit int
	facetCap     int
}

// NewService creates a new resource service
func NewService(storage interfaces.ResourceStorage, transformer *transform.Transformer, cfg *common.ContentConfig, logger arbor.ILogger) *Service {
	return &Service{
		storage:      storage,
		transformer:  transformer,
		logger:       logger,
		defaultLimit: cfg.DefaultLimit,
		facetCap:     cfg.FacetCap,
	}
}

// List returns a page of published resources matching the filters.
// Resources whose file reference did not resolve are dropped; a download
// card without a file is useless to the UI.
func (s *Service) List(ctx context.Context, filters Filters) (*ListResult, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}
	page := filters.Page
	if page < 1 {
		page = 1
	}

	opts := interfaces.ResourceListOptions{
		Category: filters.Category,
		Featured: filters.Featured,
		Status:   models.StatusPublished,
		Limit:    limit,
		Page:     page,
	}

	var items []*models.Resource
	var total int
	err := common.Retry(common.DefaultRetryAttempts, common.DefaultRetryDelay, func() error {
		var e error
		items, total, e = s.storage.List(ctx, opts)
		return e
	})
	if err != nil {
		return nil, fmt.Errorf("resource retrieval failed: %w", err)
	}

	views := make([]transform.ResourceView, 0, len(items))
	for _, item := range items {
		view := s.transformer.Resource(item)
		if view.FileURL == "" {
			continue
		}
		views = append(views, view)
	}

	return &ListResult{
		Items:      views,
		Pagination: models.NewPagination(total, page, limit),
	}, nil
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
		return nil, fmt.Errorf("resource facet retrieval failed: %w", err)
	}

	return &Facets{Categories: categories}, nil
}
