package projects

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/hospitek/vitrine/internal/common"
	"github.com/hospitek/vitrine/internal/interfaces"
	"github.com/hospitek/vitrine/internal/models"
	"github.com/hospitek/vitrine/internal/transform"
)

// Filters are the public list options for project case studies
type Filters struct {
	HospitalType string
	Year         int
	Featured     *bool
	Page         int
	Limit        int
}

// ListResult is a page of project view models
type ListResult struct {
	Items      []transform.ProjectView `json:"items"`
	Pagination models.Pagination       `json:"pagination"`
}

// DetailResult is a project detail page with related case studies
type DetailResult struct {
	Project transform.ProjectView   `json:"project"`
	Related []transform.ProjectView `json:"related"`
}

// Facets are the distinct filter values for the project filter UI
type Facets struct {
	HospitalTypes []string `json:"hospital_types"`
	Years         []int    `json:"years"`
}

// Service provides published-only project retrieval
type Service struct {
	storage      interfaces.ProjectStorage
	transformer  *transform.Transformer
	logger       arbor.ILogger
	defaultLimit int
	facetCap     int
	relatedCount int
}

// NewService creates a new project service
func NewService(storage interfaces.ProjectStorage, transformer *transform.Transformer, cfg *common.ContentConfig, logger arbor.ILogger) *Service {
	return &Service{
		storage:      storage,
		transformer:  transformer,
		logger:       logger,
		defaultLimit: cfg.DefaultLimit,
		facetCap:     cfg.FacetCap,
		relatedCount: cfg.RelatedCount,
	}
}

// List returns a page of published projects matching the filters
func (s *Service) List(ctx context.Context, filters Filters) (*ListResult, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}
	page := filters.Page
	if page < 1 {
		page = 1
	}

	opts := interfaces.ProjectListOptions{
		HospitalType: filters.HospitalType,
		Year:         filters.Year,
		Featured:     filters.Featured,
		Status:       models.StatusPublished,
		Limit:        limit,
		Page:         page,
	}

	var items []*models.Project
	var total int
	err := common.Retry(common.DefaultRetryAttempts, common.DefaultRetryDelay, func() error {
		var e error
		items, total, e = s.storage.List(ctx, opts)
		return e
	})
	if err != nil {
		return nil, fmt.Errorf("project retrieval failed: %w", err)
	}

	views := make([]transform.ProjectView, 0, len(items))
	for _, item := range items {
		views = append(views, s.transformer.Project(item))
	}

	return &ListResult{
		Items:      views,
		Pagination: models.NewPagination(total, page, limit),
	}, nil
}

// GetBySlug returns the detail view for a published project, or nil when
// no such project exists
func (s *Service) GetBySlug(ctx context.Context, slug string) (*DetailResult, error) {
	var project *models.Project
	err := common.Retry(common.DefaultRetryAttempts, common.DefaultRetryDelay, func() error {
		var e error
		project, e = s.storage.GetBySlug(ctx, slug)
		return e
	})
	if err != nil {
		return nil, fmt.Errorf("project retrieval failed: %w", err)
	}
	if project == nil {
		return nil, nil
	}

	related, err := s.related(ctx, project)
	if err != nil {
		s.logger.Warn().Err(err).Str("slug", slug).Msg("Failed to load related projects")
		related = []transform.ProjectView{}
	}

	return &DetailResult{
		Project: s.transformer.Project(project),
		Related: related,
	}, nil
}

// related selects up to relatedCount projects sharing the primary's
// hospital type, excluding the primary itself
func (s *Service) related(ctx context.Context, primary *models.Project) ([]transform.ProjectView, error) {
	opts := interfaces.ProjectListOptions{
		HospitalType: primary.HospitalType,
		Status:       models.StatusPublished,
		Limit:        s.relatedCount + 1,
		Page:         1,
	}

	items, _, err := s.storage.List(ctx, opts)
	if err != nil {
		return nil, err
	}

	views := []transform.ProjectView{}
	for _, item := range items {
		if item.ID == primary.ID {
			continue
		}
		if len(views) >= s.relatedCount {
			break
		}
		views = append(views, s.transformer.Project(item))
	}
	return views, nil
}

// Facets returns the distinct hospital types (ascending) and project
// years (descending) for the filter UI
func (s *Service) Facets(ctx context.Context) (*Facets, error) {
	var types []string
	var years []int

	err := common.Retry(common.DefaultRetryAttempts, common.DefaultRetryDelay, func() error {
		var e error
		types, e = s.storage.HospitalTypes(ctx, s.facetCap)
		if e != nil {
			return e
		}
		years, e = s.storage.Years(ctx, s.facetCap)
		return e
	})
	if err != nil {
		return nil, fmt.Errorf("project facet retrieval failed: %w", err)
	}

	return &Facets{HospitalTypes: types, Years: years}, nil
}
