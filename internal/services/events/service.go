package events

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/hospitek/vitrine/internal/common"
	"github.com/hospitek/vitrine/internal/interfaces"
	"github.com/hospitek/vitrine/internal/models"
	"github.com/hospitek/vitrine/internal/transform"
)

// Filters are the public list options for event listings
type Filters struct {
	EventType   string
	EventStatus string
	Featured    *bool
	Page        int
	Limit       int
}

// ListResult is a page of event view models
type ListResult struct {
	Items      []transform.EventView `json:"items"`
	Pagination models.Pagination     `json:"pagination"`
}

// DetailResult is an event detail page with related listings
type DetailResult struct {
	Event   transform.EventView   `json:"event"`
	Related []transform.EventView `json:"related"`
}

// Facets are the distinct filter values for the event filter UI
type Facets struct {
	EventTypes []string `json:"event_types"`
}

// Service provides published-only event retrieval and status maintenance
type Service struct {
	storage      interfaces.EventStorage
	transformer  *transform.Transformer
	logger       arbor.ILogger
	defaultLimit int
	facetCap     int
	relatedCount int
}

// NewService creates a new event service
func NewService(storage interfaces.EventStorage, transformer *transform.Transformer, cfg *common.ContentConfig, logger arbor.ILogger) *Service {
	return &Service{
		storage:      storage,
		transformer:  transformer,
		logger:       logger,
		defaultLimit: cfg.DefaultLimit,
		facetCap:     cfg.FacetCap,
		relatedCount: cfg.RelatedCount,
	}
}

// List returns a page of published events matching the filters
func (s *Service) List(ctx context.Context, filters Filters) (*ListResult, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}
	page := filters.Page
	if page < 1 {
		page = 1
	}

	opts := interfaces.EventListOptions{
		EventType:   filters.EventType,
		EventStatus: models.EventStatus(filters.EventStatus),
		Featured:    filters.Featured,
		Status:      models.StatusPublished,
		Limit:       limit,
		Page:        page,
	}

	var items []*models.Event
	var total int
	err := common.Retry(common.DefaultRetryAttempts, common.DefaultRetryDelay, func() error {
		var e error
		items, total, e = s.storage.List(ctx, opts)
		return e
	})
	if err != nil {
		return nil, fmt.Errorf("event retrieval failed: %w", err)
	}

	views := make([]transform.EventView, 0, len(items))
	for _, item := range items {
		views = append(views, s.transformer.Event(item))
	}

	return &ListResult{
		Items:      views,
		Pagination: models.NewPagination(total, page, limit),
	}, nil
}

// GetBySlug returns the detail view for a published event, or nil when no
// such event exists
func (s *Service) GetBySlug(ctx context.Context, slug string) (*DetailResult, error) {
	var event *models.Event
	err := common.Retry(common.DefaultRetryAttempts, common.DefaultRetryDelay, func() error {
		var e error
		event, e = s.storage.GetBySlug(ctx, slug)
		return e
	})
	if err != nil {
		return nil, fmt.Errorf("event retrieval failed: %w", err)
	}
	if event == nil {
		return nil, nil
	}

	related, err := s.related(ctx, event)
	if err != nil {
		s.logger.Warn().Err(err).Str("slug", slug).Msg("Failed to load related events")
		related = []transform.EventView{}
	}

	return &DetailResult{
		Event:   s.transformer.Event(event),
		Related: related,
	}, nil
}

// related selects up to relatedCount events sharing the primary's event
// type, excluding the primary itself
func (s *Service) related(ctx context.Context, primary *models.Event) ([]transform.EventView, error) {
	opts := interfaces.EventListOptions{
		EventType: primary.EventType,
		Status:    models.StatusPublished,
		Limit:     s.relatedCount + 1,
		Page:      1,
	}

	items, _, err := s.storage.List(ctx, opts)
	if err != nil {
		return nil, err
	}

	views := []transform.EventView{}
	for _, item := range items {
		if item.ID == primary.ID {
			continue
		}
		if len(views) >= s.relatedCount {
			break
		}
		views = append(views, s.transformer.Event(item))
	}
	return views, nil
}

// Facets returns the distinct event type values for the filter UI
func (s *Service) Facets(ctx context.Context) (*Facets, error) {
	var types []string
	err := common.Retry(common.DefaultRetryAttempts, common.DefaultRetryDelay, func() error {
		var e error
		types, e = s.storage.EventTypes(ctx, s.facetCap)
		return e
	})
	if err != nil {
		return nil, fmt.Errorf("event facet retrieval failed: %w", err)
	}

	return &Facets{EventTypes: types}, nil
}

// RefreshStatuses flips upcoming events whose end date has elapsed to
// past. Invoked by the scheduler; safe to run repeatedly.
func (s *Service) RefreshStatuses(ctx context.Context) error {
	updated, err := s.storage.MarkElapsedUpcoming(ctx)
	if err != nil {
		return fmt.Errorf("event status refresh failed: %w", err)
	}
	if updated > 0 {
		s.logger.Info().Int("updated", updated).Msg("Elapsed events marked as past")
	}
	return nil
}
