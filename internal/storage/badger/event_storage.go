package badger

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/hospitek/vitrine/internal/interfaces"
	"github.com/hospitek/vitrine/internal/models"
)

// EventStorage implements the EventStorage interface for Badger
type EventStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewEventStorage creates a new EventStorage instance
func NewEventStorage(db *BadgerDB, logger arbor.ILogger) interfaces.EventStorage {
	return &EventStorage{
		db:     db,
		logger: logger,
	}
}

func (s *EventStorage) Save(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		return fmt.Errorf("event ID is required")
	}
	if event.Slug == "" {
		return fmt.Errorf("event slug is required")
	}

	now := time.Now()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}
	event.UpdatedAt = now

	if err := s.db.Store().Upsert(event.ID, event); err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}
	return nil
}

func (s *EventStorage) GetByID(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	if err := s.db.Store().Get(id, &event); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

// GetBySlug returns the sole published event with the given slug, or nil
// when no such event exists.
func (s *EventStorage) GetBySlug(ctx context.Context, slug string) (*models.Event, error) {
	var events []models.Event
	query := badgerhold.Where("Slug").Eq(slug).And("Status").Eq(models.StatusPublished).Limit(1)
	if err := s.db.Store().Find(&events, query); err != nil {
		return nil, fmt.Errorf("failed to find event by slug: %w", err)
	}
	if len(events) == 0 {
		return nil, nil
	}
	return &events[0], nil
}

func (s *EventStorage) listQuery(opts interfaces.EventListOptions) *badgerhold.Query {
	query := badgerhold.Where("ID").Ne("")
	if opts.Status != "" {
		query = query.And("Status").Eq(opts.Status)
	}
	if opts.EventType != "" {
		query = query.And("EventType").Eq(opts.EventType)
	}
	if opts.EventStatus != "" {
		query = query.And("EventStatus").Eq(opts.EventStatus)
	}
	if opts.Featured != nil {
		query = query.And("Featured").Eq(*opts.Featured)
	}
	return query
}

// List returns a page of events plus the total match count. Results sort
// by start date, soonest-past first.
func (s *EventStorage) List(ctx context.Context, opts interfaces.EventListOptions) ([]*models.Event, int, error) {
	count, err := s.db.Store().Count(&models.Event{}, s.listQuery(opts))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	query := s.listQuery(opts).SortBy("StartDate").Reverse()
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
		if opts.Page > 1 {
			query = query.Skip((opts.Page - 1) * opts.Limit)
		}
	}

	var events []models.Event
	if err := s.db.Store().Find(&events, query); err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}

	result := make([]*models.Event, len(events))
	for i := range events {
		result[i] = &events[i]
	}
	return result, int(count), nil
}

// EventTypes returns the distinct event type values across published
// events, sorted ascending.
func (s *EventStorage) EventTypes(ctx context.Context, cap int) ([]string, error) {
	var events []models.Event
	query := badgerhold.Where("Status").Eq(models.StatusPublished).Limit(cap)
	if err := s.db.Store().Find(&events, query); err != nil {
		return nil, fmt.Errorf("failed to scan event types: %w", err)
	}

	seen := make(map[string]struct{})
	types := []string{}
	for _, e := range events {
		if e.EventType == "" {
			continue
		}
		if _, ok := seen[e.EventType]; ok {
			continue
		}
		seen[e.EventType] = struct{}{}
		types = append(types, e.EventType)
	}
	sort.Strings(types)
	return types, nil
}

// MarkElapsedUpcoming flips upcoming events whose end date has elapsed to
// past. Cancelled events are never touched. Returns the number updated.
func (s *EventStorage) MarkElapsedUpcoming(ctx context.Context) (int, error) {
	var events []models.Event
	query := badgerhold.Where("EventStatus").Eq(models.EventUpcoming).And("EndDate").Lt(time.Now())
	if err := s.db.Store().Find(&events, query); err != nil {
		return 0, fmt.Errorf("failed to find elapsed events: %w", err)
	}

	updated := 0
	for i := range events {
		events[i].EventStatus = models.EventPast
		events[i].UpdatedAt = time.Now()
		if err := s.db.Store().Upsert(events[i].ID, &events[i]); err != nil {
			return updated, fmt.Errorf("failed to update event %s: %w", events[i].ID, err)
		}
		updated++
	}
	return updated, nil
}

// Search matches published events by title or location
func (s *EventStorage) Search(ctx context.Context, pattern *regexp.Regexp, limit int) ([]*models.Event, error) {
	var events []models.Event
	query := badgerhold.Where("Status").Eq(models.StatusPublished).And("Title").RegExp(pattern).
		Or(badgerhold.Where("Status").Eq(models.StatusPublished).And("Location").RegExp(pattern)).
		Limit(limit)
	if err := s.db.Store().Find(&events, query); err != nil {
		return nil, fmt.Errorf("event search failed: %w", err)
	}

	result := make([]*models.Event, len(events))
	for i := range events {
		result[i] = &events[i]
	}
	return result, nil
}

func (s *EventStorage) Delete(ctx context.Context, id string) error {
	if err := s.db.Store().Delete(id, &models.Event{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
