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

// ResourceStorage implements the ResourceStorage interface for Badger
type ResourceStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewResourceStorage creates a new ResourceStorage instance
func NewResourceStorage(db *BadgerDB, logger arbor.ILogger) interfaces.ResourceStorage {
	return &ResourceStorage{
		db:     db,
		logger: logger,
	}
}

func (s *ResourceStorage) Save(ctx context.Context, resource *models.Resource) error {
	if resource.ID == "" {
		return fmt.Errorf("resource ID is required")
	}
	if resource.File.IsZero() {
		return fmt.Errorf("resource file reference is required")
	}

	now := time.Now()
	if resource.CreatedAt.IsZero() {
		resource.CreatedAt = now
	}
	resource.UpdatedAt = now

	if err := s.db.Store().Upsert(resource.ID, resource); err != nil {
		return fmt.Errorf("failed to save resource: %w", err)
	}
	return nil
}

func (s *ResourceStorage) GetByID(ctx context.Context, id string) (*models.Resource, error) {
	var resource models.Resource
	if err := s.db.Store().Get(id, &resource); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}
	return &resource, nil
}

func (s *ResourceStorage) listQuery(opts interfaces.ResourceListOptions) *badgerhold.Query {
	query := badgerhold.Where("ID").Ne("")
	if opts.Status != "" {
		query = query.And("Status").Eq(opts.Status)
	}
	if opts.Category != "" {
		query = query.And("Category").Eq(opts.Category)
	}
	if opts.Featured != nil {
		query = query.And("Featured").Eq(*opts.Featured)
	}
	return query
}

// List returns a page of resources plus the total match count. Results
// sort by creation date, newest first.
func (s *ResourceStorage) List(ctx context.Context, opts interfaces.ResourceListOptions) ([]*models.Resource, int, error) {
	count, err := s.db.Store().Count(&models.Resource{}, s.listQuery(opts))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count resources: %w", err)
	}

	query := s.listQuery(opts).SortBy("CreatedAt").Reverse()
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
		if opts.Page > 1 {
			query = query.Skip((opts.Page - 1) * opts.Limit)
		}
	}

	var resources []models.Resource
	if err := s.db.Store().Find(&resources, query); err != nil {
		return nil, 0, fmt.Errorf("failed to list resources: %w", err)
	}

	result := make([]*models.Resource, len(resources))
	for i := range resources {
		result[i] = &resources[i]
	}
	return result, int(count), nil
}

// Categories returns the distinct category values across published
// resources, sorted ascending.
func (s *ResourceStorage) Categories(ctx context.Context, cap int) ([]string, error) {
	var resources []models.Resource
	query := badgerhold.Where("Status").Eq(models.StatusPublished).Limit(cap)
	if err := s.db.Store().Find(&resources, query); err != nil {
		return nil, fmt.Errorf("failed to scan resource categories: %w", err)
	}

	seen := make(map[string]struct{})
	categories := []string{}
	for _, r := range resources {
		if r.Category == "" {
			continue
		}
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		categories = append(categories, r.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

// Search matches published resources by title or description
func (s *ResourceStorage) Search(ctx context.Context, pattern *regexp.Regexp, limit int) ([]*models.Resource, error) {
	var resources []models.Resource
	query := badgerhold.Where("Status").Eq(models.StatusPublished).And("Title").RegExp(pattern).
		Or(badgerhold.Where("Status").Eq(models.StatusPublished).And("Description").RegExp(pattern)).
		Limit(limit)
	if err := s.db.Store().Find(&resources, query); err != nil {
		return nil, fmt.Errorf("resource search failed: %w", err)
	}

	result := make([]*models.Resource, len(resources))
	for i := range resources {
		result[i] = &resources[i]
	}
	return result, nil
}

func (s *ResourceStorage) Delete(ctx context.Context, id string) error {
	if err := s.db.Store().Delete(id, &models.Resource{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete resource: %w", err)
	}
	return nil
}
