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

// ProjectStorage implements the ProjectStorage interface for Badger
type ProjectStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewProjectStorage creates a new ProjectStorage instance
func NewProjectStorage(db *BadgerDB, logger arbor.ILogger) interfaces.ProjectStorage {
	return &ProjectStorage{
		db:     db,
		logger: logger,
	}
}

func (s *ProjectStorage) Save(ctx context.Context, project *models.Project) error {
	if project.ID == "" {
		return fmt.Errorf("project ID is required")
	}
	if project.Slug == "" {
		return fmt.Errorf("project slug is required")
	}

	now := time.Now()
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	project.UpdatedAt = now

	if err := s.db.Store().Upsert(project.ID, project); err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

func (s *ProjectStorage) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	if err := s.db.Store().Get(id, &project); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &project, nil
}

// GetBySlug returns the sole published project with the given slug, or nil
// when no such project exists.
func (s *ProjectStorage) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var projects []models.Project
	query := badgerhold.Where("Slug").Eq(slug).And("Status").Eq(models.StatusPublished).Limit(1)
	if err := s.db.Store().Find(&projects, query); err != nil {
		return nil, fmt.Errorf("failed to find project by slug: %w", err)
	}
	if len(projects) == 0 {
		return nil, nil
	}
	return &projects[0], nil
}

func (s *ProjectStorage) listQuery(opts interfaces.ProjectListOptions) *badgerhold.Query {
	query := badgerhold.Where("ID").Ne("")
	if opts.Status != "" {
		query = query.And("Status").Eq(opts.Status)
	}
	if opts.HospitalType != "" {
		query = query.And("HospitalType").Eq(opts.HospitalType)
	}
	if opts.Year != 0 {
		query = query.And("Year").Eq(opts.Year)
	}
	if opts.Featured != nil {
		query = query.And("Featured").Eq(*opts.Featured)
	}
	return query
}

// List returns a page of projects plus the total match count. Results sort
// by project year, most recent first.
func (s *ProjectStorage) List(ctx context.Context, opts interfaces.ProjectListOptions) ([]*models.Project, int, error) {
	count, err := s.db.Store().Count(&models.Project{}, s.listQuery(opts))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	query := s.listQuery(opts).SortBy("Year").Reverse()
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
		if opts.Page > 1 {
			query = query.Skip((opts.Page - 1) * opts.Limit)
		}
	}

	var projects []models.Project
	if err := s.db.Store().Find(&projects, query); err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	result := make([]*models.Project, len(projects))
	for i := range projects {
		result[i] = &projects[i]
	}
	return result, int(count), nil
}

// HospitalTypes returns the distinct hospital type values across published
// projects, sorted ascending.
func (s *ProjectStorage) HospitalTypes(ctx context.Context, cap int) ([]string, error) {
	var projects []models.Project
	query := badgerhold.Where("Status").Eq(models.StatusPublished).Limit(cap)
	if err := s.db.Store().Find(&projects, query); err != nil {
		return nil, fmt.Errorf("failed to scan hospital types: %w", err)
	}

	seen := make(map[string]struct{})
	types := []string{}
	for _, p := range projects {
		if p.HospitalType == "" {
			continue
		}
		if _, ok := seen[p.HospitalType]; ok {
			continue
		}
		seen[p.HospitalType] = struct{}{}
		types = append(types, p.HospitalType)
	}
	sort.Strings(types)
	return types, nil
}

// Years returns the distinct project years across published projects,
// sorted descending by convention (newest filter option first).
func (s *ProjectStorage) Years(ctx context.Context, cap int) ([]int, error) {
	var projects []models.Project
	query := badgerhold.Where("Status").Eq(models.StatusPublished).Limit(cap)
	if err := s.db.Store().Find(&projects, query); err != nil {
		return nil, fmt.Errorf("failed to scan project years: %w", err)
	}

	seen := make(map[int]struct{})
	years := []int{}
	for _, p := range projects {
		if p.Year == 0 {
			continue
		}
		if _, ok := seen[p.Year]; ok {
			continue
		}
		seen[p.Year] = struct{}{}
		years = append(years, p.Year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

// Search matches published projects by title, client or location
func (s *ProjectStorage) Search(ctx context.Context, pattern *regexp.Regexp, limit int) ([]*models.Project, error) {
	var projects []models.Project
	query := badgerhold.Where("Status").Eq(models.StatusPublished).And("Title").RegExp(pattern).
		Or(badgerhold.Where("Status").Eq(models.StatusPublished).And("Client").RegExp(pattern)).
		Or(badgerhold.Where("Status").Eq(models.StatusPublished).And("Location").RegExp(pattern)).
		Limit(limit)
	if err := s.db.Store().Find(&projects, query); err != nil {
		return nil, fmt.Errorf("project search failed: %w", err)
	}

	result := make([]*models.Project, len(projects))
	for i := range projects {
		result[i] = &projects[i]
	}
	return result, nil
}

func (s *ProjectStorage) Delete(ctx context.Context, id string) error {
	if err := s.db.Store().Delete(id, &models.Project{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
