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

// PostStorage implements the PostStorage interface for Badger
type PostStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewPostStorage creates a new PostStorage instance
func NewPostStorage(db *BadgerDB, logger arbor.ILogger) interfaces.PostStorage {
	return &PostStorage{
		db:     db,
		logger: logger,
	}
}

func (s *PostStorage) Save(ctx context.Context, post *models.Post) error {
	if post.ID == "" {
		return fmt.Errorf("post ID is required")
	}
	if post.Slug == "" {
		return fmt.Errorf("post slug is required")
	}

	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now

	if err := s.db.Store().Upsert(post.ID, post); err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	return nil
}

func (s *PostStorage) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	if err := s.db.Store().Get(id, &post); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

// GetBySlug returns the sole published post with the given slug, or nil
// when no such post exists.
func (s *PostStorage) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var posts []models.Post
	query := badgerhold.Where("Slug").Eq(slug).And("Status").Eq(models.StatusPublished).Limit(1)
	if err := s.db.Store().Find(&posts, query); err != nil {
		return nil, fmt.Errorf("failed to find post by slug: %w", err)
	}
	if len(posts) == 0 {
		return nil, nil
	}
	return &posts[0], nil
}

// termMatches reports whether a taxonomy relation matches a category
// filter value, by expanded name or slug when populated, by bare reference
// otherwise.
func termMatches(ref models.TermRef, category string) bool {
	if ref.Term != nil {
		return ref.Term.Name == category || ref.Term.Slug == category
	}
	return ref.Ref == category
}

func (s *PostStorage) listQuery(opts interfaces.PostListOptions) *badgerhold.Query {
	query := badgerhold.Where("ID").Ne("")
	if opts.Status != "" {
		query = query.And("Status").Eq(opts.Status)
	}
	if opts.Category != "" {
		category := opts.Category
		query = query.And("Categories").MatchFunc(func(ra *badgerhold.RecordAccess) (bool, error) {
			post, ok := ra.Record().(*models.Post)
			if !ok {
				return false, fmt.Errorf("unexpected record type in post query")
			}
			for _, ref := range post.Categories {
				if termMatches(ref, category) {
					return true, nil
				}
			}
			return false, nil
		})
	}
	return query
}

// List returns a page of posts plus the total match count. Results sort by
// creation date, newest first.
func (s *PostStorage) List(ctx context.Context, opts interfaces.PostListOptions) ([]*models.Post, int, error) {
	count, err := s.db.Store().Count(&models.Post{}, s.listQuery(opts))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	query := s.listQuery(opts).SortBy("CreatedAt").Reverse()
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
		if opts.Page > 1 {
			query = query.Skip((opts.Page - 1) * opts.Limit)
		}
	}

	var posts []models.Post
	if err := s.db.Store().Find(&posts, query); err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}

	result := make([]*models.Post, len(posts))
	for i := range posts {
		result[i] = &posts[i]
	}
	return result, int(count), nil
}

// Categories returns the distinct category names across published posts,
// sorted ascending. Expanded terms contribute their display name;
// unexpanded relations contribute the bare reference.
func (s *PostStorage) Categories(ctx context.Context, cap int) ([]string, error) {
	var posts []models.Post
	query := badgerhold.Where("Status").Eq(models.StatusPublished).Limit(cap)
	if err := s.db.Store().Find(&posts, query); err != nil {
		return nil, fmt.Errorf("failed to scan post categories: %w", err)
	}

	seen := make(map[string]struct{})
	categories := []string{}
	for _, p := range posts {
		for _, ref := range p.Categories {
			name := ref.Ref
			if ref.Term != nil {
				name = ref.Term.Name
			}
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			categories = append(categories, name)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// Search matches published posts by title or markdown content
func (s *PostStorage) Search(ctx context.Context, pattern *regexp.Regexp, limit int) ([]*models.Post, error) {
	var posts []models.Post
	query := badgerhold.Where("Status").Eq(models.StatusPublished).And("Title").RegExp(pattern).
		Or(badgerhold.Where("Status").Eq(models.StatusPublished).And("Content").RegExp(pattern)).
		Limit(limit)
	if err := s.db.Store().Find(&posts, query); err != nil {
		return nil, fmt.Errorf("post search failed: %w", err)
	}

	result := make([]*models.Post, len(posts))
	for i := range posts {
		result[i] = &posts[i]
	}
	return result, nil
}

func (s *PostStorage) Delete(ctx context.Context, id string) error {
	if err := s.db.Store().Delete(id, &models.Post{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}
