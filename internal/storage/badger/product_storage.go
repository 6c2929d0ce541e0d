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

// ProductStorage implements the ProductStorage interface for Badger
type ProductStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewProductStorage creates a new ProductStorage instance
func NewProductStorage(db *BadgerDB, logger arbor.ILogger) interfaces.ProductStorage {
	return &ProductStorage{
		db:     db,
		logger: logger,
	}
}

func (s *ProductStorage) Save(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		return fmt.Errorf("product ID is required")
	}
	if product.Slug == "" {
		return fmt.Errorf("product slug is required")
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	if err := s.db.Store().Upsert(product.ID, product); err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (s *ProductStorage) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Store().Get(id, &product); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

// GetBySlug returns the sole published product with the given slug, or nil
// when no such product exists. nil is the only not-found signal.
func (s *ProductStorage) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var products []models.Product
	query := badgerhold.Where("Slug").Eq(slug).And("Status").Eq(models.StatusPublished).Limit(1)
	if err := s.db.Store().Find(&products, query); err != nil {
		return nil, fmt.Errorf("failed to find product by slug: %w", err)
	}
	if len(products) == 0 {
		return nil, nil
	}
	return &products[0], nil
}

// listQuery builds the filter predicate. Absent optional filters are
// omitted entirely rather than encoded as match-anything clauses.
func (s *ProductStorage) listQuery(opts interfaces.ProductListOptions) *badgerhold.Query {
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

// List returns a page of products plus the total match count. Results sort
// by creation date, newest first.
func (s *ProductStorage) List(ctx context.Context, opts interfaces.ProductListOptions) ([]*models.Product, int, error) {
	count, err := s.db.Store().Count(&models.Product{}, s.listQuery(opts))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query := s.listQuery(opts).SortBy("CreatedAt").Reverse()
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
		if opts.Page > 1 {
			query = query.Skip((opts.Page - 1) * opts.Limit)
		}
	}

	var products []models.Product
	if err := s.db.Store().Find(&products, query); err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	result := make([]*models.Product, len(products))
	for i := range products {
		result[i] = &products[i]
	}
	return result, int(count), nil
}

// Categories returns the distinct category values across published
// products, sorted ascending. The scan is bounded by cap rather than
// paginated; content volume is small.
func (s *ProductStorage) Categories(ctx context.Context, cap int) ([]string, error) {
	var products []models.Product
	query := badgerhold.Where("Status").Eq(models.StatusPublished).Limit(cap)
	if err := s.db.Store().Find(&products, query); err != nil {
		return nil, fmt.Errorf("failed to scan product categories: %w", err)
	}

	seen := make(map[string]struct{})
	categories := []string{}
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

// Search matches published products whose title or category contains the
// pattern. Regex containment over stored fields, same approach as the
// site-wide search.
func (s *ProductStorage) Search(ctx context.Context, pattern *regexp.Regexp, limit int) ([]*models.Product, error) {
	var products []models.Product
	query := badgerhold.Where("Status").Eq(models.StatusPublished).And("Title").RegExp(pattern).
		Or(badgerhold.Where("Status").Eq(models.StatusPublished).And("Category").RegExp(pattern)).
		Limit(limit)
	if err := s.db.Store().Find(&products, query); err != nil {
		return nil, fmt.Errorf("product search failed: %w", err)
	}

	result := make([]*models.Product, len(products))
	for i := range products {
		result[i] = &products[i]
	}
	return result, nil
}

func (s *ProductStorage) Delete(ctx context.Context, id string) error {
	if err := s.db.Store().Delete(id, &models.Product{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (s *ProductStorage) Count(ctx context.Context) (int, error) {
	count, err := s.db.Store().Count(&models.Product{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return int(count), nil
}
