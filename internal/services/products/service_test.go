package products

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospitek/vitrine/internal/common"
	"github.com/hospitek/vitrine/internal/interfaces"
	"github.com/hospitek/vitrine/internal/models"
	"github.com/hospitek/vitrine/internal/transform"
)

// mockProductStorage implements interfaces.ProductStorage for testing
type mockProductStorage struct {
	getBySlugFunc func(ctx context.Context, slug string) (*models.Product, error)
	listFunc      func(ctx context.Context, opts interfaces.ProductListOptions) ([]*models.Product, int, error)
	categoryFunc  func(ctx context.Context, cap int) ([]string, error)
	listCalls     []interfaces.ProductListOptions
}

func (m *mockProductStorage) Save(ctx context.Context, product *models.Product) error { return nil }

func (m *mockProductStorage) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return nil, nil
}

func (m *mockProductStorage) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockProductStorage) List(ctx context.Context, opts interfaces.ProductListOptions) ([]*models.Product, int, error) {
	m.listCalls = append(m.listCalls, opts)
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, 0, nil
}

func (m *mockProductStorage) Categories(ctx context.Context, cap int) ([]string, error) {
	if m.categoryFunc != nil {
		return m.categoryFunc(ctx, cap)
	}
	return nil, nil
}

func (m *mockProductStorage) Search(ctx context.Context, pattern *regexp.Regexp, limit int) ([]*models.Product, error) {
	return nil, nil
}

func (m *mockProductStorage) Delete(ctx context.Context, id string) error { return nil }

func (m *mockProductStorage) Count(ctx context.Context) (int, error) { return 0, nil }

func testService(storage interfaces.ProductStorage) *Service {
	cfg := &common.ContentConfig{DefaultLimit: 12, FacetCap: 1000, RelatedCount: 3}
	return NewService(storage, transform.New(&common.MediaConfig{}), cfg, common.GetLogger())
}

func published(id, slug, category string) *models.Product {
	return &models.Product{ID: id, Title: slug, Slug: slug, Category: category, Status: models.StatusPublished}
}

func TestListDefaults(t *testing.T) {
	mock := &mockProductStorage{}
	svc := testService(mock)

	result, err := svc.List(context.Background(), Filters{})
	require.NoError(t, err)
	require.Len(t, mock.listCalls, 1)

	opts := mock.listCalls[0]
	assert.Equal(t, 12, opts.Limit)
	assert.Equal(t, 1, opts.Page)
	assert.Equal(t, models.StatusPublished, opts.Status)
	assert.NotNil(t, result.Items)
}

func TestListRetriesTransientFailure(t *testing.T) {
	attempts := 0
	mock := &mockProductStorage{
		listFunc: func(ctx context.Context, opts interfaces.ProductListOptions) ([]*models.Product, int, error) {
			attempts++
			if attempts == 1 {
				return nil, 0, errors.New("transient store failure")
			}
			return []*models.Product{published("prd_1", "one", "A")}, 1, nil
		},
	}
	svc := testService(mock)

	result, err := svc.List(context.Background(), Filters{})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Len(t, result.Items, 1)
}

func TestListSurfacesPersistentFailure(t *testing.T) {
	attempts := 0
	mock := &mockProductStorage{
		listFunc: func(ctx context.Context, opts interfaces.ProductListOptions) ([]*models.Product, int, error) {
			attempts++
			return nil, 0, errors.New("store down")
		},
	}
	svc := testService(mock)

	_, err := svc.List(context.Background(), Filters{})
	require.Error(t, err)
	// Bounded retry: exactly two attempts, never an empty-page fallback
	assert.Equal(t, 2, attempts)
}

func TestGetBySlugNotFound(t *testing.T) {
	mock := &mockProductStorage{}
	svc := testService(mock)

	detail, err := svc.GetBySlug(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestGetBySlugRelatedExcludesSelf(t *testing.T) {
	primary := published("prd_1", "primary", "Theatres")
	mock := &mockProductStorage{
		getBySlugFunc: func(ctx context.Context, slug string) (*models.Product, error) {
			return primary, nil
		},
		listFunc: func(ctx context.Context, opts interfaces.ProductListOptions) ([]*models.Product, int, error) {
			assert.Equal(t, "Theatres", opts.Category)
			assert.Equal(t, 4, opts.Limit)
			return []*models.Product{
				primary,
				published("prd_2", "two", "Theatres"),
				published("prd_3", "three", "Theatres"),
				published("prd_4", "four", "Theatres"),
			}, 4, nil
		},
	}
	svc := testService(mock)

	detail, err := svc.GetBySlug(context.Background(), "primary")
	require.NoError(t, err)
	require.NotNil(t, detail)
	require.Len(t, detail.Related, 3)
	for _, view := range detail.Related {
		assert.NotEqual(t, "prd_1", view.ID)
	}
}

func TestGetBySlugRelatedBroadensWithoutCategory(t *testing.T) {
	primary := published("prd_1", "primary", "")
	mock := &mockProductStorage{
		getBySlugFunc: func(ctx context.Context, slug string) (*models.Product, error) {
			return primary, nil
		},
		listFunc: func(ctx context.Context, opts interfaces.ProductListOptions) ([]*models.Product, int, error) {
			// Empty category broadens to any published product
			assert.Equal(t, "", opts.Category)
			return []*models.Product{published("prd_2", "two", "Gas")}, 1, nil
		},
	}
	svc := testService(mock)

	detail, err := svc.GetBySlug(context.Background(), "primary")
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Len(t, detail.Related, 1)
}

func TestGetBySlugRelatedFailureIsNonFatal(t *testing.T) {
	mock := &mockProductStorage{
		getBySlugFunc: func(ctx context.Context, slug string) (*models.Product, error) {
			return published("prd_1", "primary", "Theatres"), nil
		},
		listFunc: func(ctx context.Context, opts interfaces.ProductListOptions) ([]*models.Product, int, error) {
			return nil, 0, errors.New("related lookup failed")
		},
	}
	svc := testService(mock)

	detail, err := svc.GetBySlug(context.Background(), "primary")
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Empty(t, detail.Related)
}

func TestFacets(t *testing.T) {
	mock := &mockProductStorage{
		categoryFunc: func(ctx context.Context, cap int) ([]string, error) {
			assert.Equal(t, 1000, cap)
			return []string{"Gas", "Theatres"}, nil
		},
	}
	svc := testService(mock)

	facets, err := svc.Facets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Gas", "Theatres"}, facets.Categories)
}
