package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospitek/vitrine/internal/common"
	"github.com/hospitek/vitrine/internal/interfaces"
	"github.com/hospitek/vitrine/internal/models"
	"github.com/hospitek/vitrine/internal/storage/badger"
	"github.com/hospitek/vitrine/internal/transform"
)

func newSearchService(t *testing.T) (*Service, interfaces.StorageManager) {
	t.Helper()

	manager, err := badger.NewManager(common.GetLogger(), &common.BadgerConfig{Path: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { manager.Close() })

	cfg := &common.ContentConfig{DefaultLimit: 12, FacetCap: 1000, RelatedCount: 3}
	svc := NewService(manager, transform.New(&common.MediaConfig{}), cfg, common.GetLogger())
	return svc, manager
}

func TestSearchAcrossTypes(t *testing.T) {
	svc, manager := newSearchService(t)
	ctx := context.Background()

	require.NoError(t, manager.ProductStorage().Save(ctx, &models.Product{
		ID: common.NewProductID(), Title: "Modular Operating Theatre", Slug: "mot",
		Status: models.StatusPublished,
	}))
	require.NoError(t, manager.PostStorage().Save(ctx, &models.Post{
		ID: common.NewPostID(), Title: "Theatre Airflow Basics", Slug: "airflow",
		Content: "body", Status: models.StatusPublished,
	}))
	require.NoError(t, manager.ProductStorage().Save(ctx, &models.Product{
		ID: common.NewProductID(), Title: "Hidden Theatre Draft", Slug: "hidden",
		Status: models.StatusDraft,
	}))

	results, err := svc.Search(ctx, "theatre", "")
	require.NoError(t, err)
	assert.Equal(t, 2, results.Total)
	assert.Len(t, results.Products, 1)
	assert.Len(t, results.Posts, 1)
	assert.Empty(t, results.Events)

	// Type filter narrows to one section
	results, err = svc.Search(ctx, "theatre", TypePosts)
	require.NoError(t, err)
	assert.Equal(t, 1, results.Total)
	assert.Empty(t, results.Products)
	assert.Len(t, results.Posts, 1)
}

func TestSearchEmptyQuery(t *testing.T) {
	svc, _ := newSearchService(t)

	results, err := svc.Search(context.Background(), "   ", "")
	require.NoError(t, err)
	assert.Equal(t, 0, results.Total)
	assert.NotNil(t, results.Products)
}

func TestSearchLiteralQuery(t *testing.T) {
	svc, manager := newSearchService(t)
	ctx := context.Background()

	require.NoError(t, manager.ProductStorage().Save(ctx, &models.Product{
		ID: common.NewProductID(), Title: "Panel (Type A)", Slug: "panel-a",
		Status: models.StatusPublished,
	}))

	// Regex metacharacters in the query are treated literally
	results, err := svc.Search(ctx, "(type a)", TypeProducts)
	require.NoError(t, err)
	assert.Equal(t, 1, results.Total)
}

func TestValidType(t *testing.T) {
	assert.True(t, ValidType(""))
	assert.True(t, ValidType(TypeProducts))
	assert.True(t, ValidType(TypeResources))
	assert.False(t, ValidType("documents"))
}
