package badger

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospitek/vitrine/internal/common"
	"github.com/hospitek/vitrine/internal/interfaces"
	"github.com/hospitek/vitrine/internal/models"
)

func seedProducts(t *testing.T, storage interfaces.ProductStorage, products ...*models.Product) {
	t.Helper()
	ctx := context.Background()
	for _, p := range products {
		if p.ID == "" {
			p.ID = common.NewProductID()
		}
		require.NoError(t, storage.Save(ctx, p))
	}
}

func TestProductGetBySlugPublishedOnly(t *testing.T) {
	manager := newTestManager(t)
	storage := manager.ProductStorage()
	ctx := context.Background()

	seedProducts(t, storage,
		&models.Product{Title: "Published", Slug: "published-product", Status: models.StatusPublished},
		&models.Product{Title: "Draft", Slug: "draft-product", Status: models.StatusDraft},
	)

	found, err := storage.GetBySlug(ctx, "published-product")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Published", found.Title)

	// Drafts are invisible through slug lookup
	found, err = storage.GetBySlug(ctx, "draft-product")
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = storage.GetBySlug(ctx, "no-such-product")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestProductListFiltersAndPagination(t *testing.T) {
	manager := newTestManager(t)
	storage := manager.ProductStorage()
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		seedProducts(t, storage, &models.Product{
			Title:    fmt.Sprintf("Product %d", i),
			Slug:     fmt.Sprintf("product-%d", i),
			Category: "Theatres",
			Status:   models.StatusPublished,
		})
	}
	seedProducts(t, storage,
		&models.Product{Title: "Draft", Slug: "draft", Category: "Theatres", Status: models.StatusDraft},
		&models.Product{Title: "Other", Slug: "other", Category: "Gas", Status: models.StatusPublished},
	)

	items, total, err := storage.List(ctx, interfaces.ProductListOptions{
		Status: models.StatusPublished, Category: "Theatres", Limit: 12, Page: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 15, total)
	assert.Len(t, items, 12)

	items, total, err = storage.List(ctx, interfaces.ProductListOptions{
		Status: models.StatusPublished, Category: "Theatres", Limit: 12, Page: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 15, total)
	assert.Len(t, items, 3)

	// No status filter sees the draft too
	_, total, err = storage.List(ctx, interfaces.ProductListOptions{Category: "Theatres", Limit: 100, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 16, total)
}

func TestProductFeaturedFilter(t *testing.T) {
	manager := newTestManager(t)
	storage := manager.ProductStorage()
	ctx := context.Background()

	seedProducts(t, storage,
		&models.Product{Title: "Starred", Slug: "starred", Featured: true, Status: models.StatusPublished},
		&models.Product{Title: "Plain", Slug: "plain", Featured: false, Status: models.StatusPublished},
	)

	featured := true
	items, total, err := storage.List(ctx, interfaces.ProductListOptions{
		Status: models.StatusPublished, Featured: &featured, Limit: 12, Page: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Starred", items[0].Title)
}

func TestProductCategoriesFacet(t *testing.T) {
	manager := newTestManager(t)
	storage := manager.ProductStorage()
	ctx := context.Background()

	seedProducts(t, storage,
		&models.Product{Title: "A", Slug: "a", Category: "Theatres", Status: models.StatusPublished},
		&models.Product{Title: "B", Slug: "b", Category: "Gas", Status: models.StatusPublished},
		&models.Product{Title: "C", Slug: "c", Category: "Theatres", Status: models.StatusPublished},
		&models.Product{Title: "D", Slug: "d", Category: "Hidden", Status: models.StatusDraft},
	)

	categories, err := storage.Categories(ctx, 1000)
	require.NoError(t, err)
	assert.Equal(t, []string{"Gas", "Theatres"}, categories)
}

func TestProductSearch(t *testing.T) {
	manager := newTestManager(t)
	storage := manager.ProductStorage()
	ctx := context.Background()

	seedProducts(t, storage,
		&models.Product{Title: "Modular Operating Theatre", Slug: "mot", Status: models.StatusPublished},
		&models.Product{Title: "Gas Pipeline", Slug: "gas", Status: models.StatusPublished},
		&models.Product{Title: "Theatre Door", Slug: "door", Status: models.StatusDraft},
	)

	pattern := regexp.MustCompile(`(?i)theatre`)
	results, err := storage.Search(ctx, pattern, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Modular Operating Theatre", results[0].Title)
}
