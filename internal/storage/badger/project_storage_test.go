package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospitek/vitrine/internal/common"
	"github.com/hospitek/vitrine/internal/models"
)

func TestProjectFacets(t *testing.T) {
	manager := newTestManager(t)
	storage := manager.ProjectStorage()
	ctx := context.Background()

	seed := []struct {
		slug         string
		hospitalType string
		year         int
		status       models.ContentStatus
	}{
		{"a", "Government", 2022, models.StatusPublished},
		{"b", "Private", 2024, models.StatusPublished},
		{"c", "Government", 2023, models.StatusPublished},
		{"d", "Trust", 2024, models.StatusPublished},
		{"e", "Military", 2021, models.StatusDraft},
	}
	for _, s := range seed {
		require.NoError(t, storage.Save(ctx, &models.Project{
			ID: common.NewProjectID(), Title: s.slug, Slug: s.slug,
			HospitalType: s.hospitalType, Year: s.year, Status: s.status,
		}))
	}

	types, err := storage.HospitalTypes(ctx, 1000)
	require.NoError(t, err)
	assert.Equal(t, []string{"Government", "Private", "Trust"}, types)

	years, err := storage.Years(ctx, 1000)
	require.NoError(t, err)
	// Newest first
	assert.Equal(t, []int{2024, 2023, 2022}, years)
}
