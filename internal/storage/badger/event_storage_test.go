package badger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospitek/vitrine/internal/common"
	"github.com/hospitek/vitrine/internal/models"
)

func TestMarkElapsedUpcoming(t *testing.T) {
	manager := newTestManager(t)
	storage := manager.EventStorage()
	ctx := context.Background()

	past := time.Now().Add(-48 * time.Hour)
	future := time.Now().Add(48 * time.Hour)

	elapsed := &models.Event{
		ID: common.NewEventID(), Title: "Elapsed", Slug: "elapsed",
		StartDate: past.Add(-24 * time.Hour), EndDate: past,
		EventStatus: models.EventUpcoming, Status: models.StatusPublished,
	}
	upcoming := &models.Event{
		ID: common.NewEventID(), Title: "Upcoming", Slug: "upcoming",
		StartDate: future, EndDate: future.Add(24 * time.Hour),
		EventStatus: models.EventUpcoming, Status: models.StatusPublished,
	}
	cancelled := &models.Event{
		ID: common.NewEventID(), Title: "Cancelled", Slug: "cancelled",
		StartDate: past.Add(-24 * time.Hour), EndDate: past,
		EventStatus: models.EventCancelled, Status: models.StatusPublished,
	}

	for _, e := range []*models.Event{elapsed, upcoming, cancelled} {
		require.NoError(t, storage.Save(ctx, e))
	}

	updated, err := storage.MarkElapsedUpcoming(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	got, err := storage.GetByID(ctx, elapsed.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.EventPast, got.EventStatus)

	got, err = storage.GetByID(ctx, upcoming.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EventUpcoming, got.EventStatus)

	got, err = storage.GetByID(ctx, cancelled.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EventCancelled, got.EventStatus)

	// Second run finds nothing left to flip
	updated, err = storage.MarkElapsedUpcoming(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, updated)
}
