package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/db"
)

func TestListHistory(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	seed := func() *mockStore {
		store := newMockStore()
		seedVolunteer(store, "vol-1")
		seedPublishedEvent(store, "event-1", "org-1")
		store.history["h-1"] = &db.HistoryEntry{
			ID: "h-1", VolunteerID: "vol-1", EventID: "event-1",
			HoursLogged: 2.0, Rating: 4,
			CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		}
		store.history["h-2"] = &db.HistoryEntry{
			ID: "h-2", VolunteerID: "vol-1", EventID: "event-gone",
			HoursLogged: 3.5,
			CreatedAt:   time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC),
		}
		store.history["h-3"] = &db.HistoryEntry{
			ID: "h-3", VolunteerID: "vol-2", EventID: "event-1",
			CreatedAt: time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
		}
		return store
	}

	t.Run("lists the volunteer's entries newest first", func(t *testing.T) {
		store := seed()

		records, err := ListHistory(ctx, store, logger, "vol-1")
		require.NoError(t, err)

		require.Len(t, records, 2)
		assert.Equal(t, "h-2", records[0].Entry.ID)
		assert.Equal(t, "h-1", records[1].Entry.ID)
		assert.Equal(t, "Beach Cleanup", records[1].EventTitle)
	})

	t.Run("entries outlive their event", func(t *testing.T) {
		store := seed()

		records, err := ListHistory(ctx, store, logger, "vol-1")
		require.NoError(t, err)

		assert.Equal(t, "", records[0].EventTitle)
		assert.Equal(t, 3.5, records[0].Entry.HoursLogged)
	})

	t.Run("no history yet", func(t *testing.T) {
		store := newMockStore()
		seedVolunteer(store, "vol-1")

		records, err := ListHistory(ctx, store, logger, "vol-1")
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("unknown volunteer", func(t *testing.T) {
		store := seed()

		_, err := ListHistory(ctx, store, logger, "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
