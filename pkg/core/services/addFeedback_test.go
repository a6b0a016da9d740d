package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/db"
)

func TestAddFeedback(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	seed := func() *mockStore {
		store := newMockStore()
		store.history["h-1"] = &db.HistoryEntry{ID: "h-1", VolunteerID: "vol-1", EventID: "event-1"}
		return store
	}

	t.Run("records rating and feedback", func(t *testing.T) {
		store := seed()

		entry, err := AddFeedback(ctx, store, logger, "h-1", "great work", 5)
		require.NoError(t, err)

		assert.Equal(t, 5, entry.Rating)
		assert.Equal(t, "great work", entry.Feedback)
		assert.Equal(t, 5, store.history["h-1"].Rating)
	})

	t.Run("rating sticks once set", func(t *testing.T) {
		store := seed()
		store.history["h-1"].Rating = 4

		_, err := AddFeedback(ctx, store, logger, "h-1", "", 5)
		assert.ErrorIs(t, err, ErrRatingAlreadySet)
		assert.Equal(t, 4, store.history["h-1"].Rating)
	})

	t.Run("feedback can be amended without touching the rating", func(t *testing.T) {
		store := seed()
		store.history["h-1"].Rating = 4
		store.history["h-1"].Feedback = "good"

		entry, err := AddFeedback(ctx, store, logger, "h-1", "good, reliable", 0)
		require.NoError(t, err)

		assert.Equal(t, 4, entry.Rating)
		assert.Equal(t, "good, reliable", entry.Feedback)
	})

	t.Run("rating out of range", func(t *testing.T) {
		store := seed()

		_, err := AddFeedback(ctx, store, logger, "h-1", "", 6)
		assert.True(t, IsValidation(err))
	})

	t.Run("empty input", func(t *testing.T) {
		store := seed()

		_, err := AddFeedback(ctx, store, logger, "h-1", "", 0)
		assert.True(t, IsValidation(err))
	})

	t.Run("unknown entry", func(t *testing.T) {
		store := seed()

		_, err := AddFeedback(ctx, store, logger, "ghost", "fine", 3)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
