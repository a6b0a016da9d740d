package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/db"
)

func TestDeleteEvent(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("deletes children before the event", func(t *testing.T) {
		store := newMockStore()
		seedPublishedEvent(store, "event-1", "org-1")
		store.eventSkills["event-1"] = []db.EventSkill{{EventID: "event-1", SkillID: "first-aid", Importance: 2}}
		seedPendingApplication(store, "app-1", "event-1", "vol-1")
		store.history["h-1"] = &db.HistoryEntry{ID: "h-1", VolunteerID: "vol-1", EventID: "event-1"}

		err := DeleteEvent(ctx, store, logger, "event-1", "org-1")
		require.NoError(t, err)

		assert.Equal(t, []string{"event_skills", "applications", "event"}, store.deletions)
		assert.Empty(t, store.applications)
		assert.Empty(t, store.events)
		// History outlives the event
		assert.Len(t, store.history, 1)
	})

	t.Run("unknown event", func(t *testing.T) {
		store := newMockStore()

		err := DeleteEvent(ctx, store, logger, "ghost", "org-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("only creator or admin may delete", func(t *testing.T) {
		store := newMockStore()
		seedPublishedEvent(store, "event-1", "org-1")
		seedVolunteer(store, "vol-1")

		err := DeleteEvent(ctx, store, logger, "event-1", "vol-1")
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Empty(t, store.deletions)
	})
}
