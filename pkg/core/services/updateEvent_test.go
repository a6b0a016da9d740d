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

func TestUpdateEvent(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	seed := func() *mockStore {
		store := newMockStore()
		seedOrganization(store, "org-1")
		seedPublishedEvent(store, "event-1", "org-1")
		store.eventSkills["event-1"] = []db.EventSkill{
			{EventID: "event-1", SkillID: "lifting", Importance: 2},
		}
		return store
	}

	t.Run("rewrites details and replaces skills", func(t *testing.T) {
		store := seed()
		input := validEventInput()
		input.Title = "Riverside Cleanup"
		input.MaxVolunteers = 10
		input.RequiredSkills = []SkillRequirementInput{
			{SkillID: "first-aid", Importance: 3},
		}

		event, err := UpdateEvent(ctx, store, logger, "event-1", "org-1", input)
		require.NoError(t, err)

		assert.Equal(t, "Riverside Cleanup", event.Title)
		assert.Equal(t, 10, event.MaxVolunteers)
		assert.Equal(t, "Riverside Cleanup", store.events["event-1"].Title)
		require.Len(t, store.eventSkills["event-1"], 1)
		assert.Equal(t, "first-aid", store.eventSkills["event-1"][0].SkillID)
	})

	t.Run("status and creator survive the update", func(t *testing.T) {
		store := seed()

		event, err := UpdateEvent(ctx, store, logger, "event-1", "org-1", validEventInput())
		require.NoError(t, err)

		assert.Equal(t, "published", event.Status)
		assert.Equal(t, "org-1", event.CreatorID)
	})

	t.Run("end must stay after start", func(t *testing.T) {
		store := seed()
		input := validEventInput()
		input.EndsAt = input.StartsAt.Add(-time.Hour)

		_, err := UpdateEvent(ctx, store, logger, "event-1", "org-1", input)
		assert.True(t, IsValidation(err))
		assert.Equal(t, "Beach Cleanup", store.events["event-1"].Title)
	})

	t.Run("completed event cannot be updated", func(t *testing.T) {
		store := seed()
		store.events["event-1"].Status = "completed"

		_, err := UpdateEvent(ctx, store, logger, "event-1", "org-1", validEventInput())
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("canceled event cannot be updated", func(t *testing.T) {
		store := seed()
		store.events["event-1"].Status = "canceled"

		_, err := UpdateEvent(ctx, store, logger, "event-1", "org-1", validEventInput())
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("only creator or admin may update", func(t *testing.T) {
		store := seed()
		seedOrganization(store, "org-2")

		_, err := UpdateEvent(ctx, store, logger, "event-1", "org-2", validEventInput())
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown event", func(t *testing.T) {
		store := seed()

		_, err := UpdateEvent(ctx, store, logger, "ghost", "org-1", validEventInput())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
