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

func TestListOpportunities(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("orders by score then start time", func(t *testing.T) {
		store := newMockStore()
		seedVolunteer(store, "vol-1")
		store.skills["vol-1"] = []db.Skill{{ProfileID: "vol-1", SkillID: "first-aid", Proficiency: 5}}

		base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

		// Perfect skill match
		matched := seedPublishedEvent(store, "event-match", "org-1")
		matched.StartsAt = base.AddDate(0, 0, 14)
		store.eventSkills["event-match"] = []db.EventSkill{{EventID: "event-match", SkillID: "first-aid", Importance: 3}}

		// No requirements, both at baseline: the earlier one wins the tie
		early := seedPublishedEvent(store, "event-early", "org-1")
		early.StartsAt = base
		late := seedPublishedEvent(store, "event-late", "org-1")
		late.StartsAt = base.AddDate(0, 0, 7)

		// Requirement the volunteer lacks
		unmatched := seedPublishedEvent(store, "event-unmatched", "org-1")
		unmatched.StartsAt = base
		store.eventSkills["event-unmatched"] = []db.EventSkill{{EventID: "event-unmatched", SkillID: "driving", Importance: 3}}

		opportunities, err := ListOpportunities(ctx, store, testConfig(), logger, "vol-1")
		require.NoError(t, err)
		require.Len(t, opportunities, 4)

		assert.Equal(t, "event-match", opportunities[0].Event.ID)
		assert.Equal(t, 100, opportunities[0].MatchScore)
		assert.Equal(t, "event-early", opportunities[1].Event.ID)
		assert.Equal(t, 70, opportunities[1].MatchScore)
		assert.Equal(t, "event-late", opportunities[2].Event.ID)
		assert.Equal(t, "event-unmatched", opportunities[3].Event.ID)
		assert.Equal(t, 0, opportunities[3].MatchScore)
	})

	t.Run("draft and completed events are excluded", func(t *testing.T) {
		store := newMockStore()
		seedVolunteer(store, "vol-1")
		draft := seedPublishedEvent(store, "event-1", "org-1")
		draft.Status = "draft"
		done := seedPublishedEvent(store, "event-2", "org-1")
		done.Status = "completed"

		opportunities, err := ListOpportunities(ctx, store, testConfig(), logger, "vol-1")
		require.NoError(t, err)
		assert.Empty(t, opportunities)
	})

	t.Run("unknown volunteer", func(t *testing.T) {
		store := newMockStore()

		_, err := ListOpportunities(ctx, store, testConfig(), logger, "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
