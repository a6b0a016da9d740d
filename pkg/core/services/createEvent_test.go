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

func validEventInput() EventInput {
	return EventInput{
		CreatorID:     "org-1",
		Title:         "Food Bank Shift",
		Description:   "Sorting donations",
		Location:      "Community Hall",
		StartsAt:      time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC),
		EndsAt:        time.Date(2026, 9, 12, 13, 0, 0, 0, time.UTC),
		MinVolunteers: 2,
		MaxVolunteers: 6,
		RequiredSkills: []SkillRequirementInput{
			{SkillID: "lifting", Importance: 2},
		},
	}
}

func seedOrganization(store *mockStore, id string) {
	store.profiles[id] = &db.Profile{ID: id, DisplayName: "Org", Type: "organization", Status: "active"}
}

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("creates draft event with skill requirements", func(t *testing.T) {
		store := newMockStore()
		seedOrganization(store, "org-1")

		event, err := CreateEvent(ctx, store, logger, validEventInput())
		require.NoError(t, err)

		assert.Equal(t, "draft", event.Status)
		assert.Equal(t, "org-1", event.CreatorID)
		require.NotNil(t, store.events[event.ID])
		require.Len(t, store.eventSkills[event.ID], 1)
		assert.Equal(t, "lifting", store.eventSkills[event.ID][0].SkillID)
	})

	t.Run("volunteer profiles cannot create events", func(t *testing.T) {
		store := newMockStore()
		seedVolunteer(store, "vol-1")
		input := validEventInput()
		input.CreatorID = "vol-1"

		_, err := CreateEvent(ctx, store, logger, input)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown creator", func(t *testing.T) {
		store := newMockStore()

		_, err := CreateEvent(ctx, store, logger, validEventInput())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("validation failures", func(t *testing.T) {
		store := newMockStore()
		seedOrganization(store, "org-1")

		tests := []struct {
			name   string
			mutate func(*EventInput)
		}{
			{"missing title", func(i *EventInput) { i.Title = "" }},
			{"end before start", func(i *EventInput) { i.EndsAt = i.StartsAt.Add(-time.Hour) }},
			{"max below min", func(i *EventInput) { i.MaxVolunteers = 1 }},
			{"zero min volunteers", func(i *EventInput) { i.MinVolunteers = 0 }},
			{"importance out of range", func(i *EventInput) { i.RequiredSkills[0].Importance = 4 }},
			{"duplicate skill", func(i *EventInput) {
				i.RequiredSkills = append(i.RequiredSkills, SkillRequirementInput{SkillID: "lifting", Importance: 1})
			}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				input := validEventInput()
				tt.mutate(&input)

				_, err := CreateEvent(ctx, store, logger, input)
				assert.True(t, IsValidation(err), "expected validation error, got %v", err)
			})
		}
	})

	t.Run("zero max volunteers is accepted as no cap", func(t *testing.T) {
		store := newMockStore()
		seedOrganization(store, "org-1")
		input := validEventInput()
		input.MaxVolunteers = 0

		event, err := CreateEvent(ctx, store, logger, input)
		require.NoError(t, err)
		assert.Equal(t, 0, event.MaxVolunteers)
	})
}
