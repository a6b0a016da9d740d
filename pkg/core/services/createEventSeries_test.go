package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateEventSeries(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("expands weekly rule into draft events", func(t *testing.T) {
		store := newMockStore()
		seedOrganization(store, "org-1")
		template := validEventInput()
		template.StartsAt = time.Date(2026, 9, 5, 9, 0, 0, 0, time.UTC) // a Saturday
		template.EndsAt = template.StartsAt.Add(4 * time.Hour)

		result, err := CreateEventSeries(ctx, store, logger, template,
			"FREQ=WEEKLY;BYDAY=SA;COUNT=4", 52)
		require.NoError(t, err)

		require.Len(t, result.EventIDs, 4)
		assert.Equal(t, template.StartsAt, result.FirstDate)
		assert.Equal(t, template.StartsAt.AddDate(0, 0, 21), result.LastDate)

		for _, id := range result.EventIDs {
			event := store.events[id]
			require.NotNil(t, event)
			assert.Equal(t, "draft", event.Status)
			assert.Equal(t, 4*time.Hour, event.EndsAt.Sub(event.StartsAt))
			assert.Equal(t, template.Title, event.Title)
		}
	})

	t.Run("occurrences are capped", func(t *testing.T) {
		store := newMockStore()
		seedOrganization(store, "org-1")
		template := validEventInput()

		result, err := CreateEventSeries(ctx, store, logger, template, "FREQ=DAILY", 5)
		require.NoError(t, err)
		assert.Len(t, result.EventIDs, 5)
	})

	t.Run("invalid rule is a validation error", func(t *testing.T) {
		store := newMockStore()
		seedOrganization(store, "org-1")

		_, err := CreateEventSeries(ctx, store, logger, validEventInput(), "FREQ=BOGUS", 52)
		assert.True(t, IsValidation(err))
	})

	t.Run("invalid template creates nothing", func(t *testing.T) {
		store := newMockStore()
		seedOrganization(store, "org-1")
		template := validEventInput()
		template.Title = ""

		_, err := CreateEventSeries(ctx, store, logger, template, "FREQ=WEEKLY;COUNT=2", 52)
		assert.True(t, IsValidation(err))
		assert.Empty(t, store.events)
	})
}
