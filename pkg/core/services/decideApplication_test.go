package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/core/model"
	"github.com/jakechorley/volunteer-hub/pkg/db"
)

func seedPendingApplication(store *mockStore, id, eventID, volunteerID string) *db.Application {
	application := &db.Application{ID: id, EventID: eventID, VolunteerID: volunteerID, Status: "pending"}
	store.applications[id] = application
	return application
}

func TestDecideApplication(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("accept updates status and notifies volunteer", func(t *testing.T) {
		store := newMockStore()
		seedPublishedEvent(store, "event-1", "org-1")
		seedPendingApplication(store, "app-1", "event-1", "vol-1")
		sink := &mockSink{}

		application, err := DecideApplication(ctx, store, sink, testConfig(), logger,
			"app-1", "org-1", model.DecisionAccept, "welcome aboard")
		require.NoError(t, err)

		assert.Equal(t, "accepted", application.Status)
		assert.Equal(t, "welcome aboard", application.AdminMessage)
		assert.Equal(t, "accepted", store.applications["app-1"].Status)

		require.Len(t, sink.delivered, 1)
		assert.Equal(t, "application_accepted", sink.delivered[0].Type)
		assert.Equal(t, "vol-1", sink.delivered[0].RecipientID)
		assert.Equal(t, "/events/event-1", sink.delivered[0].Link)
	})

	t.Run("reject and waitlist map to their statuses", func(t *testing.T) {
		store := newMockStore()
		seedPublishedEvent(store, "event-1", "org-1")
		seedPendingApplication(store, "app-1", "event-1", "vol-1")
		seedPendingApplication(store, "app-2", "event-1", "vol-2")
		sink := &mockSink{}

		rejected, err := DecideApplication(ctx, store, sink, testConfig(), logger,
			"app-1", "org-1", model.DecisionReject, "")
		require.NoError(t, err)
		assert.Equal(t, "rejected", rejected.Status)

		waitlisted, err := DecideApplication(ctx, store, sink, testConfig(), logger,
			"app-2", "org-1", model.DecisionWaitlist, "")
		require.NoError(t, err)
		assert.Equal(t, "waitlisted", waitlisted.Status)

		require.Len(t, sink.delivered, 2)
		assert.Equal(t, "application_rejected", sink.delivered[0].Type)
		assert.Equal(t, "application_waitlisted", sink.delivered[1].Type)
	})

	t.Run("accept beyond capacity leaves application pending", func(t *testing.T) {
		store := newMockStore()
		event := seedPublishedEvent(store, "event-1", "org-1")
		event.MaxVolunteers = 1
		accepted := seedPendingApplication(store, "app-1", "event-1", "vol-1")
		accepted.Status = "accepted"
		seedPendingApplication(store, "app-2", "event-1", "vol-2")
		sink := &mockSink{}

		_, err := DecideApplication(ctx, store, sink, testConfig(), logger,
			"app-2", "org-1", model.DecisionAccept, "")
		assert.ErrorIs(t, err, ErrCapacityExceeded)

		assert.Equal(t, "pending", store.applications["app-2"].Status)
		assert.Empty(t, sink.delivered)
	})

	t.Run("zero max volunteers means no cap", func(t *testing.T) {
		store := newMockStore()
		seedPublishedEvent(store, "event-1", "org-1")
		for _, id := range []string{"app-1", "app-2", "app-3"} {
			seedPendingApplication(store, id, "event-1", "vol-"+id)
		}
		sink := &mockSink{}

		for _, id := range []string{"app-1", "app-2", "app-3"} {
			_, err := DecideApplication(ctx, store, sink, testConfig(), logger,
				id, "org-1", model.DecisionAccept, "")
			require.NoError(t, err)
		}
	})

	t.Run("already decided application is an invalid transition", func(t *testing.T) {
		store := newMockStore()
		seedPublishedEvent(store, "event-1", "org-1")
		application := seedPendingApplication(store, "app-1", "event-1", "vol-1")
		application.Status = "rejected"

		_, err := DecideApplication(ctx, store, &mockSink{}, testConfig(), logger,
			"app-1", "org-1", model.DecisionAccept, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("completed event cannot be decided", func(t *testing.T) {
		store := newMockStore()
		event := seedPublishedEvent(store, "event-1", "org-1")
		event.Status = "completed"
		seedPendingApplication(store, "app-1", "event-1", "vol-1")

		_, err := DecideApplication(ctx, store, &mockSink{}, testConfig(), logger,
			"app-1", "org-1", model.DecisionAccept, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("only creator or admin may decide", func(t *testing.T) {
		store := newMockStore()
		seedPublishedEvent(store, "event-1", "org-1")
		seedPendingApplication(store, "app-1", "event-1", "vol-1")
		store.profiles["other"] = &db.Profile{ID: "other", Type: "organization", Status: "active"}
		store.profiles["admin"] = &db.Profile{ID: "admin", Type: "admin", Status: "active"}

		_, err := DecideApplication(ctx, store, &mockSink{}, testConfig(), logger,
			"app-1", "other", model.DecisionAccept, "")
		assert.ErrorIs(t, err, ErrForbidden)

		_, err = DecideApplication(ctx, store, &mockSink{}, testConfig(), logger,
			"app-1", "admin", model.DecisionAccept, "")
		assert.NoError(t, err)
	})

	t.Run("notification failure does not undo the decision", func(t *testing.T) {
		store := newMockStore()
		seedPublishedEvent(store, "event-1", "org-1")
		seedPendingApplication(store, "app-1", "event-1", "vol-1")
		sink := &mockSink{failFor: "vol-1", failForErr: errors.New("smtp down")}

		application, err := DecideApplication(ctx, store, sink, testConfig(), logger,
			"app-1", "org-1", model.DecisionAccept, "")
		require.NoError(t, err)
		assert.Equal(t, "accepted", application.Status)
	})

	t.Run("unknown decision is a validation error", func(t *testing.T) {
		store := newMockStore()

		_, err := DecideApplication(ctx, store, &mockSink{}, testConfig(), logger,
			"app-1", "org-1", model.Decision("maybe"), "")
		assert.True(t, IsValidation(err))
	})
}
