package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/db"
)

// DeleteEventStore defines the database operations needed to delete an
// event and its dependents
type DeleteEventStore interface {
	GetEvent(ctx context.Context, id string) (*db.Event, error)
	GetProfile(ctx context.Context, id string) (*db.Profile, error)
	DeleteEventSkills(ctx context.Context, eventID string) error
	DeleteApplicationsByEvent(ctx context.Context, eventID string) error
	DeleteEvent(ctx context.Context, eventID string) error
}

// DeleteEvent removes an event and its dependent rows. Children go first so
// foreign keys hold at every step: event_skills, then applications, then
// the event itself. History entries are kept; they record what happened.
func DeleteEvent(
	ctx context.Context,
	store DeleteEventStore,
	logger *zap.Logger,
	eventID string,
	byProfileID string,
) error {
	logger.Debug("Starting deleteEvent",
		zap.String("event_id", eventID),
		zap.String("by_profile_id", byProfileID))

	event, err := store.GetEvent(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to fetch event: %w", err)
	}
	if event == nil {
		return fmt.Errorf("event %s: %w", eventID, ErrNotFound)
	}

	if err := requireEventManager(ctx, store, event, byProfileID); err != nil {
		return err
	}

	if err := store.DeleteEventSkills(ctx, eventID); err != nil {
		return fmt.Errorf("failed to delete event skills: %w", err)
	}
	if err := store.DeleteApplicationsByEvent(ctx, eventID); err != nil {
		return fmt.Errorf("failed to delete applications: %w", err)
	}
	if err := store.DeleteEvent(ctx, eventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	logger.Info("Event deleted", zap.String("event_id", eventID))
	return nil
}
