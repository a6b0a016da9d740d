package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/core/model"
	"github.com/jakechorley/volunteer-hub/pkg/db"
)

// PublishEventStore defines the database operations needed to publish an event
type PublishEventStore interface {
	GetEvent(ctx context.Context, id string) (*db.Event, error)
	GetProfile(ctx context.Context, id string) (*db.Profile, error)
	TransitionEventStatus(ctx context.Context, eventID, to string, allowedFrom ...string) (bool, error)
}

// PublishEvent moves a draft event to published, opening it for
// applications. Only the creator or an admin may publish.
func PublishEvent(
	ctx context.Context,
	store PublishEventStore,
	logger *zap.Logger,
	eventID string,
	byProfileID string,
) (*db.Event, error) {
	logger.Debug("Starting publishEvent",
		zap.String("event_id", eventID),
		zap.String("by_profile_id", byProfileID))

	event, err := store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("event %s: %w", eventID, ErrNotFound)
	}

	if err := requireEventManager(ctx, store, event, byProfileID); err != nil {
		return nil, err
	}

	updated, err := store.TransitionEventStatus(ctx, eventID,
		string(model.EventPublished), string(model.EventDraft))
	if err != nil {
		return nil, fmt.Errorf("failed to publish event: %w", err)
	}
	if !updated {
		return nil, fmt.Errorf("cannot publish event in status %s: %w", event.Status, ErrInvalidTransition)
	}

	event.Status = string(model.EventPublished)
	logger.Info("Event published", zap.String("event_id", eventID))

	return event, nil
}

// profileStore is the read side shared by the permission helper
type profileStore interface {
	GetProfile(ctx context.Context, id string) (*db.Profile, error)
}

// requireEventManager fails with ErrForbidden unless the acting profile is
// the event's creator or an admin
func requireEventManager(ctx context.Context, store profileStore, event *db.Event, profileID string) error {
	if profileID == event.CreatorID {
		return nil
	}
	profile, err := store.GetProfile(ctx, profileID)
	if err != nil {
		return fmt.Errorf("failed to fetch acting profile: %w", err)
	}
	if profile == nil {
		return fmt.Errorf("profile %s: %w", profileID, ErrNotFound)
	}
	if model.ProfileType(profile.Type) != model.TypeAdmin {
		return fmt.Errorf("profile %s is not the event creator or an admin: %w", profileID, ErrForbidden)
	}
	return nil
}
