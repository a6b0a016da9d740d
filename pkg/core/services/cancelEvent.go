package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/internal/config"
	"github.com/jakechorley/volunteer-hub/pkg/core/model"
	"github.com/jakechorley/volunteer-hub/pkg/db"
)

// CancelEventResult summarizes an event cancellation
type CancelEventResult struct {
	Event    *db.Event
	Notified int
}

// CancelEventStore defines the database operations needed to cancel an event
type CancelEventStore interface {
	GetEvent(ctx context.Context, id string) (*db.Event, error)
	GetProfile(ctx context.Context, id string) (*db.Profile, error)
	TransitionEventStatus(ctx context.Context, eventID, to string, allowedFrom ...string) (bool, error)
	GetApplicationsByEventAndStatus(ctx context.Context, eventID, status string) ([]db.Application, error)
}

// CancelEvent moves a draft or published event to canceled and notifies
// pending and accepted applicants. Notification delivery is best-effort;
// failures are logged and do not undo the cancellation.
func CancelEvent(
	ctx context.Context,
	store CancelEventStore,
	sink NotificationSink,
	cfg *config.Config,
	logger *zap.Logger,
	eventID string,
	byProfileID string,
) (*CancelEventResult, error) {
	logger.Debug("Starting cancelEvent",
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
		string(model.EventCanceled), string(model.EventDraft), string(model.EventPublished))
	if err != nil {
		return nil, fmt.Errorf("failed to cancel event: %w", err)
	}
	if !updated {
		return nil, fmt.Errorf("cannot cancel event in status %s: %w", event.Status, ErrInvalidTransition)
	}
	event.Status = string(model.EventCanceled)

	// Applicants with a live application hear about the cancellation
	notified := 0
	for _, status := range []model.ApplicationStatus{model.ApplicationPending, model.ApplicationAccepted} {
		applications, err := store.GetApplicationsByEventAndStatus(ctx, eventID, string(status))
		if err != nil {
			logger.Warn("Failed to fetch applicants for cancellation notice",
				zap.String("event_id", eventID),
				zap.String("status", string(status)),
				zap.Error(err))
			continue
		}
		for _, application := range applications {
			if err := sendEventNotification(ctx, sink, logger, eventCanceledTemplate,
				application.VolunteerID, byProfileID, event, cfg.NotificationLinkBase); err == nil {
				notified++
			}
		}
	}

	logger.Info("Event canceled",
		zap.String("event_id", eventID),
		zap.Int("notified", notified))

	return &CancelEventResult{Event: event, Notified: notified}, nil
}
