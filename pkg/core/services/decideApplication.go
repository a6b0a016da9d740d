package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/internal/config"
	"github.com/jakechorley/volunteer-hub/pkg/core/model"
	"github.com/jakechorley/volunteer-hub/pkg/db"
)

// DecideApplicationStore defines the database operations needed to decide
// an application
type DecideApplicationStore interface {
	GetApplication(ctx context.Context, id string) (*db.Application, error)
	GetEvent(ctx context.Context, id string) (*db.Event, error)
	GetProfile(ctx context.Context, id string) (*db.Profile, error)
	AcceptApplicationWithinCapacity(ctx context.Context, applicationID string, maxVolunteers int, adminMessage string) (bool, error)
	DecideApplication(ctx context.Context, applicationID, status, adminMessage string) (bool, error)
}

// DecideApplication applies an organization's accept/reject/waitlist verdict
// to a pending application. Accepting is a single conditional update at the
// gateway so the capacity cap holds under concurrent decisions. The status
// change is persisted before the volunteer is notified; a notification
// failure never rolls it back.
func DecideApplication(
	ctx context.Context,
	store DecideApplicationStore,
	sink NotificationSink,
	cfg *config.Config,
	logger *zap.Logger,
	applicationID string,
	deciderID string,
	decision model.Decision,
	adminMessage string,
) (*db.Application, error) {
	logger.Debug("Starting decideApplication",
		zap.String("application_id", applicationID),
		zap.String("decider_id", deciderID),
		zap.String("decision", string(decision)))

	if !decision.IsValid() {
		return nil, validationErrorf("unknown decision %q", decision)
	}

	application, err := store.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch application: %w", err)
	}
	if application == nil {
		return nil, fmt.Errorf("application %s: %w", applicationID, ErrNotFound)
	}

	event, err := store.GetEvent(ctx, application.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("event %s: %w", application.EventID, ErrNotFound)
	}

	if err := requireEventManager(ctx, store, event, deciderID); err != nil {
		return nil, err
	}

	// A completed or canceled event's applications only move through the
	// completion sweep, never through manual decisions
	eventStatus := model.EventStatus(event.Status)
	if eventStatus == model.EventCompleted || eventStatus == model.EventCanceled {
		return nil, fmt.Errorf("event %s is %s: %w", event.ID, event.Status, ErrInvalidTransition)
	}

	if model.ApplicationStatus(application.Status) != model.ApplicationPending {
		return nil, fmt.Errorf("application %s is %s, only pending applications can be decided: %w",
			applicationID, application.Status, ErrInvalidTransition)
	}

	newStatus := decision.Status()
	var updated bool
	if decision == model.DecisionAccept {
		updated, err = store.AcceptApplicationWithinCapacity(ctx, applicationID, event.MaxVolunteers, adminMessage)
		if err != nil {
			return nil, fmt.Errorf("failed to accept application: %w", err)
		}
		if !updated {
			// The conditional update declined: either a concurrent decision
			// got there first, or the capacity cap is full
			current, err := store.GetApplication(ctx, applicationID)
			if err != nil {
				return nil, fmt.Errorf("failed to re-fetch application: %w", err)
			}
			if current != nil && model.ApplicationStatus(current.Status) != model.ApplicationPending {
				return nil, fmt.Errorf("application %s is now %s: %w",
					applicationID, current.Status, ErrInvalidTransition)
			}
			return nil, fmt.Errorf("event %s has %d accepted volunteers: %w",
				event.ID, event.MaxVolunteers, ErrCapacityExceeded)
		}
	} else {
		updated, err = store.DecideApplication(ctx, applicationID, string(newStatus), adminMessage)
		if err != nil {
			return nil, fmt.Errorf("failed to update application: %w", err)
		}
		if !updated {
			return nil, fmt.Errorf("application %s is no longer pending: %w", applicationID, ErrInvalidTransition)
		}
	}

	application.Status = string(newStatus)
	application.AdminMessage = adminMessage
	application.UpdatedAt = time.Now().UTC()

	logger.Info("Application decided",
		zap.String("application_id", applicationID),
		zap.String("event_id", event.ID),
		zap.String("status", application.Status))

	// Best effort only; the decision is already persisted
	tmpl := decisionTemplates[decision]
	_ = sendEventNotification(ctx, sink, logger, tmpl,
		application.VolunteerID, deciderID, event, cfg.NotificationLinkBase)

	return application, nil
}
