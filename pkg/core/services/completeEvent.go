package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/internal/config"
	"github.com/jakechorley/volunteer-hub/pkg/core/model"
	"github.com/jakechorley/volunteer-hub/pkg/db"
)

// CompletionSummary reports the outcome of a completion sweep. The event
// counts as completed even when some per-volunteer sub-steps failed; those
// failures are listed in Errors for the caller to surface.
type CompletionSummary struct {
	EventID             string
	VolunteersProcessed int
	Errors              []string
}

// CompleteEventStore defines the database operations needed to complete an
// event
type CompleteEventStore interface {
	GetEvent(ctx context.Context, id string) (*db.Event, error)
	GetProfile(ctx context.Context, id string) (*db.Profile, error)
	TransitionEventStatus(ctx context.Context, eventID, to string, allowedFrom ...string) (bool, error)
	GetApplicationsByEventAndStatus(ctx context.Context, eventID, status string) ([]db.Application, error)
	InsertHistoryEntry(ctx context.Context, entry *db.HistoryEntry) (bool, error)
	TransitionApplication(ctx context.Context, applicationID, to string, allowedFrom ...string) (bool, error)
}

// CompleteEvent marks a published event completed and sweeps its accepted
// applications: each one gets a history entry, moves to completed, and its
// volunteer is notified. Sub-step failures are accumulated, never aborting
// the remaining volunteers.
//
// The operation is safe to re-run. A second call finds no applications left
// in accepted and sweeps nothing; a call after a crash resumes the unswept
// remainder, with the history table's (volunteer, event) uniqueness making
// re-inserts a no-op.
func CompleteEvent(
	ctx context.Context,
	store CompleteEventStore,
	sink NotificationSink,
	cfg *config.Config,
	logger *zap.Logger,
	eventID string,
	byProfileID string,
) (*CompletionSummary, error) {
	logger.Debug("Starting completeEvent",
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

	switch model.EventStatus(event.Status) {
	case model.EventPublished:
		updated, err := store.TransitionEventStatus(ctx, eventID,
			string(model.EventCompleted), string(model.EventPublished))
		if err != nil {
			return nil, fmt.Errorf("failed to mark event completed: %w", err)
		}
		if !updated {
			// Lost a race; re-fetch to see what the event became. Only a
			// concurrent completion lets the sweep proceed, a concurrent
			// cancellation must not
			current, err := store.GetEvent(ctx, eventID)
			if err != nil {
				return nil, fmt.Errorf("failed to re-fetch event: %w", err)
			}
			if current == nil || model.EventStatus(current.Status) != model.EventCompleted {
				return nil, fmt.Errorf("event %s is no longer published: %w", eventID, ErrInvalidTransition)
			}
			logger.Info("Event was completed concurrently", zap.String("event_id", eventID))
		}
		event.Status = string(model.EventCompleted)
	case model.EventCompleted:
		// Re-run: resume the sweep for anything a previous attempt missed
		logger.Info("Event already completed, resuming sweep", zap.String("event_id", eventID))
	default:
		return nil, fmt.Errorf("cannot complete event in status %s: %w", event.Status, ErrInvalidTransition)
	}

	accepted, err := store.GetApplicationsByEventAndStatus(ctx, eventID, string(model.ApplicationAccepted))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accepted applications: %w", err)
	}
	logger.Debug("Sweeping accepted applications",
		zap.String("event_id", eventID),
		zap.Int("count", len(accepted)))

	summary := &CompletionSummary{EventID: eventID}
	hours := historyHours(cfg, event)

	for _, application := range accepted {
		if ok := sweepApplication(ctx, store, sink, cfg, logger, event, application, hours, byProfileID, summary); ok {
			summary.VolunteersProcessed++
		}
	}

	logger.Info("Event completion finished",
		zap.String("event_id", eventID),
		zap.Int("volunteers_processed", summary.VolunteersProcessed),
		zap.Int("errors", len(summary.Errors)))

	return summary, nil
}

// sweepApplication runs the per-volunteer completion steps, reporting
// whether the authoritative ones (history + status) both landed
func sweepApplication(
	ctx context.Context,
	store CompleteEventStore,
	sink NotificationSink,
	cfg *config.Config,
	logger *zap.Logger,
	event *db.Event,
	application db.Application,
	hours float64,
	byProfileID string,
	summary *CompletionSummary,
) bool {
	entry := &db.HistoryEntry{
		ID:          uuid.New().String(),
		VolunteerID: application.VolunteerID,
		EventID:     event.ID,
		HoursLogged: hours,
		CreatedAt:   time.Now().UTC(),
	}
	inserted, err := store.InsertHistoryEntry(ctx, entry)
	if err != nil {
		logger.Warn("Failed to insert history entry",
			zap.String("volunteer_id", application.VolunteerID),
			zap.String("event_id", event.ID),
			zap.Error(err))
		summary.Errors = append(summary.Errors,
			fmt.Sprintf("history entry for volunteer %s: %v", application.VolunteerID, err))
		return false
	}
	if !inserted {
		logger.Debug("History entry already exists",
			zap.String("volunteer_id", application.VolunteerID),
			zap.String("event_id", event.ID))
	}

	updated, err := store.TransitionApplication(ctx, application.ID,
		string(model.ApplicationCompleted), string(model.ApplicationAccepted))
	if err != nil {
		logger.Warn("Failed to complete application",
			zap.String("application_id", application.ID),
			zap.Error(err))
		summary.Errors = append(summary.Errors,
			fmt.Sprintf("application %s: %v", application.ID, err))
		return false
	}
	if !updated {
		// Another sweep got this one; its notification is theirs to send
		return false
	}

	if err := sendEventNotification(ctx, sink, logger, eventCompletedTemplate,
		application.VolunteerID, byProfileID, event, cfg.NotificationLinkBase); err != nil {
		summary.Errors = append(summary.Errors, err.Error())
	}

	return true
}

// historyHours resolves the hours to log on new history entries: the event
// duration when the config opts in, the configured default otherwise
func historyHours(cfg *config.Config, event *db.Event) float64 {
	if cfg.HoursFromEventDuration {
		duration := event.EndsAt.Sub(event.StartsAt).Hours()
		if duration > 0 {
			return duration
		}
	}
	if cfg.CompletionDefaultHours != nil {
		return *cfg.CompletionDefaultHours
	}
	return config.DefaultCompletionHours
}
