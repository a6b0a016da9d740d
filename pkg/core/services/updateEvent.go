package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/core/model"
	"github.com/jakechorley/volunteer-hub/pkg/db"
)

// UpdateEventStore defines the database operations needed to update an event
type UpdateEventStore interface {
	GetEvent(ctx context.Context, id string) (*db.Event, error)
	GetProfile(ctx context.Context, id string) (*db.Profile, error)
	UpdateEvent(ctx context.Context, event *db.Event) error
	DeleteEventSkills(ctx context.Context, eventID string) error
	InsertEventSkills(ctx context.Context, skills []db.EventSkill) error
}

// UpdateEvent validates the input and rewrites a draft or published event's
// details and skill requirements. Completed and canceled events cannot be
// edited. Only the creator or an admin may update; the creator never
// changes.
func UpdateEvent(
	ctx context.Context,
	store UpdateEventStore,
	logger *zap.Logger,
	eventID string,
	byProfileID string,
	input EventInput,
) (*db.Event, error) {
	logger.Debug("Starting updateEvent",
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
	case model.EventDraft, model.EventPublished:
	default:
		return nil, fmt.Errorf("cannot update event in status %s: %w", event.Status, ErrInvalidTransition)
	}

	input.CreatorID = event.CreatorID
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	event.Title = input.Title
	event.Description = input.Description
	event.Location = input.Location
	event.StartsAt = input.StartsAt
	event.EndsAt = input.EndsAt
	event.MinVolunteers = input.MinVolunteers
	event.MaxVolunteers = input.MaxVolunteers
	event.UpdatedAt = time.Now().UTC()

	if err := store.UpdateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	if err := store.DeleteEventSkills(ctx, eventID); err != nil {
		return nil, fmt.Errorf("failed to clear event skills: %w", err)
	}
	if len(input.RequiredSkills) > 0 {
		eventSkills := make([]db.EventSkill, 0, len(input.RequiredSkills))
		for _, req := range input.RequiredSkills {
			eventSkills = append(eventSkills, db.EventSkill{
				EventID:    eventID,
				SkillID:    req.SkillID,
				Importance: req.Importance,
			})
		}
		if err := store.InsertEventSkills(ctx, eventSkills); err != nil {
			return nil, fmt.Errorf("failed to insert event skills: %w", err)
		}
	}

	logger.Info("Event updated",
		zap.String("event_id", eventID),
		zap.Int("required_skills", len(input.RequiredSkills)))

	return event, nil
}
