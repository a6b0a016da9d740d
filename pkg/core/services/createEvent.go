package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/core/model"
	"github.com/jakechorley/volunteer-hub/pkg/db"
)

var validate = validator.New()

// SkillRequirementInput is one required skill on a new event
type SkillRequirementInput struct {
	SkillID    string `validate:"required"`
	Importance int    `validate:"min=1,max=3"`
}

// EventInput carries the fields for a new event
type EventInput struct {
	CreatorID      string `validate:"required"`
	Title          string `validate:"required,max=100"`
	Description    string `validate:"required"`
	Location       string `validate:"required"`
	StartsAt       time.Time
	EndsAt         time.Time
	MinVolunteers  int                     `validate:"min=1"`
	MaxVolunteers  int                     `validate:"min=0"` // 0 means no cap
	RequiredSkills []SkillRequirementInput `validate:"dive"`
}

// CreateEventStore defines the database operations needed to create an event
type CreateEventStore interface {
	GetProfile(ctx context.Context, id string) (*db.Profile, error)
	InsertEvent(ctx context.Context, event *db.Event) error
	InsertEventSkills(ctx context.Context, skills []db.EventSkill) error
}

// CreateEvent validates the input and inserts a draft event with its skill
// requirements. Only organization and admin profiles may create events.
func CreateEvent(
	ctx context.Context,
	store CreateEventStore,
	logger *zap.Logger,
	input EventInput,
) (*db.Event, error) {
	logger.Debug("Starting createEvent",
		zap.String("creator_id", input.CreatorID),
		zap.String("title", input.Title))

	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	creator, err := store.GetProfile(ctx, input.CreatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch creator profile: %w", err)
	}
	if creator == nil {
		return nil, fmt.Errorf("creator profile %s: %w", input.CreatorID, ErrNotFound)
	}
	if !model.ProfileType(creator.Type).CanManageEvents() {
		return nil, fmt.Errorf("profile %s cannot create events: %w", creator.ID, ErrForbidden)
	}

	now := time.Now().UTC()
	event := &db.Event{
		ID:            uuid.New().String(),
		CreatorID:     input.CreatorID,
		Title:         input.Title,
		Description:   input.Description,
		Location:      input.Location,
		StartsAt:      input.StartsAt,
		EndsAt:        input.EndsAt,
		MinVolunteers: input.MinVolunteers,
		MaxVolunteers: input.MaxVolunteers,
		Status:        string(model.EventDraft),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := store.InsertEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}

	if len(input.RequiredSkills) > 0 {
		eventSkills := make([]db.EventSkill, 0, len(input.RequiredSkills))
		for _, req := range input.RequiredSkills {
			eventSkills = append(eventSkills, db.EventSkill{
				EventID:    event.ID,
				SkillID:    req.SkillID,
				Importance: req.Importance,
			})
		}
		if err := store.InsertEventSkills(ctx, eventSkills); err != nil {
			return nil, fmt.Errorf("failed to insert event skills: %w", err)
		}
	}

	logger.Info("Event created",
		zap.String("event_id", event.ID),
		zap.String("creator_id", event.CreatorID),
		zap.Int("required_skills", len(input.RequiredSkills)))

	return event, nil
}

// validateEventInput runs struct validation plus the cross-field checks the
// tags cannot express
func validateEventInput(input EventInput) error {
	if err := validate.Struct(input); err != nil {
		return validationErrorf("%v", err)
	}
	if input.StartsAt.IsZero() || input.EndsAt.IsZero() {
		return validationErrorf("start and end times are required")
	}
	if !input.EndsAt.After(input.StartsAt) {
		return validationErrorf("end time must be after start time")
	}
	if input.MaxVolunteers != 0 && input.MaxVolunteers < input.MinVolunteers {
		return validationErrorf("max volunteers (%d) must be at least min volunteers (%d)",
			input.MaxVolunteers, input.MinVolunteers)
	}
	seen := make(map[string]bool, len(input.RequiredSkills))
	for _, req := range input.RequiredSkills {
		if seen[req.SkillID] {
			return validationErrorf("duplicate required skill %q", req.SkillID)
		}
		seen[req.SkillID] = true
	}
	return nil
}
