package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/internal/config"
	"github.com/jakechorley/volunteer-hub/pkg/core/matcher"
	"github.com/jakechorley/volunteer-hub/pkg/core/model"
	"github.com/jakechorley/volunteer-hub/pkg/db"
)

// SubmitApplicationStore defines the database operations needed to submit
// an application
type SubmitApplicationStore interface {
	GetProfile(ctx context.Context, id string) (*db.Profile, error)
	GetSkills(ctx context.Context, profileID string) ([]db.Skill, error)
	GetEvent(ctx context.Context, id string) (*db.Event, error)
	GetEventSkills(ctx context.Context, eventID string) ([]db.EventSkill, error)
	GetApplicationByEventAndVolunteer(ctx context.Context, eventID, volunteerID string) (*db.Application, error)
	InsertApplication(ctx context.Context, application *db.Application) error
}

// SubmitApplication creates a pending application for a volunteer on a
// published event. The match score is computed once here and never
// recomputed, so it reflects the volunteer's skills at application time.
func SubmitApplication(
	ctx context.Context,
	store SubmitApplicationStore,
	cfg *config.Config,
	logger *zap.Logger,
	eventID string,
	volunteerID string,
	message string,
) (*db.Application, error) {
	logger.Debug("Starting submitApplication",
		zap.String("event_id", eventID),
		zap.String("volunteer_id", volunteerID))

	volunteer, err := store.GetProfile(ctx, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteer profile: %w", err)
	}
	if volunteer == nil {
		return nil, fmt.Errorf("volunteer %s: %w", volunteerID, ErrNotFound)
	}
	if model.ProfileType(volunteer.Type) != model.TypeVolunteer {
		return nil, fmt.Errorf("profile %s is not a volunteer: %w", volunteerID, ErrForbidden)
	}
	if model.ProfileStatus(volunteer.Status) == model.ProfileSuspended {
		return nil, fmt.Errorf("volunteer %s is suspended: %w", volunteerID, ErrForbidden)
	}

	event, err := store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("event %s: %w", eventID, ErrNotFound)
	}
	if !model.EventStatus(event.Status).AcceptsApplications() {
		return nil, fmt.Errorf("event %s is %s: %w", eventID, event.Status, ErrEventClosed)
	}

	existing, err := store.GetApplicationByEventAndVolunteer(ctx, eventID, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing application: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("volunteer %s already applied to event %s (status %s): %w",
			volunteerID, eventID, existing.Status, ErrDuplicateApplication)
	}

	score, err := scoreVolunteerForEvent(ctx, store, cfg, volunteerID, eventID)
	if err != nil {
		return nil, err
	}
	logger.Debug("Computed match score",
		zap.String("volunteer_id", volunteerID),
		zap.String("event_id", eventID),
		zap.Int("score", score))

	now := time.Now().UTC()
	application := &db.Application{
		ID:          uuid.New().String(),
		EventID:     eventID,
		VolunteerID: volunteerID,
		Status:      string(model.ApplicationPending),
		Message:     message,
		MatchScore:  score,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := store.InsertApplication(ctx, application); err != nil {
		// Two submissions racing past the existence check resolve at the
		// gateway's uniqueness constraint
		if db.IsDuplicate(err) {
			return nil, fmt.Errorf("volunteer %s already applied to event %s: %w",
				volunteerID, eventID, ErrDuplicateApplication)
		}
		return nil, fmt.Errorf("failed to insert application: %w", err)
	}

	logger.Info("Application submitted",
		zap.String("application_id", application.ID),
		zap.String("event_id", eventID),
		zap.String("volunteer_id", volunteerID),
		zap.Int("match_score", score))

	return application, nil
}

// skillReader is the read side shared with the opportunity listing
type skillReader interface {
	GetSkills(ctx context.Context, profileID string) ([]db.Skill, error)
	GetEventSkills(ctx context.Context, eventID string) ([]db.EventSkill, error)
}

// scoreVolunteerForEvent fetches both sides' skills and runs the matcher
func scoreVolunteerForEvent(ctx context.Context, store skillReader, cfg *config.Config, volunteerID, eventID string) (int, error) {
	volunteerSkills, err := store.GetSkills(ctx, volunteerID)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch volunteer skills: %w", err)
	}
	eventSkills, err := store.GetEventSkills(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch event skills: %w", err)
	}
	return matcher.Score(
		toSkillRatings(volunteerSkills),
		toSkillRequirements(eventSkills),
		cfg.BaselineMatchScore,
	), nil
}

func toSkillRatings(skills []db.Skill) []model.SkillRating {
	ratings := make([]model.SkillRating, len(skills))
	for i, s := range skills {
		ratings[i] = model.SkillRating{SkillID: s.SkillID, Proficiency: s.Proficiency}
	}
	return ratings
}

func toSkillRequirements(skills []db.EventSkill) []model.SkillRequirement {
	requirements := make([]model.SkillRequirement, len(skills))
	for i, s := range skills {
		requirements[i] = model.SkillRequirement{
			SkillID:    s.SkillID,
			Importance: model.ImportanceLevel(s.Importance),
		}
	}
	return requirements
}
