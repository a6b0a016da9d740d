package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/internal/config"
	"github.com/jakechorley/volunteer-hub/pkg/core/matcher"
	"github.com/jakechorley/volunteer-hub/pkg/db"
)

// Opportunity is a published event scored for one volunteer
type Opportunity struct {
	Event      db.Event
	MatchScore int
}

// ListOpportunitiesStore defines the database operations needed to list
// opportunities
type ListOpportunitiesStore interface {
	GetProfile(ctx context.Context, id string) (*db.Profile, error)
	GetSkills(ctx context.Context, profileID string) ([]db.Skill, error)
	GetPublishedEvents(ctx context.Context) ([]db.Event, error)
	GetEventSkills(ctx context.Context, eventID string) ([]db.EventSkill, error)
}

// ListOpportunities returns every published event scored against the
// volunteer's skills, best match first; ties break on the sooner start.
// These listing scores are informational; the score persisted on an
// application is computed at submission time.
func ListOpportunities(
	ctx context.Context,
	store ListOpportunitiesStore,
	cfg *config.Config,
	logger *zap.Logger,
	volunteerID string,
) ([]Opportunity, error) {
	logger.Debug("Starting listOpportunities", zap.String("volunteer_id", volunteerID))

	volunteer, err := store.GetProfile(ctx, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteer profile: %w", err)
	}
	if volunteer == nil {
		return nil, fmt.Errorf("volunteer %s: %w", volunteerID, ErrNotFound)
	}

	volunteerSkills, err := store.GetSkills(ctx, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteer skills: %w", err)
	}
	ratings := toSkillRatings(volunteerSkills)

	events, err := store.GetPublishedEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch published events: %w", err)
	}
	logger.Debug("Found published events", zap.Int("count", len(events)))

	opportunities := make([]Opportunity, 0, len(events))
	for _, event := range events {
		eventSkills, err := store.GetEventSkills(ctx, event.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch skills for event %s: %w", event.ID, err)
		}
		opportunities = append(opportunities, Opportunity{
			Event: event,
			MatchScore: matcher.Score(ratings, toSkillRequirements(eventSkills),
				cfg.BaselineMatchScore),
		})
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		if opportunities[i].MatchScore != opportunities[j].MatchScore {
			return opportunities[i].MatchScore > opportunities[j].MatchScore
		}
		return opportunities[i].Event.StartsAt.Before(opportunities[j].Event.StartsAt)
	})

	logger.Info("Opportunities listed",
		zap.String("volunteer_id", volunteerID),
		zap.Int("count", len(opportunities)))

	return opportunities, nil
}
