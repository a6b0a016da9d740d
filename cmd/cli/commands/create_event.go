package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/core/services"
)

// CreateEventCmd creates the createEvent command
func CreateEventCmd(app *AppContext) *cobra.Command {
	var (
		creatorID     string
		title         string
		description   string
		location      string
		startsAt      string
		endsAt        string
		minVolunteers int
		maxVolunteers int
		skills        []string
	)

	cmd := &cobra.Command{
		Use:   "createEvent",
		Short: "Create a new draft event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("createEvent command", zap.String("title", title))

			input, err := buildEventInput(creatorID, title, description, location,
				startsAt, endsAt, minVolunteers, maxVolunteers, skills)
			if err != nil {
				return err
			}

			event, err := services.CreateEvent(app.Ctx, app.Store, app.Logger, *input)
			if err != nil {
				return fmt.Errorf("failed to create event: %w", err)
			}

			fmt.Printf("\n✅ Event created\n\n")
			fmt.Printf("Event ID: %s\n", event.ID)
			fmt.Printf("Title:    %s\n", event.Title)
			fmt.Printf("Status:   %s\n", event.Status)
			fmt.Printf("Starts:   %s\n", event.StartsAt.Format(time.RFC1123))
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVar(&creatorID, "creator", "", "Profile ID of the event creator")
	cmd.Flags().StringVar(&title, "title", "", "Event title")
	cmd.Flags().StringVar(&description, "description", "", "Event description")
	cmd.Flags().StringVar(&location, "location", "", "Event location")
	cmd.Flags().StringVar(&startsAt, "starts", "", "Start time (RFC3339, e.g. 2026-09-01T10:00:00Z)")
	cmd.Flags().StringVar(&endsAt, "ends", "", "End time (RFC3339)")
	cmd.Flags().IntVar(&minVolunteers, "min", 1, "Minimum volunteers needed")
	cmd.Flags().IntVar(&maxVolunteers, "max", 0, "Maximum volunteers (0 for no cap)")
	cmd.Flags().StringArrayVar(&skills, "skill", nil, "Required skill as skillID:importance (1-3), repeatable")
	cmd.MarkFlagRequired("creator")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("starts")
	cmd.MarkFlagRequired("ends")

	return cmd
}

// buildEventInput converts raw flag values into a service EventInput
func buildEventInput(creatorID, title, description, location, startsAt, endsAt string,
	minVolunteers, maxVolunteers int, skills []string) (*services.EventInput, error) {
	starts, err := time.Parse(time.RFC3339, startsAt)
	if err != nil {
		return nil, fmt.Errorf("invalid --starts value: %w", err)
	}

	ends, err := time.Parse(time.RFC3339, endsAt)
	if err != nil {
		return nil, fmt.Errorf("invalid --ends value: %w", err)
	}

	requiredSkills, err := parseSkillRequirements(skills)
	if err != nil {
		return nil, err
	}

	return &services.EventInput{
		CreatorID:      creatorID,
		Title:          title,
		Description:    description,
		Location:       location,
		StartsAt:       starts,
		EndsAt:         ends,
		MinVolunteers:  minVolunteers,
		MaxVolunteers:  maxVolunteers,
		RequiredSkills: requiredSkills,
	}, nil
}

// parseSkillRequirements parses repeated skillID:importance flag values
func parseSkillRequirements(skills []string) ([]services.SkillRequirementInput, error) {
	var parsed []services.SkillRequirementInput
	for _, s := range skills {
		skillID, importanceStr, found := strings.Cut(s, ":")
		if !found || skillID == "" {
			return nil, fmt.Errorf("invalid skill %q: expected skillID:importance", s)
		}

		importance, err := strconv.Atoi(importanceStr)
		if err != nil {
			return nil, fmt.Errorf("invalid importance in skill %q: %w", s, err)
		}

		parsed = append(parsed, services.SkillRequirementInput{
			SkillID:    skillID,
			Importance: importance,
		})
	}

	return parsed, nil
}
