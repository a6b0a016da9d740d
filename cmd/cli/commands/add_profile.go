package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/core/model"
	"github.com/jakechorley/volunteer-hub/pkg/db"
)

// AddProfileCmd creates the addProfile command
func AddProfileCmd(app *AppContext) *cobra.Command {
	var (
		email        string
		phone        string
		skills       []string
		availability []string
	)

	cmd := &cobra.Command{
		Use:   "addProfile <display_name> <volunteer|organization|admin>",
		Short: "Register a new profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			displayName := args[0]
			profileType := model.ProfileType(args[1])
			if !profileType.IsValid() {
				return fmt.Errorf("invalid profile type %q", args[1])
			}

			app.Logger.Debug("addProfile command",
				zap.String("display_name", displayName),
				zap.String("type", string(profileType)))

			profile := &db.Profile{
				ID:          uuid.New().String(),
				DisplayName: displayName,
				Type:        string(profileType),
				Status:      string(model.ProfileActive),
				Email:       email,
				Phone:       phone,
				CreatedAt:   time.Now(),
			}

			if err := app.Store.InsertProfile(app.Ctx, profile); err != nil {
				return fmt.Errorf("failed to insert profile: %w", err)
			}

			skillRows, err := parseSkillRatings(profile.ID, skills)
			if err != nil {
				return err
			}
			if err := app.Store.InsertSkills(app.Ctx, skillRows); err != nil {
				return fmt.Errorf("failed to insert skills: %w", err)
			}

			availabilityRows, err := parseAvailability(profile.ID, availability)
			if err != nil {
				return err
			}
			if err := app.Store.InsertAvailability(app.Ctx, availabilityRows); err != nil {
				return fmt.Errorf("failed to insert availability: %w", err)
			}

			fmt.Printf("\n✅ Profile created\n\n")
			fmt.Printf("Profile ID: %s\n", profile.ID)
			fmt.Printf("Name:       %s\n", profile.DisplayName)
			fmt.Printf("Type:       %s\n", profile.Type)
			if len(skillRows) > 0 {
				fmt.Printf("Skills:     %d\n", len(skillRows))
			}
			if len(availabilityRows) > 0 {
				fmt.Printf("Available:  %d slots\n", len(availabilityRows))
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	cmd.Flags().StringVar(&phone, "phone", "", "Contact phone")
	cmd.Flags().StringArrayVar(&skills, "skill", nil, "Skill as skillID:proficiency (1-5), repeatable")
	cmd.Flags().StringArrayVar(&availability, "available", nil, "Availability as day:timeOfDay (e.g. monday:morning), repeatable")

	return cmd
}

// parseSkillRatings parses repeated skillID:proficiency flag values
func parseSkillRatings(profileID string, skills []string) ([]db.Skill, error) {
	var parsed []db.Skill
	for _, s := range skills {
		skillID, proficiencyStr, found := strings.Cut(s, ":")
		if !found || skillID == "" {
			return nil, fmt.Errorf("invalid skill %q: expected skillID:proficiency", s)
		}

		proficiency, err := strconv.Atoi(proficiencyStr)
		if err != nil {
			return nil, fmt.Errorf("invalid proficiency in skill %q: %w", s, err)
		}
		if proficiency < 1 || proficiency > 5 {
			return nil, fmt.Errorf("proficiency in skill %q must be 1-5", s)
		}

		parsed = append(parsed, db.Skill{
			ProfileID:   profileID,
			SkillID:     skillID,
			Proficiency: proficiency,
		})
	}

	return parsed, nil
}

// parseAvailability parses repeated day:timeOfDay flag values
func parseAvailability(profileID string, values []string) ([]db.Availability, error) {
	var parsed []db.Availability
	for _, v := range values {
		slot, err := model.ParseAvailabilitySlot(v)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, db.Availability{
			ProfileID: profileID,
			DayOfWeek: int(slot.DayOfWeek),
			TimeOfDay: string(slot.TimeOfDay),
		})
	}

	return parsed, nil
}
