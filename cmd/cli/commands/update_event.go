package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/core/services"
)

// UpdateEventCmd creates the updateEvent command
func UpdateEventCmd(app *AppContext) *cobra.Command {
	var (
		byProfileID   string
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
		Use:   "updateEvent <event_id>",
		Short: "Rewrite a draft or published event's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID := args[0]

			app.Logger.Debug("updateEvent command", zap.String("event_id", eventID))

			// The creator never changes on update; the service fills it in
			input, err := buildEventInput("", title, description, location,
				startsAt, endsAt, minVolunteers, maxVolunteers, skills)
			if err != nil {
				return err
			}

			event, err := services.UpdateEvent(app.Ctx, app.Store, app.Logger, eventID, byProfileID, *input)
			if err != nil {
				return fmt.Errorf("failed to update event: %w", err)
			}

			fmt.Printf("\n✅ Event updated\n\n")
			fmt.Printf("Event ID: %s\n", event.ID)
			fmt.Printf("Title:    %s\n", event.Title)
			fmt.Printf("Status:   %s\n", event.Status)
			fmt.Printf("Starts:   %s\n", event.StartsAt.Format(time.RFC1123))
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVar(&byProfileID, "by", "", "Profile ID of the acting organization or admin")
	cmd.Flags().StringVar(&title, "title", "", "Event title")
	cmd.Flags().StringVar(&description, "description", "", "Event description")
	cmd.Flags().StringVar(&location, "location", "", "Event location")
	cmd.Flags().StringVar(&startsAt, "starts", "", "Start time (RFC3339, e.g. 2026-09-01T10:00:00Z)")
	cmd.Flags().StringVar(&endsAt, "ends", "", "End time (RFC3339)")
	cmd.Flags().IntVar(&minVolunteers, "min", 1, "Minimum volunteers needed")
	cmd.Flags().IntVar(&maxVolunteers, "max", 0, "Maximum volunteers (0 for no cap)")
	cmd.Flags().StringArrayVar(&skills, "skill", nil, "Required skill as skillID:importance (1-3), repeatable")
	cmd.MarkFlagRequired("by")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("starts")
	cmd.MarkFlagRequired("ends")

	return cmd
}
