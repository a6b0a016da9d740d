package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/core/services"
)

// PublishEventCmd creates the publishEvent command
func PublishEventCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "publishEvent <event_id> <profile_id>",
		Short: "Publish a draft event so volunteers can apply",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, profileID := args[0], args[1]

			app.Logger.Debug("publishEvent command",
				zap.String("event_id", eventID),
				zap.String("profile_id", profileID))

			event, err := services.PublishEvent(app.Ctx, app.Store, app.Logger, eventID, profileID)
			if err != nil {
				return fmt.Errorf("failed to publish event: %w", err)
			}

			fmt.Printf("\n✅ Event published\n\n")
			fmt.Printf("Event ID: %s\n", event.ID)
			fmt.Printf("Title:    %s\n", event.Title)
			fmt.Printf("Status:   %s\n", event.Status)
			fmt.Println()

			return nil
		},
	}
}
