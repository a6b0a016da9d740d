package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/core/services"
)

// CancelEventCmd creates the cancelEvent command
func CancelEventCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cancelEvent <event_id> <profile_id>",
		Short: "Cancel a draft or published event and notify applicants",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, profileID := args[0], args[1]

			app.Logger.Debug("cancelEvent command",
				zap.String("event_id", eventID),
				zap.String("profile_id", profileID))

			result, err := services.CancelEvent(app.Ctx, app.Store, app.Sink, app.Cfg, app.Logger, eventID, profileID)
			if err != nil {
				return fmt.Errorf("failed to cancel event: %w", err)
			}

			fmt.Printf("\n✅ Event canceled\n\n")
			fmt.Printf("Event ID: %s\n", result.Event.ID)
			fmt.Printf("Title:    %s\n", result.Event.Title)
			fmt.Printf("Notified: %d applicants\n", result.Notified)
			fmt.Println()

			return nil
		},
	}
}
