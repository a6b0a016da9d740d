package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/core/services"
)

// DeleteEventCmd creates the deleteEvent command
func DeleteEventCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteEvent <event_id> <profile_id>",
		Short: "Delete an event and its applications (history is kept)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, profileID := args[0], args[1]

			app.Logger.Debug("deleteEvent command",
				zap.String("event_id", eventID),
				zap.String("profile_id", profileID))

			if err := services.DeleteEvent(app.Ctx, app.Store, app.Logger, eventID, profileID); err != nil {
				return fmt.Errorf("failed to delete event: %w", err)
			}

			fmt.Printf("\n✅ Event %s deleted\n\n", eventID)

			return nil
		},
	}
}
